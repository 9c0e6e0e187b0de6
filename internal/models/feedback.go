package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback is a single guest rating submission. Records are immutable once
// created — there is no update or delete path anywhere in the system.
// Optional fields are pointers so that an absent value is stored as null,
// never as an empty string or zero.
type Feedback struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Rating           int           `bson:"rating" json:"rating"`
	FoodRating       *int          `bson:"food_rating,omitempty" json:"food_rating,omitempty"`
	ServiceRating    *int          `bson:"service_rating,omitempty" json:"service_rating,omitempty"`
	AtmosphereRating *int          `bson:"atmosphere_rating,omitempty" json:"atmosphere_rating,omitempty"`
	Comment          *string       `bson:"comment" json:"comment"`
	ContactPhone     *string       `bson:"contact_phone" json:"contact_phone"`
	ContactEmail     *string       `bson:"contact_email" json:"contact_email"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
}
