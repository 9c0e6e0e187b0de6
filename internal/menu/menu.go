package menu

import (
	"net/url"
	"strings"
)

// Lang is a supported menu language.
type Lang string

const (
	LangEN Lang = "en"
	LangHE Lang = "he"
	LangAR Lang = "ar"
)

// ParseLang validates a raw language code.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case LangEN, LangHE, LangAR:
		return Lang(s), true
	}
	return "", false
}

// IsRTL reports whether lang is written right-to-left.
func IsRTL(lang Lang) bool {
	return lang == LangHE || lang == LangAR
}

// ResolveLang picks the menu language: an explicit ?lang= value wins, then
// the Accept-Language header ("iw" is the legacy code for Hebrew), then
// English.
func ResolveLang(query, acceptLanguage string) Lang {
	if lang, ok := ParseLang(query); ok {
		return lang
	}

	accepted := strings.ToLower(acceptLanguage)
	if i := strings.IndexByte(accepted, ','); i >= 0 {
		accepted = accepted[:i]
	}
	accepted = strings.TrimSpace(accepted)

	switch {
	case strings.HasPrefix(accepted, "he"), strings.Contains(accepted, "iw"):
		return LangHE
	case strings.HasPrefix(accepted, "ar"):
		return LangAR
	}
	return LangEN
}

// Localized holds one string per language.
type Localized map[Lang]string

// In returns the string for lang, falling back to English when the
// translation is missing.
func (l Localized) In(lang Lang) string {
	if v := l[lang]; v != "" {
		return v
	}
	return l[LangEN]
}

// CategoryID identifies a menu section.
type CategoryID string

const (
	Starters       CategoryID = "starters"
	FromOurKitchen CategoryID = "from_our_kitchen"
	MainDishes     CategoryID = "main_dishes"
	Plates         CategoryID = "plates"
)

type Item struct {
	ID          string
	Category    CategoryID
	Price       int // 0 means ask — some dishes are priced by the day
	Image       string
	Name        Localized
	Description Localized
}

type Category struct {
	ID    CategoryID
	Title Localized
}

// ImageURL resolves an item's image filename against the configured base URL.
// Absolute URLs pass through untouched; with no base configured the filename
// is returned as-is.
func ImageURL(base, filename string) string {
	if filename == "" {
		return ""
	}
	if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
		return filename
	}
	if base == "" {
		return filename
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(filename)
}

// ItemView and CategoryView are the JSON shapes served to the client, with
// every name and description collapsed to the requested language.
type ItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price,omitempty"`
	Image       string `json:"image,omitempty"`
}

type CategoryView struct {
	ID    CategoryID `json:"id"`
	Title string     `json:"title"`
	Items []ItemView `json:"items"`
}

// Localize builds the full menu in lang, preserving category and item order.
func Localize(lang Lang, imageBase string) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, cat := range categories {
		view := CategoryView{
			ID:    cat.ID,
			Title: cat.Title.In(lang),
			Items: []ItemView{},
		}
		for _, it := range items {
			if it.Category != cat.ID {
				continue
			}
			view.Items = append(view.Items, ItemView{
				ID:          it.ID,
				Name:        it.Name.In(lang),
				Description: strings.TrimSpace(it.Description.In(lang)),
				Price:       it.Price,
				Image:       ImageURL(imageBase, it.Image),
			})
		}
		views = append(views, view)
	}
	return views
}

// Categories returns the menu sections in display order.
func Categories() []Category {
	return categories
}

// Items returns every menu item.
func Items() []Item {
	return items
}
