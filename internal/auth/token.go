package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CookieName is the fixed name of the admin session cookie.
const CookieName = "kabakeh_admin"

// cookieMaxAge is 30 days. Transport-level expiry is the only expiry the
// scheme has: the token itself carries no expiration and cannot be revoked
// individually short of rotating the signing secret.
const cookieMaxAge = 60 * 60 * 24 * 30

func sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// IssueToken builds a self-contained bearer token: the current time in unix
// milliseconds, a dot, and a hex HMAC-SHA256 of that payload.
func IssueToken(secret string) string {
	payload := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return payload + "." + sign(secret, payload)
}

// VerifyToken reports whether token was produced by IssueToken with the same
// secret. It fails closed: any absent or malformed token is simply invalid.
func VerifyToken(secret, token string) bool {
	if token == "" {
		return false
	}
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	return hmac.Equal([]byte(sign(secret, parts[0])), []byte(parts[1]))
}

// SessionCookie wraps a token in the admin session cookie. Secure is left off;
// the deployment terminates HTTPS at the proxy.
func SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
