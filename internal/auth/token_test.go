package auth

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestIssueThenVerify(t *testing.T) {
	token := IssueToken(testSecret)
	assert.True(t, VerifyToken(testSecret, token))
}

func TestTokenFormat(t *testing.T) {
	before := time.Now().UnixMilli()
	token := IssueToken(testSecret)
	after := time.Now().UnixMilli()

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 2)

	issuedAt, err := strconv.ParseInt(parts[0], 10, 64)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, issuedAt, before)
	assert.LessOrEqual(t, issuedAt, after)

	// hex-encoded HMAC-SHA256
	assert.Len(t, parts[1], 64)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token := IssueToken(testSecret)
	assert.False(t, VerifyToken("other-secret", token))
}

func TestVerifyRejectsMalformed(t *testing.T) {
	for _, token := range []string{
		"",
		"no-dot",
		"1700000000000.",
		".deadbeef",
		"1700000000000.sig.extra",
	} {
		assert.False(t, VerifyToken(testSecret, token), "token %q", token)
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	token := IssueToken(testSecret)
	dot := strings.IndexByte(token, '.')

	// Flipping any single signature character must invalidate the token.
	for i := dot + 1; i < len(token); i++ {
		flipped := []byte(token)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		assert.False(t, VerifyToken(testSecret, string(flipped)), "flipped position %d", i)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	token := IssueToken(testSecret)
	assert.False(t, VerifyToken(testSecret, "9"+token))
}

func TestSessionCookie(t *testing.T) {
	cookie := SessionCookie("abc.def")

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "abc.def", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 60*60*24*30, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
}
