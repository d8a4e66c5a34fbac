// Package session provides the platform pieces of cookie-session
// authentication: the Redis-backed session store, the signed cookie codec,
// and the login-required middleware.
package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"repair_backend/internal/feature/auth/domain/entity"
)

const (
	// CookieName is the name of the browser session cookie.
	CookieName = "sid"

	// CookieMaxAge mirrors the session TTL, in seconds.
	CookieMaxAge = 3600
)

// ErrInvalidCookie is returned when the session cookie is malformed or
// fails signature verification.
var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieCodec signs and verifies the session cookie value.
// The cookie carries the session ID as an HS256-signed claim so a client
// cannot forge or tamper with session identifiers.
type CookieCodec struct {
	secret []byte
}

// NewCookieCodec creates a codec using the given signing secret.
// The secret is injected at construction; nothing here reads the environment.
func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret)}
}

// Encode wraps a session in a signed cookie value.
func (cc *CookieCodec) Encode(s *entity.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": s.ID,
		"iat": s.CreatedAt.Unix(),
		"exp": s.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cc.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return signed, nil
}

// Decode verifies a cookie value and extracts the session ID.
func (cc *CookieCodec) Decode(value string) (string, error) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return cc.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCookie
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidCookie
	}

	return sid, nil
}

// SetCookie attaches the signed session cookie to the response.
// Cookie attributes follow the observed contract: http-only, SameSite Lax,
// max-age one hour.
func SetCookie(c *gin.Context, codec *CookieCodec, s *entity.Session) error {
	value, err := codec.Encode(s)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, CookieMaxAge, "/", "", false, true)
	return nil
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
