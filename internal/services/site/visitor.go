package site

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// visitorCookieName identifies the anonymous visitor token cookie.
const visitorCookieName = "pf_visitor"

// visitorTokenTTL bounds how long a visitor token stays valid before a fresh
// one is minted.
const visitorTokenTTL = 365 * 24 * time.Hour

// visitorIssuer tags tokens minted by this service.
const visitorIssuer = "portfolio-site"

// visitorClaims is the claims type used for visitor token parsing.
type visitorClaims struct {
	jwt.RegisteredClaims
}

// Visitors mints and verifies anonymous visitor tokens. Visitor identity is
// only used to key stored preferences; it carries no account semantics.
type Visitors struct {
	key []byte
	now func() time.Time
}

// NewVisitors builds a visitor token signer. An empty key disables the
// visitor cookie entirely.
func NewVisitors(key []byte, now func() time.Time) *Visitors {
	if len(key) == 0 {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	return &Visitors{key: key, now: now}
}

// Issue mints a visitor token for a fresh random visitor ID.
func (v *Visitors) Issue() (id string, token string, err error) {
	if v == nil {
		return "", "", errors.New("visitor signer is not configured")
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate visitor id: %w", err)
	}
	id = hex.EncodeToString(buf)

	issuedAt := v.now()
	claims := visitorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    visitorIssuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(visitorTokenTTL)),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.key)
	if err != nil {
		return "", "", fmt.Errorf("sign visitor token: %w", err)
	}
	return id, token, nil
}

// Verify parses a visitor token and returns the visitor ID it names.
func (v *Visitors) Verify(token string) (string, error) {
	if v == nil {
		return "", errors.New("visitor signer is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("visitor token is empty")
	}

	var parsed visitorClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(visitorIssuer),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", fmt.Errorf("parse visitor token: %w", err)
	}
	if strings.TrimSpace(parsed.Subject) == "" {
		return "", errors.New("visitor token has no subject")
	}
	return parsed.Subject, nil
}

// VisitorID resolves the visitor ID from the request cookie, minting and
// setting a fresh token when the cookie is missing or invalid. It returns an
// empty ID when no signer is configured.
func (v *Visitors) VisitorID(w http.ResponseWriter, r *http.Request) string {
	if v == nil || r == nil {
		return ""
	}
	if cookie, err := r.Cookie(visitorCookieName); err == nil {
		if id, err := v.Verify(cookie.Value); err == nil {
			return id
		}
	}

	id, token, err := v.Issue()
	if err != nil {
		return ""
	}
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     visitorCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(visitorTokenTTL / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id
}
