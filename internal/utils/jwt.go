// Package utils provides token and password helpers shared by the
// auth handler and the middleware.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by VerifyAccessToken for any token that
// fails parsing, signature verification or the expiry check.  Callers
// answer 401 without distinguishing the cases, so one sentinel is
// enough.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the principal extracted from a verified access token.
type Claims struct {
	AdminID uint64 // "sub" claim
	Email   string // "email" claim
	Role    string // "role" claim
}

// AccessToken is a signed HS256 JWT together with its expiry.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for an admin account.
// The token carries sub, email, role, exp and iat claims.  No state
// is stored server-side; the token is self-contained.
func NewAccessToken(secret string, adminID uint64, email, role string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken checks a token's signature and expiry against the
// server secret and returns the embedded principal.  It is a pure
// function of its inputs: no storage lookup, no session state, which
// keeps the auth gate trivially testable.  Tokens signed with
// anything other than HMAC are rejected.
func VerifyAccessToken(token, secret string) (Claims, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var c Claims
	if sub, ok := mc["sub"].(float64); ok {
		c.AdminID = uint64(sub)
	}
	if v, ok := mc["email"].(string); ok {
		c.Email = v
	}
	if v, ok := mc["role"].(string); ok {
		c.Role = v
	}
	return c, nil
}
