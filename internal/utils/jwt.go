package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AuthToken represents a signed JWT along with its expiry.  The Token
// field contains the JWT string.  Exp stores the expiration timestamp as
// a time.Time.  The token is sent in the Authorization header when
// calling protected endpoints and is the only credential the API issues.
type AuthToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAuthToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, email and role, and a TTL in days.  The
// JWT includes standard claims: subject (sub), email, role, expiration
// (exp) and issued at (iat).  Email and role ride along so protected
// handlers can authorize without an extra user lookup.
func NewAuthToken(secret string, userID uint64, email, role string, ttlDays int) (AuthToken, error) {
	// Calculate the expiration time by adding the TTL to the current UTC time.
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	// Sign the token with the provided secret and obtain the string form.  If
	// signing fails, return the error and a zero AuthToken.
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{Token: signed, Exp: exp}, nil
}
