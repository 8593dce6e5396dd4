package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed means the token is not structurally a JWT.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenExpired means the token was valid but is past its expiry.
	ErrTokenExpired = errors.New("expired token")
	// ErrTokenInvalid covers signature mismatches and claim failures.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the caller identity embedded in a session token.
// The role is deliberately not embedded; role-gated endpoints look it
// up from the user store on each request.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// GenerateToken creates a signed session token for the given user.
func GenerateToken(userID int64, name, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "homequest",
			Audience:  jwt.ClaimStrings{"homequest-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Name:   name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a session token, returning the
// embedded identity if valid. Failures are one of ErrTokenMalformed,
// ErrTokenExpired or ErrTokenInvalid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("homequest"), jwt.WithAudience("homequest-api"))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
