package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(42, "Alice", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(42, "Alice", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("ValidateToken() UserID = %d, want 42", claims.UserID)
	}
	if claims.Name != "Alice" {
		t.Errorf("ValidateToken() Name = %q, want %q", claims.Name, "Alice")
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenMalformed", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "Alice", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "Alice", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "test-secret")
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{"homequest-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 42,
		Name:   "Alice",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ValidateToken(tokenString, secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenWrongAudience(t *testing.T) {
	secret := "test-secret"

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "homequest",
			Audience:  jwt.ClaimStrings{"wrong-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 42,
		Name:   "Alice",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ValidateToken(tokenString, secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}
