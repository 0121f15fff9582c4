package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Sign(map[string]interface{}{
		"email": "rahim@example.com",
		"role":  "Tourist",
	})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims["email"] != "rahim@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
	if claims["role"] != "Tourist" {
		t.Errorf("expected role claim, got %v", claims["role"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected expiry claim: %v", err)
	}
	remaining := time.Until(exp.Time)
	if remaining < 4*time.Hour+55*time.Minute || remaining > 5*time.Hour {
		t.Errorf("expected roughly five hour validity, got %v", remaining)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Sign(map[string]interface{}{"sub": "x"})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	if _, err := NewTokenService("secret-b").Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "x",
		"exp": jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing fixture token failed: %v", err)
	}

	if _, err := svc.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := NewTokenService("test-secret").Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
