package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := SignJWT(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	uid, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected uid 42, got %d", uid)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := SignJWT(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("expected verification failure")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := SignJWT(42, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(token, "test-secret"); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token", "test-secret"); err == nil {
		t.Fatalf("expected parse failure")
	}
}
