package auth

import (
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	token, err := SignJWT(Claims{Sub: "google:123", Email: "student@example.edu", Name: "Test Student"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three-segment token, got %q", token)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "google:123" {
		t.Fatalf("expected sub google:123, got %s", claims.Sub)
	}
	if claims.Email != "student@example.edu" {
		t.Fatalf("expected email preserved, got %s", claims.Email)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	token, err := SignJWT(Claims{Sub: "google:123"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := VerifyJWT(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	token, err := SignJWT(Claims{Sub: "google:123", Exp: time.Now().UTC().Add(-time.Hour).Unix()})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if _, err := VerifyJWT(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
