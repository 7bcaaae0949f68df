package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 10086, "user", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 10086 {
		t.Fatalf("expected user_id 10086, got %d", claims.UserID)
	}
	if claims.Role != "user" {
		t.Fatalf("expected role user, got %s", claims.Role)
	}
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "admin", "refresh", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for wrong token type")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "user", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "user", "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
