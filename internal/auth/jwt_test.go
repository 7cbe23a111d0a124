package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestCartTokenFlow(t *testing.T) {
	tokens, err := NewCartTokens("test-secret-key-12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cartID := uuid.New().String()

	token, err := tokens.IssueCartToken(cartID)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extracted, err := tokens.ParseCartToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if extracted != cartID {
		t.Fatalf("Expected cartID %s, got %s", cartID, extracted)
	}
}

func TestCartToken_Rejections(t *testing.T) {
	if _, err := NewCartTokens(""); err == nil {
		t.Fatal("expected error for empty secret")
	}

	tokens, _ := NewCartTokens("secret-a")
	other, _ := NewCartTokens("secret-b")

	if _, err := tokens.IssueCartToken(""); err == nil {
		t.Fatal("expected error for empty cart id")
	}

	token, _ := other.IssueCartToken("c1")
	if _, err := tokens.ParseCartToken(token); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}

	if _, err := tokens.ParseCartToken("garbage"); err == nil {
		t.Fatal("expected garbage token to fail")
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"cartID": "c1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	signed, _ := expired.SignedString([]byte("secret-a"))
	if _, err := tokens.ParseCartToken(signed); err == nil {
		t.Fatal("expected expired token to fail")
	}

	noCart := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, _ = noCart.SignedString([]byte("secret-a"))
	if _, err := tokens.ParseCartToken(signed); err == nil {
		t.Fatal("expected token without cart id to fail")
	}
}
