package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)

	token, err := issuer.Issue("64f0c2a1e4b0a1b2c3d4e5f6", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ID != "64f0c2a1e4b0a1b2c3d4e5f6" || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != claims.ID {
		t.Fatalf("expected sub to mirror id, got %q", claims.Subject)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != DefaultTokenTTL {
		t.Fatalf("expected %s lifetime, got %s", DefaultTokenTTL, got)
	}
}

func TestTokenIssuer_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := NewTokenIssuer("secret", 24*time.Hour).WithClock(fixedClock(issuedAt)).Issue("id-1", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"immediately", issuedAt, true},
		{"one hour later", issuedAt.Add(time.Hour), true},
		{"one second before expiry", issuedAt.Add(24*time.Hour - time.Second), true},
		{"at expiry", issuedAt.Add(24 * time.Hour), false},
		{"a day after expiry", issuedAt.Add(48 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := NewTokenIssuer("secret", 24*time.Hour).WithClock(fixedClock(tc.at))
			_, err := verifier.Verify(token)
			if tc.valid && err != nil {
				t.Fatalf("expected valid token, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokenIssuer_RejectsForeignTokens(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	otherSecret, _ := NewTokenIssuer("other-secret", time.Hour).Issue("id-1", "admin")
	valid, _ := issuer.Issue("id-1", "admin")
	tampered := valid + "a"

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "id-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "id-1"}).SignedString([]byte("secret"))
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	for name, token := range map[string]string{
		"wrong secret": otherSecret,
		"tampered":     tampered,
		"alg none":     unsigned,
		"no expiry":    noExpiry,
		"no subject":   noSubject,
		"garbage":      "not-a-token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
