package security

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "admin123" {
		t.Fatalf("expected password to be hashed")
	}
	if !CheckPassword(hash, "admin123") {
		t.Fatalf("expected password to match its hash")
	}
	if CheckPassword(hash, "admin124") {
		t.Fatalf("expected wrong password to be rejected")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")
	if a == b {
		t.Fatalf("expected two hashes of the same password to differ")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "whatever") {
		t.Fatalf("expected malformed hash to be a mismatch")
	}
	if CheckPassword("", "") {
		t.Fatalf("expected empty hash to be a mismatch")
	}
}
