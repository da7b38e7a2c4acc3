package crypto

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if err := CheckPassword(hash, "password123"); err != nil {
		t.Fatalf("expected password to match")
	}
	if err := CheckPassword(hash, "password124"); err == nil {
		t.Fatalf("expected password mismatch")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if err := CheckPassword("not-a-bcrypt-hash", "password123"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
