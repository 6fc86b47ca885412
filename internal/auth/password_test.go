package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "pw1" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !CheckPassword("pw1", digest) {
		t.Error("CheckPassword should accept the original password")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	digest, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if CheckPassword("pw2", digest) {
		t.Error("CheckPassword should reject a different password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	if CheckPassword("pw1", "not-a-bcrypt-digest") {
		t.Error("CheckPassword should reject a malformed digest")
	}
	if CheckPassword("pw1", "") {
		t.Error("CheckPassword should reject an empty digest")
	}
}

func TestHashPassword_SaltIsPerPassword(t *testing.T) {
	a, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}
