package utils

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	if len(salt) != 32 { // 16 bytes, hex encoded
		t.Fatalf("salt length = %d, want 32", len(salt))
	}

	hash, err := HashPassword("s3cret", salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword("s3cret", salt, hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", salt, hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashIsDeterministicPerSalt(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	h1, err := HashPassword("password", salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("password", salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 != h2 {
		t.Error("same password and salt produced different hashes")
	}

	other, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	h3, err := HashPassword("password", other)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h3 {
		t.Error("different salts produced the same hash")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", 1)
	token, err := mgr.Generate(7, "manager", "Manager")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	claims, err := mgr.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "manager" || claims.Role != "Manager" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := NewJWTManager("other-secret", 1).Validate(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}
