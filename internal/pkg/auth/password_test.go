package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == password {
		t.Error("hash should not equal plaintext password")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost != bcrypt.MinCost {
		t.Errorf("expected cost %d, got %d (%v)", bcrypt.MinCost, cost, err)
	}
}

func TestHash_DifferentHashes(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to salt")
	}
}

func TestCheck(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if err := hasher.Check(hash, "secret"); err != nil {
		t.Errorf("expected correct password to match, got error: %v", err)
	}
	if err := hasher.Check(hash, "wrong"); err == nil {
		t.Error("expected error for incorrect password")
	}
	if err := hasher.Check(hash, ""); err == nil {
		t.Error("expected error for empty password")
	}
	if err := hasher.Check("not-a-valid-bcrypt-hash", "secret"); err == nil {
		t.Error("expected error for invalid hash format")
	}
}

func TestNewPasswordHasher_OutOfRangeCost(t *testing.T) {
	hasher := NewPasswordHasher(0)
	if hasher.cost != DefaultBcryptCost {
		t.Errorf("expected fallback cost %d, got %d", DefaultBcryptCost, hasher.cost)
	}
}

func TestCheckDummy_DoesNotPanic(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hasher.CheckDummy("anything")
	hasher.CheckDummy("anything else")
	if len(hasher.dummyHash) == 0 {
		t.Error("expected dummy hash to be initialised")
	}
}

func TestUserIDContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := UserIDFromContext(ctx); ok {
		t.Error("expected no user id in empty context")
	}

	ctx = WithUserID(ctx, 9)
	userID, ok := UserIDFromContext(ctx)
	if !ok || userID != 9 {
		t.Errorf("expected user id 9, got %d (ok=%v)", userID, ok)
	}
}
