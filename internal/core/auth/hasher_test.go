package auth

import (
	"testing"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}

	ok, err := h.Verify("s3cret-pass", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected hash to match password")
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("expected no error for a mismatch, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHasher_SaltedHashes(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("same-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher()

	if _, err := h.Verify("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for malformed stored hash")
	}
}
