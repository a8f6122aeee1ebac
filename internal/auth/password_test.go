package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !h.Verify("correct-horse", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("wrong-horse", hash) {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !h.Verify("correct-horse", first) || !h.Verify("correct-horse", second) {
		t.Fatalf("both salted hashes must verify against the password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher()

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty hash must not verify")
	}
}
