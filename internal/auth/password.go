package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor applied to every password hash.
// It is a service constant, never caller-supplied.
const bcryptCost = 10

// Hasher produces salted one-way password hashes and verifies them.
type Hasher struct{}

// NewHasher constructs a bcrypt-backed hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns a salted hash of the plaintext password. Each call embeds a
// fresh random salt, so hashing the same password twice yields different
// strings that both verify.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// Comparison happens in constant time. A structurally invalid hash yields
// false rather than an error.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
