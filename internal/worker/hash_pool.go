package worker

import (
	"context"
	"runtime"

	"github.com/spec-kit/user-service/internal/auth"
)

// HashPool bounds the number of bcrypt computations running at once so a
// burst of registrations or logins cannot monopolize every CPU and stall
// concurrent request handling.
type HashPool struct {
	hasher *auth.Hasher
	sem    chan struct{}
}

// NewHashPool creates a pool sized to the machine when size <= 0.
func NewHashPool(hasher *auth.Hasher, size int) *HashPool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &HashPool{
		hasher: hasher,
		sem:    make(chan struct{}, size),
	}
}

// Hash computes a password hash on an available slot, waiting for one if the
// pool is saturated. The caller's context bounds the wait.
func (p *HashPool) Hash(ctx context.Context, password string) (string, error) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-p.sem }()

	return p.hasher.Hash(password)
}

// Verify checks a password against a stored hash on an available slot. When
// the context expires before a slot frees up it reports no match.
func (p *HashPool) Verify(ctx context.Context, password, hash string) bool {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return false
	}
	defer func() { <-p.sem }()

	return p.hasher.Verify(password, hash)
}
