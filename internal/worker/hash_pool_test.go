package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/spec-kit/user-service/internal/auth"
)

func TestHashPoolRoundTrip(t *testing.T) {
	pool := NewHashPool(auth.NewHasher(), 2)
	ctx := context.Background()

	hash, err := pool.Hash(ctx, "correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !pool.Verify(ctx, "correct-horse", hash) {
		t.Fatalf("expected hash to verify")
	}
	if pool.Verify(ctx, "wrong-horse", hash) {
		t.Fatalf("expected mismatch to fail")
	}
}

func TestHashPoolBoundsConcurrency(t *testing.T) {
	pool := NewHashPool(auth.NewHasher(), 1)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := pool.Hash(ctx, "correct-horse"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("hash under contention: %v", err)
	}
}

func TestHashPoolHonorsCancelledContext(t *testing.T) {
	pool := NewHashPool(auth.NewHasher(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// drain the only slot so the cancelled caller must wait
	release := make(chan struct{})
	acquired := make(chan struct{})
	go func() {
		pool.sem <- struct{}{}
		close(acquired)
		<-release
		<-pool.sem
	}()
	<-acquired

	if _, err := pool.Hash(ctx, "correct-horse"); err == nil {
		t.Fatalf("expected context error when pool is saturated")
	}
	if pool.Verify(ctx, "correct-horse", "whatever") {
		t.Fatalf("expected verify to fail under cancelled context")
	}
	close(release)
}
