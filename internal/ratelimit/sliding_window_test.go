package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) *SlidingWindowLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewSlidingWindowLimiter(client, "test:ratelimit", limit, window)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	return l
}

func TestAllow_WithinQuota(t *testing.T) {
	l := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !l.Allow(ctx, "auth:1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow(ctx, "auth:1.2.3.4") {
		t.Fatalf("request over quota should be rejected")
	}
}

func TestAllow_IndependentKeys(t *testing.T) {
	l := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if !l.Allow(ctx, "auth:1.2.3.4") {
		t.Fatalf("first key should be allowed")
	}
	if l.Allow(ctx, "auth:1.2.3.4") {
		t.Fatalf("first key should now be over quota")
	}
	// different route group, same address
	if !l.Allow(ctx, "insights:1.2.3.4") {
		t.Fatalf("independent key should have its own window")
	}
}

func TestAllow_WindowSlides(t *testing.T) {
	l := newTestLimiter(t, 1, 50*time.Millisecond)
	ctx := context.Background()

	if !l.Allow(ctx, "auth:1.2.3.4") {
		t.Fatalf("first request should be allowed")
	}
	if l.Allow(ctx, "auth:1.2.3.4") {
		t.Fatalf("second request should be rejected inside the window")
	}

	time.Sleep(60 * time.Millisecond)
	if !l.Allow(ctx, "auth:1.2.3.4") {
		t.Fatalf("request after the window slid should be allowed")
	}
}

func TestNewLimiter_Validation(t *testing.T) {
	if _, err := NewSlidingWindowLimiter(nil, "p", 1, time.Second); err == nil {
		t.Fatalf("expected error for nil client")
	}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	if _, err := NewSlidingWindowLimiter(client, "p", 0, time.Second); err == nil {
		t.Fatalf("expected error for non-positive limit")
	}
}
