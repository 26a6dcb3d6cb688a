package ratelimit

import (
	"context"
	"testing"
)

func TestLimiterAllowsBurstUpToRate(t *testing.T) {
	limiter := New("met-api", 5)

	for i := 0; i < 5; i++ {
		if !limiter.Allow() {
			t.Fatalf("Expected request %d to be allowed within burst", i+1)
		}
	}
	if limiter.Allow() {
		t.Error("Expected request beyond burst to be denied")
	}
}

func TestLimiterWaitHonoursCancelledContext(t *testing.T) {
	limiter := New("met-api", 1)
	limiter.Allow() // drain the burst token

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Error("Expected error when waiting with a cancelled context")
	}
}

func TestLimiterName(t *testing.T) {
	if got := New("met-api", 1).Name(); got != "met-api" {
		t.Errorf("Expected name met-api, got %q", got)
	}
}
