package worker

import (
	"context"
	"testing"
	"time"
)

func TestNewHostLimiter(t *testing.T) {
	limiter := NewHostLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewHostLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestHostLimiter_Wait(t *testing.T) {
	limiter := NewHostLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "http://example.com/page"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "http://other.com/page"); err != nil {
		t.Errorf("wait for second host failed: %v", err)
	}
}

func TestHostLimiter_BurstExhaustion(t *testing.T) {
	limiter := NewHostLimiter(0.1, 1)

	if !limiter.Allow("http://example.com") {
		t.Error("first request should pass")
	}
	if limiter.Allow("http://example.com") {
		t.Error("second request should be limited")
	}

	// Other hosts are independent
	if !limiter.Allow("http://other.com") {
		t.Error("other host should pass")
	}
}

func TestHostLimiter_SetHostRate(t *testing.T) {
	limiter := NewHostLimiter(100, 10)
	limiter.SetHostRate("slow.com", 0.1, 1)

	if !limiter.Allow("http://slow.com/a") {
		t.Error("first request to slow host should pass")
	}
	if limiter.Allow("http://slow.com/b") {
		t.Error("second request to slow host should be limited")
	}
	if !limiter.Allow("http://fast.com") {
		t.Error("unrelated host should stay fast")
	}
}

func TestHostLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewHostLimiter(100, 1)

	start := time.Now()
	if err := limiter.WaitWithDelay(context.Background(), "http://example.com", 50*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", elapsed)
	}
}

func TestHostLimiter_WaitWithDelay_Cancelled(t *testing.T) {
	limiter := NewHostLimiter(100, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.WaitWithDelay(ctx, "http://example.com", time.Second)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestHostOf(t *testing.T) {
	host, err := hostOf("http://example.com/page")
	if err != nil {
		t.Fatalf("hostOf failed: %v", err)
	}
	if host != "example.com" {
		t.Errorf("expected example.com, got %s", host)
	}

	if _, err := hostOf("::invalid"); err == nil {
		t.Error("expected error for invalid URL")
	}
}
