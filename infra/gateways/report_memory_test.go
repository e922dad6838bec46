package gateways

import (
	"context"
	"testing"
	"time"
)

func TestReportCacheMemory(t *testing.T) {
	cache := NewReportCacheMemory(time.Minute)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx); err != nil || ok {
		t.Fatalf("expected empty cache, got ok=%v err=%v", ok, err)
	}

	if err := cache.Set(ctx, []string{"alice: n/a"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	report, ok, err := cache.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("expected cached report, got ok=%v err=%v", ok, err)
	}
	if len(report) != 1 || report[0] != "alice: n/a" {
		t.Fatalf("unexpected report: %v", report)
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok, _ := cache.Get(ctx); ok {
		t.Fatalf("expected cache to be empty after invalidation")
	}
}

func TestReportCacheMemoryExpires(t *testing.T) {
	cache := NewReportCacheMemory(10 * time.Millisecond)
	ctx := context.Background()

	if err := cache.Set(ctx, []string{"alice: n/a"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok, _ := cache.Get(ctx); ok {
		t.Fatalf("expected cache entry to expire")
	}
}
