package gateways

import (
	"context"
	"sync"
	"time"
)

// ReportCacheMemory is the in-process fallback used when REDIS_ADDR is
// not configured. Same contract as ReportCacheRedis.
type ReportCacheMemory struct {
	mu        sync.Mutex
	report    []string
	cached    bool
	expiresAt time.Time
	ttl       time.Duration
}

func NewReportCacheMemory(ttl time.Duration) *ReportCacheMemory {
	return &ReportCacheMemory{ttl: ttl}
}

func (m *ReportCacheMemory) Get(ctx context.Context) ([]string, bool, error) {
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.cached || time.Now().After(m.expiresAt) {
		return nil, false, nil
	}
	report := make([]string, len(m.report))
	copy(report, m.report)
	return report, true, nil
}

func (m *ReportCacheMemory) Set(ctx context.Context, report []string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.report = make([]string, len(report))
	copy(m.report, report)
	m.cached = true
	m.expiresAt = time.Now().Add(m.ttl)
	return nil
}

func (m *ReportCacheMemory) Invalidate(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.report = nil
	m.cached = false
	return nil
}
