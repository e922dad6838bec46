package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const reportKey = "ordersystem:report"

// ReportCacheRedis caches the generated report in Redis with a TTL.
// Every successful ledger mutation invalidates it.
type ReportCacheRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCacheRedis(client *redis.Client, ttl time.Duration) *ReportCacheRedis {
	return &ReportCacheRedis{client: client, ttl: ttl}
}

func (r *ReportCacheRedis) Get(ctx context.Context) ([]string, bool, error) {
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}
	data, err := r.client.Get(ctx, reportKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var report []string
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false, fmt.Errorf("redis unmarshal: %w", err)
	}
	return report, true, nil
}

func (r *ReportCacheRedis) Set(ctx context.Context, report []string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, reportKey, raw, r.ttl).Err()
}

func (r *ReportCacheRedis) Invalidate(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return r.client.Del(ctx, reportKey).Err()
}
