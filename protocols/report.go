package protocols

import "context"

type ReportCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, report []string) error
	Invalidate(ctx context.Context) error
}
