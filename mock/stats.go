package mock

import "context"

type StatCounter struct {
	CountFn func(ctx context.Context) int64
}

func (c StatCounter) Count(ctx context.Context) int64 {
	return c.CountFn(ctx)
}
