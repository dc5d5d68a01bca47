package mock

import "context"

type TableProber struct {
	ProbeFn func(ctx context.Context, table string) error
}

func (p TableProber) Probe(ctx context.Context, table string) error {
	return p.ProbeFn(ctx, table)
}
