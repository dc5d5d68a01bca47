package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type Prober struct {
	Client *Client
}

var _ folio.TableProber = (*Prober)(nil)

// Probe selects at most one id from table.
func (p *Prober) Probe(ctx context.Context, table string) error {
	query := url.Values{"select": {"id"}, "limit": {"1"}}
	if err := p.Client.rest(ctx, fiber.MethodGet, table, query, nil, nil); err != nil {
		return fmt.Errorf("probe %s: %w", table, err)
	}
	return nil
}
