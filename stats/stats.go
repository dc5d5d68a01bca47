// Package stats fetches follower counts of the owner's third-party channels.
//
// Every counter degrades to DefaultCount on any failure. The constant keeps
// the page from showing zero or a broken number, it carries no meaning.
package stats

import (
	"context"
	"sync"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCount    int64 = 1
	RefreshInterval       = 5 * time.Minute
)

// Fetcher reports a count or why it could not.
type Fetcher interface {
	Fetch(ctx context.Context) (int64, error)
}

// Telegram is a stub, the member count is not fetched from anywhere.
type Telegram struct{}

var (
	_ folio.StatCounter = Telegram{}
	_ Refresher         = Telegram{}
)

func (Telegram) Count(ctx context.Context) int64 {
	return DefaultCount
}

func (Telegram) Refresh(ctx context.Context) int64 {
	return DefaultCount
}

// Refresher re-reads a stat from its source on every call.
type Refresher interface {
	Refresh(ctx context.Context) int64
}

type Cache interface {
	Get(name string) (int64, bool, error)
	Set(name string, count int64) error
}

// Cached serves the last successful fetch until the cache entry expires.
// Failures are never cached.
type Cached struct {
	Name    string
	Fetcher Fetcher
	Cache   Cache
}

var (
	_ folio.StatCounter = (*Cached)(nil)
	_ Refresher         = (*Cached)(nil)
)

func (c *Cached) Count(ctx context.Context) int64 {
	count, ok, err := c.Cache.Get(c.Name)
	if err != nil {
		logrus.WithField("stat", c.Name).WithError(err).Warnln("Could not read stat cache.")
	} else if ok {
		return count
	}
	return c.Refresh(ctx)
}

// Refresh always asks the fetcher, bypassing the cache, and caches a success.
func (c *Cached) Refresh(ctx context.Context) int64 {
	log := logrus.WithField("stat", c.Name)

	count, err := c.Fetcher.Fetch(ctx)
	if err != nil {
		log.WithError(err).Errorln("Could not fetch stat.")
		return DefaultCount
	}
	if err := c.Cache.Set(c.Name, count); err != nil {
		log.WithError(err).Warnln("Could not cache stat.")
	}
	return count
}

// Board holds the latest polled counts.
type Board struct {
	mutex     sync.RWMutex
	snapshot  folio.StatsSnapshot
	updatedAt time.Time
}

func (b *Board) Record(snapshot folio.StatsSnapshot, at time.Time) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.snapshot = snapshot
	b.updatedAt = at
}

// Snapshot returns DefaultCount for every stat until the first Record.
func (b *Board) Snapshot() (folio.StatsSnapshot, time.Time) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	if b.updatedAt.IsZero() {
		return folio.StatsSnapshot{Subscribers: DefaultCount, Members: DefaultCount}, time.Time{}
	}
	return b.snapshot, b.updatedAt
}

// Poller refreshes a Board on a fixed interval. No backoff, no jitter.
type Poller struct {
	Subscribers Refresher
	Members     Refresher
	Board       *Board
	Interval    time.Duration
}

// Run polls once immediately, then every Interval until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = RefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	snapshot := folio.StatsSnapshot{
		Subscribers: p.Subscribers.Refresh(ctx),
		Members:     p.Members.Refresh(ctx),
	}
	p.Board.Record(snapshot, time.Now())
	logrus.WithField("subscribers", snapshot.Subscribers).
		WithField("members", snapshot.Members).
		Debugln("Stats refreshed.")
}
