package folio

import "context"

// StatCounter reports a follower count of a third-party channel.
// It never fails, failures degrade to a constant.
type StatCounter interface {
	Count(ctx context.Context) int64
}

// Latest counts shown on the page.
type StatsSnapshot struct {
	Subscribers int64
	Members     int64
}
