// Package repository mediates between the HTTP boundary and the remote store.
//
// Reads never fail: a missing table, any other remote error or an empty
// result all collapse to the built-in fallback records, so the page always
// renders. Writes never degrade: they either succeed or return the error.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Bounds a coalesced read once it is detached from the caller that started it.
const sharedReadTimeout = 10 * time.Second

// coalesce runs read once per key for all concurrent callers. The read runs
// detached from any single caller's cancellation; each caller still stops
// waiting when its own ctx is done.
func coalesce(ctx context.Context, group *singleflight.Group, key string,
	read func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	results := group.DoChan(key, func() (interface{}, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedReadTimeout)
		defer cancel()
		return read(readCtx)
	})
	select {
	case res := <-results:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func now(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock()
}

func logReadFailure(table string, err error) {
	entry := logrus.WithField("table", table).WithError(err)
	if errors.Is(err, folio.ErrTableMissing) {
		entry.Warnln("Table doesn't exist yet. Using fallback data.")
	} else {
		entry.Errorln("Could not read table. Using fallback data.")
	}
}

func logEmpty(table string) {
	logrus.WithField("table", table).Infoln("Table is empty. Using fallback data.")
}
