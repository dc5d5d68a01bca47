package persistent

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/buntdb"
)

// StatCache keeps the last successfully fetched follower counts.
type StatCache struct {
	Buntdb *buntdb.DB
	TTL    time.Duration
}

// Get reports false when name was never stored or its entry expired.
func (c *StatCache) Get(name string) (int64, bool, error) {
	var value string
	err := c.Buntdb.View(func(tx *buntdb.Tx) error {
		var err error
		value, err = tx.Get("stat:" + name)
		return err
	})
	switch {
	case errors.Is(err, buntdb.ErrNotFound):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("bunt view: %w", err)
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached %s: %w", name, err)
	}
	return count, true, nil
}

func (c *StatCache) Set(name string, count int64) error {
	err := c.Buntdb.Update(func(tx *buntdb.Tx) error {
		var opts *buntdb.SetOptions
		if c.TTL > 0 {
			opts = &buntdb.SetOptions{Expires: true, TTL: c.TTL}
		}
		_, _, err := tx.Set("stat:"+name, strconv.FormatInt(count, 10), opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("bunt update: %w", err)
	}
	return nil
}
