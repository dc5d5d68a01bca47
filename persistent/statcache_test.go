package persistent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/buntdb"
)

func TestStatCache(t *testing.T) {
	assert := assert.New(t)

	bdb, err := buntdb.Open(":memory:")
	if err != nil {
		panic(err)
	}
	defer bdb.Close()

	cache := &StatCache{Buntdb: bdb, TTL: 50 * time.Millisecond}

	_, ok, err := cache.Get("youtube")
	if assert.NoError(err) {
		assert.False(ok)
	}

	assert.NoError(cache.Set("youtube", 1530))
	count, ok, err := cache.Get("youtube")
	if assert.NoError(err) {
		assert.True(ok)
		assert.Equal(int64(1530), count)
	}

	_, ok, _ = cache.Get("telegram")
	assert.False(ok)

	time.Sleep(100 * time.Millisecond)
	_, ok, err = cache.Get("youtube")
	if assert.NoError(err) {
		assert.False(ok, "entry should expire after ttl")
	}
}

func TestStatCacheWithoutTTL(t *testing.T) {
	assert := assert.New(t)

	bdb, err := buntdb.Open(":memory:")
	if err != nil {
		panic(err)
	}
	defer bdb.Close()

	cache := &StatCache{Buntdb: bdb}
	assert.NoError(cache.Set("telegram", 1))
	assert.NoError(cache.Set("telegram", 2))

	count, ok, err := cache.Get("telegram")
	if assert.NoError(err) && assert.True(ok) {
		assert.Equal(int64(2), count)
	}
}
