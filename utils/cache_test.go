package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Set(ctx, "cache:index:stats", []byte("1"), time.Minute)
	s.Set(ctx, "cache:other", []byte("2"), time.Minute)
	s.Set(ctx, "stale", []byte("3"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	v, ok := s.Get(ctx, "cache:index:stats")
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	_, ok = s.Get(ctx, "stale")
	assert.False(t, ok)

	s.InvalidateByPrefix(ctx, "cache:index")
	_, ok = s.Get(ctx, "cache:index:stats")
	assert.False(t, ok)
	_, ok = s.Get(ctx, "cache:other")
	assert.True(t, ok)
}

func TestCacheJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type stats struct {
		Posts int `json:"posts"`
	}
	CacheSetJSON(ctx, s, "k", stats{Posts: 3}, time.Minute)

	var got stats
	assert.True(t, CacheGetJSON(ctx, s, "k", &got))
	assert.Equal(t, 3, got.Posts)

	s.Set(ctx, "bad", []byte("{"), time.Minute)
	assert.False(t, CacheGetJSON(ctx, s, "bad", &got))
}
