package cache_test

import (
	"busticket/infras/otel/mocks"
	"busticket/shared/cache"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisCache_SaveMarshalError(t *testing.T) {
	c := cache.NewRedisCache(unreachableClient(t), mocks.NewOtel())

	err := c.Save(context.Background(), "session:x", make(chan int), 60)

	assert.ErrorContains(t, err, "failed to marshal cache value")
}

func TestRedisCache_ConnectionErrors(t *testing.T) {
	c := cache.NewRedisCache(unreachableClient(t), mocks.NewOtel())
	ctx := context.Background()

	var value string

	err := c.Get(ctx, "session:x", &value)
	assert.ErrorContains(t, err, "failed to get cache value")
	assert.NotErrorIs(t, err, cache.ErrCacheMiss)

	assert.ErrorContains(t, c.Save(ctx, "session:x", "a@x.com", 60), "failed to set cache value")
	assert.ErrorContains(t, c.Delete(ctx, "session:x"), "failed to delete cache value")
}
