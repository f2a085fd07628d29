// Package redis implements page-cache invalidation on Redis: the cached page
// key is evicted and the path is published so renderers can rebuild it.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Options configures the Redis client and the invalidation channel.
type Options struct {
	Addr      string
	Password  string
	DB        int
	Channel   string
	KeyPrefix string
}

// NewClient opens a client and pings it.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	return client, nil
}

// Invalidator is a revalidate sink backed by Redis.
type Invalidator struct {
	client    goredis.Cmdable
	channel   string
	keyPrefix string
	log       *slog.Logger
}

// NewInvalidator creates an Invalidator publishing on channel and evicting
// keys under keyPrefix.
func NewInvalidator(client goredis.Cmdable, channel, keyPrefix string, log *slog.Logger) *Invalidator {
	return &Invalidator{
		client:    client,
		channel:   channel,
		keyPrefix: keyPrefix,
		log:       log.With("component", "redis_invalidator"),
	}
}

// Key returns the cache key for path.
func (i *Invalidator) Key(path string) string {
	return i.keyPrefix + path
}

// Invalidate evicts the cached page and publishes path in one pipeline.
func (i *Invalidator) Invalidate(ctx context.Context, path string) error {
	var (
		del *goredis.IntCmd
		pub *goredis.IntCmd
	)
	_, err := i.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		del = p.Del(ctx, i.Key(path))
		pub = p.Publish(ctx, i.channel, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate %s: %w", path, err)
	}

	i.log.DebugContext(ctx, "page invalidated",
		slog.String("path", path),
		slog.Int64("evicted", del.Val()),
		slog.Int64("subscribers", pub.Val()),
	)
	return nil
}
