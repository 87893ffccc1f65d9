package cache

import (
	"context"
	"time"
)

// Cache is a byte-level read cache for hot lookup paths. The status read
// endpoint is polled aggressively by clients, so responses are cached for a
// few seconds and dropped on every availability write.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Noop serves as the fallback when no Redis is configured.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *Noop) Delete(ctx context.Context, key string) error {
	return nil
}
