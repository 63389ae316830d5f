package cache

import (
	"context"
	"time"
)

// Cache is a string key-value store with expiration
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}
