// Package cache stores rendered tool responses so repeated requests skip the
// solver.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

//go:generate mockgen -source=repository.go -destination=../mocks/cache/mock_repository.go -package=mock_cache

// Repository is a string key/value store. Get reports a miss with ok=false
// and a nil error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

const keyPrefix = "gosolve:"

// Key derives the cache key of a tool call from its name and the params
// that affect the result.
func Key(tool, mode, latex string) string {
	sum := sha256.Sum256([]byte(tool + "\x00" + mode + "\x00" + latex))
	return keyPrefix + hex.EncodeToString(sum[:])
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// New opens the repository for backend. BackendNone yields a nil
// Repository, which callers treat as caching disabled.
func New(backend, redisAddr string, ttl time.Duration) (Repository, error) {
	switch backend {
	case BackendNone:
		return nil, nil
	case BackendMemory:
		return NewMemoryRepository(ttl), nil
	case BackendRedis:
		return NewRedisRepository(redisAddr, ttl), nil
	}
	return nil, fmt.Errorf("unknown cache backend: %s", backend)
}
