package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned by a KV lookup for a missing or expired
// key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the small key-value surface the session manager needs. The
// server wires the redis implementation; tests use the memory one.
type KV interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
}

type redisKV struct {
	client *redis.Client
}

// NewRedisKV connects to redis at redisURL and pings it.
func NewRedisKV(redisURL string) (KV, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &redisKV{client: client}, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

func (r *redisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryKV struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryKV returns an in-process KV used by tests.
func NewMemoryKV() KV {
	return &memoryKV{entries: make(map[string]memoryEntry)}
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, ErrKeyNotFound
	}
	return entry.value, nil
}

func (m *memoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
