package store

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Persister is the durable key-value storage a store snapshots into.
// Load returns (nil, nil) when the key has never been written.
type Persister interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type RedisPersister struct {
	client *redis.Client
}

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client}
}

func (p *RedisPersister) Save(ctx context.Context, key string, data []byte) error {
	return p.client.Set(ctx, key, data, 0).Err()
}

func (p *RedisPersister) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := p.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *RedisPersister) Delete(ctx context.Context, key string) error {
	return p.client.Del(ctx, key).Err()
}

// MemoryPersister keeps snapshots in process memory. Used in tests and as
// a fallback when no Redis address is configured.
type MemoryPersister struct {
	mu   sync.RWMutex
	blob map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{blob: make(map[string][]byte)}
}

func (p *MemoryPersister) Save(_ context.Context, key string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	p.blob[key] = cp
	return nil
}

func (p *MemoryPersister) Load(_ context.Context, key string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	data, ok := p.blob[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (p *MemoryPersister) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.blob, key)
	return nil
}
