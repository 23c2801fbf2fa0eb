package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type memEntry struct {
	value     string
	expiresAt time.Time // zero = sem expiração
}

// MemoryClient é o Client usado quando REDIS_ADDR está vazio (demo e testes).
// Valores são guardados como string, igual ao Redis.
type MemoryClient struct {
	mu    sync.Mutex
	items map[string]memEntry
	now   func() time.Time
}

// NewMemoryClient cria um cache em memória vazio.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{items: make(map[string]memEntry), now: time.Now}
}

// lookup devolve a entrada viva; entradas vencidas são descartadas. Exige mu.
func (c *MemoryClient) lookup(key string) (memEntry, bool) {
	e, ok := c.items[key]
	if !ok {
		return memEntry{}, false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		return memEntry{}, false
	}
	return e, true
}

func (c *MemoryClient) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lookup(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return e.value, nil
}

func (c *MemoryClient) GetInt(ctx context.Context, key string) (int, error) {
	s, err := c.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func (c *MemoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memEntry{value: fmt.Sprint(value)}
	if expiration > 0 {
		e.expiresAt = c.now().Add(expiration)
	}
	c.items[key] = e
	return nil
}

// Incr cria a chave com 1 quando ausente, sem expiração (mesma semântica do INCR).
func (c *MemoryClient) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lookup(key)
	var n int64
	if ok {
		v, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("valor de %s não é inteiro: %w", key, err)
		}
		n = v
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	c.items[key] = e
	return n, nil
}

func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *MemoryClient) Close() error { return nil }
