package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryKVRepo is a process-local KVRepo. Nothing survives the process.
type MemoryKVRepo struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{data: make(map[string]string)}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	if !ok {
		return "", fmt.Errorf("kv key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

func (r *MemoryKVRepo) Put(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *MemoryKVRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *MemoryKVRepo) Keys(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

var (
	_ KVRepo = (*MemoryKVRepo)(nil)
	_ KVRepo = (*SQLiteKVRepo)(nil)
)
