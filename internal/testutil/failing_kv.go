package testutil

import (
	"context"
	"sync/atomic"
)

// KV is the method set of repository.KVRepo, restated here so testutil does
// not import repository (whose own tests import testutil).
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// FailingKV wraps a KV and injects errors. Put fails from the FailPutOn-th
// call onwards (counted from 1; 0 never fails). Get fails every time when
// GetErr is set.
type FailingKV struct {
	KV
	FailPutOn int32
	PutErr    error
	GetErr    error

	puts atomic.Int32
}

func (f *FailingKV) Get(ctx context.Context, key string) (string, error) {
	if f.GetErr != nil {
		return "", f.GetErr
	}
	return f.KV.Get(ctx, key)
}

func (f *FailingKV) Put(ctx context.Context, key, value string) error {
	n := f.puts.Add(1)
	if f.FailPutOn > 0 && n >= f.FailPutOn {
		return f.PutErr
	}
	return f.KV.Put(ctx, key, value)
}

// Puts returns how many Put calls were attempted.
func (f *FailingKV) Puts() int {
	return int(f.puts.Load())
}
