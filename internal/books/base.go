package books

import (
	"context"
	"fmt"
	"sync"

	"hearth/internal/store"
)

// base carries the snapshot-and-persist mechanics shared by every book.
// Mutations build a fresh slice, commit it, then write it to the store;
// on a write failure the commit stands and the error is surfaced.
type base[T any] struct {
	mu    sync.Mutex
	store store.Store
	key   string
	items []T
}

func newBase[T any](st store.Store, key string, items []T) base[T] {
	return base[T]{store: st, key: key, items: items}
}

func (b *base[T]) list() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

func (b *base[T]) append(ctx context.Context, rec T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := make([]T, len(b.items), len(b.items)+1)
	copy(next, b.items)
	b.items = append(next, rec)
	return b.persistLocked(ctx)
}

func (b *base[T]) remove(ctx context.Context, id string, idOf func(T) string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := make([]T, 0, len(b.items))
	removed := false
	for _, it := range b.items {
		if idOf(it) == id {
			removed = true
			continue
		}
		next = append(next, it)
	}
	if !removed {
		return nil
	}
	b.items = next
	return b.persistLocked(ctx)
}

func (b *base[T]) update(ctx context.Context, id string, idOf func(T) string, apply func(T) T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := make([]T, len(b.items))
	copy(next, b.items)
	found := false
	for i, it := range next {
		if idOf(it) == id {
			next[i] = apply(it)
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	b.items = next
	return b.persistLocked(ctx)
}

func (b *base[T]) persistLocked(ctx context.Context) error {
	if err := b.store.Set(ctx, b.key, b.items); err != nil {
		return fmt.Errorf("persist %s: %w", b.key, err)
	}
	return nil
}
