package books

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"hearth/internal/core"
	"hearth/internal/store"
)

// SavingsTracker manages the single savings balance. The goal and target
// date are fixed at load time; only the current amount moves, by signed
// deltas clamped at zero.
type SavingsTracker struct {
	mu    sync.Mutex
	store store.Store
	state core.SavingsState
}

// LoadSavingsTracker reads the persisted savings state; defaults apply on
// first use.
func LoadSavingsTracker(ctx context.Context, st store.Store, defaults core.SavingsState) (*SavingsTracker, error) {
	state := defaults
	if err := st.Get(ctx, store.KeySavings, &state); err != nil {
		return nil, fmt.Errorf("load savings: %w", err)
	}
	return &SavingsTracker{store: st, state: state}, nil
}

// Adjust moves the current amount by delta cents. The result never drops
// below zero. Returns the state after the adjustment.
func (t *SavingsTracker) Adjust(ctx context.Context, deltaCents int64) (core.SavingsState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.state.Current.Cents + deltaCents
	if next < 0 {
		next = 0
	}
	t.state.Current = core.Money{Cents: next}

	if err := t.store.Set(ctx, store.KeySavings, t.state); err != nil {
		return t.state, fmt.Errorf("persist savings: %w", err)
	}
	slog.InfoContext(ctx, "Savings adjusted",
		"delta_cents", deltaCents, "current_cents", t.state.Current.Cents)
	return t.state, nil
}

// State returns a snapshot of the savings state.
func (t *SavingsTracker) State() core.SavingsState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
