package books

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"hearth/internal/core"
	"hearth/internal/store"
)

// IncomeBook manages the income collection.
type IncomeBook struct {
	base[core.Income]
}

// LoadIncomeBook reads the persisted income collection, defaulting to an
// empty one on first use.
func LoadIncomeBook(ctx context.Context, st store.Store) (*IncomeBook, error) {
	items := []core.Income{}
	if err := st.Get(ctx, store.KeyIncomes, &items); err != nil {
		return nil, fmt.Errorf("load incomes: %w", err)
	}
	return &IncomeBook{base: newBase(st, store.KeyIncomes, items)}, nil
}

// IncomeInput is the user-entered part of an income record.
type IncomeInput struct {
	Source string
	Amount core.Money
	Type   core.IncomeType
	Date   core.Date
}

// Add validates the input, appends a record with a fresh id and persists
// the snapshot. The record's date defaults to today when absent.
func (b *IncomeBook) Add(ctx context.Context, in IncomeInput) (core.Income, error) {
	if in.Date.IsZero() {
		in.Date = core.Today()
	}
	rec := core.Income{
		ID:     uuid.NewString(),
		Source: in.Source,
		Amount: in.Amount,
		Type:   in.Type,
		Date:   in.Date,
	}
	if err := rec.Validate(); err != nil {
		return core.Income{}, err
	}

	err := b.append(ctx, rec)
	if err == nil {
		slog.InfoContext(ctx, "Income recorded",
			"id", rec.ID, "source", rec.Source,
			"amount_cents", rec.Amount.Cents, "type", string(rec.Type))
	}
	return rec, err
}

// Remove deletes the record with the given id. Absent ids are a no-op.
func (b *IncomeBook) Remove(ctx context.Context, id string) error {
	return b.remove(ctx, id, func(in core.Income) string { return in.ID })
}

// List returns a defensive copy of the current snapshot.
func (b *IncomeBook) List() []core.Income {
	return b.list()
}
