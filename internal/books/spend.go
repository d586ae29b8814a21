package books

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hearth/internal/core"
	"hearth/internal/store"
)

// SpendBook manages the daily discretionary spending collection.
type SpendBook struct {
	base[core.DailySpend]
}

func LoadSpendBook(ctx context.Context, st store.Store) (*SpendBook, error) {
	items := []core.DailySpend{}
	if err := st.Get(ctx, store.KeyDailySpends, &items); err != nil {
		return nil, fmt.Errorf("load daily spends: %w", err)
	}
	return &SpendBook{base: newBase(st, store.KeyDailySpends, items)}, nil
}

// SpendInput is the user-entered part of a daily spend record.
type SpendInput struct {
	Date        core.Date
	Category    core.SpendCategory
	Amount      core.Money
	Description string
}

func (b *SpendBook) Add(ctx context.Context, in SpendInput) (core.DailySpend, error) {
	if in.Date.IsZero() {
		in.Date = core.Today()
	}
	rec := core.DailySpend{
		ID:          uuid.NewString(),
		Date:        in.Date,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
	}
	if err := rec.Validate(); err != nil {
		return core.DailySpend{}, err
	}
	return rec, b.append(ctx, rec)
}

func (b *SpendBook) Remove(ctx context.Context, id string) error {
	return b.remove(ctx, id, func(s core.DailySpend) string { return s.ID })
}

func (b *SpendBook) List() []core.DailySpend {
	return b.list()
}
