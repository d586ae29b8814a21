package books

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"hearth/internal/core"
	"hearth/internal/store"
)

// ExpenseBook manages the monthly expense collection.
type ExpenseBook struct {
	base[core.Expense]
}

func LoadExpenseBook(ctx context.Context, st store.Store) (*ExpenseBook, error) {
	items := []core.Expense{}
	if err := st.Get(ctx, store.KeyExpenses, &items); err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return &ExpenseBook{base: newBase(st, store.KeyExpenses, items)}, nil
}

// ExpenseInput is the user-entered part of an expense record.
type ExpenseInput struct {
	Name        string
	Amount      core.Money
	Category    core.ExpenseCategory
	IsRecurring bool
	Purpose     string
}

// Add creates the expense unpaid, with a fresh id.
func (b *ExpenseBook) Add(ctx context.Context, in ExpenseInput) (core.Expense, error) {
	rec := core.Expense{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Amount:      in.Amount,
		Category:    in.Category,
		IsPaid:      false,
		IsRecurring: in.IsRecurring,
		Purpose:     in.Purpose,
	}
	if err := rec.Validate(); err != nil {
		return core.Expense{}, err
	}

	err := b.append(ctx, rec)
	if err == nil {
		slog.InfoContext(ctx, "Expense recorded",
			"id", rec.ID, "name", rec.Name,
			"amount_cents", rec.Amount.Cents, "category", string(rec.Category),
			"recurring", rec.IsRecurring)
	}
	return rec, err
}

// SetPaid updates the paid flag of one expense.
func (b *ExpenseBook) SetPaid(ctx context.Context, id string, paid bool) error {
	return b.update(ctx, id,
		func(e core.Expense) string { return e.ID },
		func(e core.Expense) core.Expense {
			e.IsPaid = paid
			return e
		})
}

func (b *ExpenseBook) Remove(ctx context.Context, id string) error {
	return b.remove(ctx, id, func(e core.Expense) string { return e.ID })
}

func (b *ExpenseBook) List() []core.Expense {
	return b.list()
}
