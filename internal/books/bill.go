package books

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hearth/internal/core"
	"hearth/internal/store"
)

// BillBook manages the due-date collection.
type BillBook struct {
	base[core.Bill]
}

func LoadBillBook(ctx context.Context, st store.Store) (*BillBook, error) {
	items := []core.Bill{}
	if err := st.Get(ctx, store.KeyBills, &items); err != nil {
		return nil, fmt.Errorf("load bills: %w", err)
	}
	return &BillBook{base: newBase(st, store.KeyBills, items)}, nil
}

// BillInput is the user-entered part of a bill record.
type BillInput struct {
	Name     string
	Amount   core.Money
	DueDate  core.Date
	Category core.BillCategory
}

// Add creates the bill unpaid, with a fresh id.
func (b *BillBook) Add(ctx context.Context, in BillInput) (core.Bill, error) {
	rec := core.Bill{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Amount:   in.Amount,
		DueDate:  in.DueDate,
		IsPaid:   false,
		Category: in.Category,
	}
	if err := rec.Validate(); err != nil {
		return core.Bill{}, err
	}
	return rec, b.append(ctx, rec)
}

// SetPaid updates the paid flag of one bill.
func (b *BillBook) SetPaid(ctx context.Context, id string, paid bool) error {
	return b.update(ctx, id,
		func(bl core.Bill) string { return bl.ID },
		func(bl core.Bill) core.Bill {
			bl.IsPaid = paid
			return bl
		})
}

func (b *BillBook) Remove(ctx context.Context, id string) error {
	return b.remove(ctx, id, func(bl core.Bill) string { return bl.ID })
}

// List returns the collection in insertion order; display ordering is the
// aggregation layer's concern.
func (b *BillBook) List() []core.Bill {
	return b.list()
}
