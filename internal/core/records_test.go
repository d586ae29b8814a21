package core

import (
	"errors"
	"testing"
)

func TestIncomeValidate(t *testing.T) {
	valid := Income{
		ID:     "a",
		Source: "Consulting",
		Amount: Money{Cents: 280000},
		Type:   IncomeBusiness,
		Date:   NewDate(2024, 1, 15),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid income rejected: %v", err)
	}

	blank := valid
	blank.Source = "   "
	if err := blank.Validate(); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}

	zero := valid
	zero.Amount = Money{}
	if err := zero.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	wrongType := valid
	wrongType.Type = "royalties"
	if err := wrongType.Validate(); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestExpenseValidate(t *testing.T) {
	valid := Expense{ID: "b", Name: "Rent", Amount: Money{Cents: 120000}, Category: ExpenseRent}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}
	noName := valid
	noName.Name = ""
	if err := noName.Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestDailySpendValidate(t *testing.T) {
	valid := DailySpend{
		ID:          "c",
		Date:        NewDate(2024, 3, 2),
		Category:    SpendFood,
		Amount:      Money{Cents: 1250},
		Description: "lunch",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid spend rejected: %v", err)
	}
	noDesc := valid
	noDesc.Description = " "
	if err := noDesc.Validate(); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestBillValidate(t *testing.T) {
	valid := Bill{ID: "d", Name: "Visa", Amount: Money{Cents: 45000}, DueDate: NewDate(2024, 4, 20), Category: BillCard}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid bill rejected: %v", err)
	}
	badCat := valid
	badCat.Category = "loan"
	if err := badCat.Validate(); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
