package core

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("empty name")
	ErrEmptySource      = errors.New("empty source")
	ErrEmptyDescription = errors.New("empty description")
)

// Income is a single revenue entry.
type Income struct {
	ID     string     `json:"id"`
	Source string     `json:"source"`
	Amount Money      `json:"amount"`
	Type   IncomeType `json:"type"`
	Date   Date       `json:"date"`
}

// Expense is a monthly household expense. IsPaid is the only mutable field.
type Expense struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      Money           `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	IsPaid      bool            `json:"isPaid"`
	IsRecurring bool            `json:"isRecurring"`
	Purpose     string          `json:"purpose,omitempty"`
}

// DailySpend is a discretionary purchase on a specific day.
type DailySpend struct {
	ID          string        `json:"id"`
	Date        Date          `json:"date"`
	Category    SpendCategory `json:"category"`
	Amount      Money         `json:"amount"`
	Description string        `json:"description"`
}

// Bill is an upcoming payment obligation with a due date.
type Bill struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Amount   Money        `json:"amount"`
	DueDate  Date         `json:"dueDate"`
	IsPaid   bool         `json:"isPaid"`
	Category BillCategory `json:"category"`
}

// SavingsState is the single mutable savings balance plus its fixed goal.
type SavingsState struct {
	Current    Money `json:"current"`
	Goal       Money `json:"goal"`
	TargetDate Date  `json:"targetDate"`
}

func (i Income) Validate() error {
	if strings.TrimSpace(i.Source) == "" {
		return ErrEmptySource
	}
	if err := i.Amount.Validate(); err != nil {
		return err
	}
	if err := i.Type.Validate(); err != nil {
		return err
	}
	return i.Date.Validate()
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return e.Category.Validate()
}

func (s DailySpend) Validate() error {
	if err := s.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Description) == "" {
		return ErrEmptyDescription
	}
	if err := s.Amount.Validate(); err != nil {
		return err
	}
	return s.Category.Validate()
}

func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if err := b.DueDate.Validate(); err != nil {
		return err
	}
	return b.Category.Validate()
}
