package core

import (
	"errors"
	"fmt"
)

// Closed category vocabularies. Unknown values are rejected when records
// are decoded, so free-form strings never reach the aggregation layer.

var ErrUnknownCategory = errors.New("unknown category")

type (
	// IncomeType distinguishes business revenue from personal income.
	IncomeType string

	// ExpenseCategory classifies monthly household expenses.
	ExpenseCategory string

	// SpendCategory classifies day-to-day discretionary spending.
	SpendCategory string

	// BillCategory classifies upcoming payment obligations.
	BillCategory string
)

const (
	IncomeBusiness IncomeType = "business"
	IncomePersonal IncomeType = "personal"
)

const (
	ExpenseRent         ExpenseCategory = "rent"
	ExpenseSubscription ExpenseCategory = "subscription"
	ExpenseMisc         ExpenseCategory = "misc"
	ExpenseBaby         ExpenseCategory = "baby"
)

const (
	SpendFood          SpendCategory = "food"
	SpendGas           SpendCategory = "gas"
	SpendClothing      SpendCategory = "clothing"
	SpendEntertainment SpendCategory = "entertainment"
	SpendMisc          SpendCategory = "misc"
	SpendGroceries     SpendCategory = "groceries"
	SpendUtilities     SpendCategory = "utilities"
)

const (
	BillRent         BillCategory = "rent"
	BillSubscription BillCategory = "subscription"
	BillCard         BillCategory = "card"
	BillMisc         BillCategory = "misc"
)

func (t IncomeType) Validate() error {
	switch t {
	case IncomeBusiness, IncomePersonal:
		return nil
	}
	return fmt.Errorf("%w: income type %q", ErrUnknownCategory, string(t))
}

func (c ExpenseCategory) Validate() error {
	switch c {
	case ExpenseRent, ExpenseSubscription, ExpenseMisc, ExpenseBaby:
		return nil
	}
	return fmt.Errorf("%w: expense category %q", ErrUnknownCategory, string(c))
}

func (c SpendCategory) Validate() error {
	switch c {
	case SpendFood, SpendGas, SpendClothing, SpendEntertainment,
		SpendMisc, SpendGroceries, SpendUtilities:
		return nil
	}
	return fmt.Errorf("%w: spend category %q", ErrUnknownCategory, string(c))
}

func (c BillCategory) Validate() error {
	switch c {
	case BillRent, BillSubscription, BillCard, BillMisc:
		return nil
	}
	return fmt.Errorf("%w: bill category %q", ErrUnknownCategory, string(c))
}

func (t *IncomeType) UnmarshalJSON(b []byte) error {
	v, err := unquote(b)
	if err != nil {
		return err
	}
	parsed := IncomeType(v)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (c *ExpenseCategory) UnmarshalJSON(b []byte) error {
	v, err := unquote(b)
	if err != nil {
		return err
	}
	parsed := ExpenseCategory(v)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *SpendCategory) UnmarshalJSON(b []byte) error {
	v, err := unquote(b)
	if err != nil {
		return err
	}
	parsed := SpendCategory(v)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *BillCategory) UnmarshalJSON(b []byte) error {
	v, err := unquote(b)
	if err != nil {
		return err
	}
	parsed := BillCategory(v)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*c = parsed
	return nil
}

func unquote(b []byte) (string, error) {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return "", fmt.Errorf("%w: not a string", ErrUnknownCategory)
	}
	return string(b[1 : len(b)-1]), nil
}

// SpendCategories lists every spend category in a stable order.
var SpendCategories = []SpendCategory{
	SpendFood, SpendGroceries, SpendGas, SpendClothing,
	SpendEntertainment, SpendUtilities, SpendMisc,
}

// DailyLimit returns the soft daily limit for a spend category, used only
// for warning classification, never for enforcement.
func (c SpendCategory) DailyLimit() Money {
	switch c {
	case SpendFood:
		return Money{Cents: 50_00}
	case SpendGroceries:
		return Money{Cents: 150_00}
	case SpendGas:
		return Money{Cents: 80_00}
	case SpendClothing:
		return Money{Cents: 100_00}
	case SpendEntertainment:
		return Money{Cents: 75_00}
	case SpendUtilities:
		return Money{Cents: 200_00}
	default:
		return Money{Cents: 60_00}
	}
}
