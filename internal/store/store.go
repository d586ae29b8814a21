// Package store provides the persisted record store: a generic key-value
// store with JSON-serialized values, one key per domain collection.
//
// Get leaves the destination untouched when the key is absent, so callers
// pass a destination already holding the collection's default value.
package store

import "context"

// Store is the persistence boundary for domain collections.
type Store interface {
	// Get decodes the value stored under key into dst. A missing key is
	// not an error; dst keeps whatever default the caller initialized.
	Get(ctx context.Context, key string, dst any) error

	// Set encodes v as JSON and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, v any) error
}

// Collection keys. Each domain collection owns exactly one key.
const (
	KeyIncomes     = "incomes"
	KeyExpenses    = "expenses"
	KeyDailySpends = "dailySpends"
	KeyBills       = "dueDates"
	KeySavings     = "savings"
)
