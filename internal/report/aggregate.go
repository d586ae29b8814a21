// Package report is the aggregation engine: pure derivation functions that
// turn raw domain collections into the summary values shown by the views.
//
// Every function here is total over its input domain. Empty collections
// produce zero values, never errors, and inputs are never mutated.
package report

import (
	"sort"

	"hearth/internal/core"
)

// Total sums the amounts of a collection. Empty input yields zero.
func Total[T any](items []T, amount func(T) core.Money) core.Money {
	var sum core.Money
	for _, it := range items {
		sum = sum.Add(amount(it))
	}
	return sum
}

// GroupTotals partitions a collection by a discriminator and sums each
// partition's amounts.
func GroupTotals[T any, K comparable](items []T, key func(T) K, amount func(T) core.Money) map[K]core.Money {
	totals := make(map[K]core.Money)
	for _, it := range items {
		k := key(it)
		totals[k] = totals[k].Add(amount(it))
	}
	return totals
}

// RankedEntry is one row of a descending-by-amount category ranking.
type RankedEntry[K ~string] struct {
	Key    K
	Amount core.Money
}

// Ranked turns group totals into a sequence sorted non-increasing by
// amount. Ties break on key order so the output is deterministic.
func Ranked[K ~string](totals map[K]core.Money) []RankedEntry[K] {
	out := make([]RankedEntry[K], 0, len(totals))
	for k, v := range totals {
		out = append(out, RankedEntry[K]{Key: k, Amount: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// FilterMonth returns the records whose date falls in the given calendar
// month. Calendar semantics, not 30-day windows.
func FilterMonth[T any](items []T, date func(T) core.Date, year, month int) []T {
	var out []T
	for _, it := range items {
		if date(it).InMonth(year, month) {
			out = append(out, it)
		}
	}
	return out
}

// DailyAverage divides a month-to-date total by the 1-indexed day of the
// month. Day-of-month is at least 1 by construction; anything lower is
// treated as an empty month.
func DailyAverage(monthTotal core.Money, dayOfMonth int) core.Money {
	if dayOfMonth < 1 {
		return core.Money{}
	}
	return core.Money{Cents: monthTotal.Cents / int64(dayOfMonth)}
}

// ProgressPercentage returns current/goal as a percentage. The caller
// guarantees goal > 0; a non-positive goal yields zero rather than NaN so
// the function stays total.
func ProgressPercentage(current, goal core.Money) float64 {
	if goal.Cents <= 0 {
		return 0
	}
	return float64(current.Cents) / float64(goal.Cents) * 100
}

// IncomeAmount, ExpenseAmount, SpendAmount and BillAmount are the amount
// accessors the handlers pass to the generic helpers.
func IncomeAmount(i core.Income) core.Money   { return i.Amount }
func ExpenseAmount(e core.Expense) core.Money { return e.Amount }
func SpendAmount(s core.DailySpend) core.Money { return s.Amount }
func BillAmount(b core.Bill) core.Money       { return b.Amount }
