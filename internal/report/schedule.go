package report

import (
	"sort"
	"time"

	"hearth/internal/core"
)

// DaysUntil returns the whole days from reference to target, rounding any
// partial day up. Negative means the target has passed; zero means today.
func DaysUntil(target, reference core.Date) int {
	diff := target.Time.Sub(reference.Time)
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// DueStatus tags a bill relative to the current date.
type DueStatus string

const (
	DuePaid      DueStatus = "paid"
	DueOverdue   DueStatus = "overdue"
	DueSoon      DueStatus = "due-soon"  // within 3 days
	DueThisWeek  DueStatus = "this-week" // within 7 days
	DueScheduled DueStatus = "scheduled"
)

// ClassifyDue tags a bill. Paid wins outright; otherwise the status
// follows how close the due date is.
func ClassifyDue(b core.Bill, today core.Date) DueStatus {
	if b.IsPaid {
		return DuePaid
	}
	days := DaysUntil(b.DueDate, today)
	switch {
	case days < 0:
		return DueOverdue
	case days <= 3:
		return DueSoon
	case days <= 7:
		return DueThisWeek
	default:
		return DueScheduled
	}
}

// SortBills returns a copy ordered for display: unpaid before paid, then
// ascending by due date. The input is left untouched.
func SortBills(bills []core.Bill) []core.Bill {
	out := make([]core.Bill, len(bills))
	copy(out, bills)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPaid != out[j].IsPaid {
			return !out[i].IsPaid
		}
		return out[i].DueDate.Before(out[j].DueDate.Time)
	})
	return out
}

// UpcomingTotal sums the unpaid bills that are not yet overdue.
func UpcomingTotal(bills []core.Bill, today core.Date) core.Money {
	var sum core.Money
	for _, b := range bills {
		if !b.IsPaid && DaysUntil(b.DueDate, today) >= 0 {
			sum = sum.Add(b.Amount)
		}
	}
	return sum
}
