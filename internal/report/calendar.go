package report

import (
	"time"

	"hearth/internal/core"
)

// CalendarCell is one slot of the month grid: either a calendar day or a
// leading blank used to align the first of the month under its weekday.
type CalendarCell struct {
	Date  core.Date
	Empty bool
}

// BuildCalendarGrid lays out a month for the spending calendar: blanks
// equal to the weekday index of the 1st (Sunday = 0), then one cell per
// day of the month. February length follows the leap-year rules; there is
// no trailing padding.
func BuildCalendarGrid(year, month int) []CalendarCell {
	first := core.NewDate(year, month, 1)
	lead := int(first.Weekday())

	days := daysInMonth(year, month)
	cells := make([]CalendarCell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, CalendarCell{Empty: true})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, CalendarCell{Date: core.NewDate(year, month, day)})
	}
	return cells
}

func daysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayClass tags a calendar day by its spending profile.
type DayClass string

const (
	DayNone             DayClass = "none"
	DayHigh             DayClass = "high"
	DayMedium           DayClass = "medium"
	DayManyTransactions DayClass = "many-transactions"
	DayNormal           DayClass = "normal"
)

// ClassifyDay tags a day from its total and transaction count. The
// predicates are ordered; only the first true one applies: zero spend,
// then total over $100, then total over $50, then more than five
// transactions, otherwise normal.
func ClassifyDay(total core.Money, transactions int) DayClass {
	switch {
	case total.IsZero():
		return DayNone
	case total.Cents > 100_00:
		return DayHigh
	case total.Cents > 50_00:
		return DayMedium
	case transactions > 5:
		return DayManyTransactions
	default:
		return DayNormal
	}
}

// Emoji returns the calendar glyph for a day class.
func (c DayClass) Emoji() string {
	switch c {
	case DayNone:
		return "\U0001F4B0" // money bag
	case DayHigh:
		return "\U0001F6A8" // rotating light
	case DayMedium:
		return "⚠️" // warning sign
	case DayManyTransactions:
		return "\U0001F6D2" // shopping cart
	default:
		return "✅" // check mark
	}
}

// DaySpends returns the spends recorded on one calendar day.
func DaySpends(spends []core.DailySpend, date core.Date) []core.DailySpend {
	var out []core.DailySpend
	for _, s := range spends {
		if s.Date.SameDay(date) {
			out = append(out, s)
		}
	}
	return out
}

// DayTotal sums the spends of one calendar day.
func DayTotal(spends []core.DailySpend, date core.Date) core.Money {
	return Total(DaySpends(spends, date), SpendAmount)
}

// OverDailyLimit reports whether a category's total for one day exceeds
// its soft daily limit. Warning only; nothing is enforced.
func OverDailyLimit(spends []core.DailySpend, date core.Date, category core.SpendCategory) bool {
	var total core.Money
	for _, s := range DaySpends(spends, date) {
		if s.Category == category {
			total = total.Add(s.Amount)
		}
	}
	return total.Cents > category.DailyLimit().Cents
}

// SpendAnalysis is the month-to-date summary of daily discretionary
// spending shown above the calendar.
type SpendAnalysis struct {
	Total        core.Money
	DailyAverage core.Money
	Ranked       []RankedEntry[core.SpendCategory]
}

// AnalyzeMonth summarizes one calendar month of daily spending.
// dayOfMonth is the 1-indexed current day used for the daily average.
func AnalyzeMonth(spends []core.DailySpend, year, month, dayOfMonth int) SpendAnalysis {
	monthSpends := FilterMonth(spends, func(s core.DailySpend) core.Date { return s.Date }, year, month)
	total := Total(monthSpends, SpendAmount)
	byCategory := GroupTotals(monthSpends,
		func(s core.DailySpend) core.SpendCategory { return s.Category },
		SpendAmount)
	return SpendAnalysis{
		Total:        total,
		DailyAverage: DailyAverage(total, dayOfMonth),
		Ranked:       Ranked(byCategory),
	}
}

// SpendingTips derives the advisory lines shown with the monthly spending
// analysis. Each rule fires independently.
func SpendingTips(a SpendAnalysis) []string {
	var tips []string
	if a.DailyAverage.Cents > 60_00 {
		tips = append(tips, "Try setting a daily spending limit of $50")
	}
	if len(a.Ranked) > 0 && a.Ranked[0].Key == core.SpendFood && a.Ranked[0].Amount.Cents > 300_00 {
		tips = append(tips, "Consider meal prepping to reduce food costs")
	}
	for _, r := range a.Ranked {
		if r.Key == core.SpendEntertainment && r.Amount.Cents > 200_00 {
			tips = append(tips, "Look for free entertainment options like parks or libraries")
		}
	}
	if a.Total.Cents < 800_00 {
		tips = append(tips, "Great job staying under budget! You can afford to treat yourself")
	}
	return tips
}
