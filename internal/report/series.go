package report

import (
	"time"

	"hearth/internal/core"
)

// MonthSummary is one period of the chart series: income totals with the
// business/personal split plus an expense estimate for that month.
type MonthSummary struct {
	Year     int
	Month    int
	Label    string // short month name, e.g. "Jan"
	HasData  bool
	Income   core.Money
	Business core.Money
	Personal core.Money
	Expenses core.Money
}

// MonthlySeries builds one summary per calendar month ending at the
// reference month, oldest first. Income is month-filtered by record date.
// Expenses carry no date, so the estimate counts paid recurring expenses
// in full each month and spreads paid one-off expenses evenly across the
// window. A month with neither income records nor an expense estimate is
// reported with HasData=false instead of fabricated placeholder values.
func MonthlySeries(incomes []core.Income, expenses []core.Expense, monthsBack int, reference core.Date) []MonthSummary {
	if monthsBack < 1 {
		return nil
	}

	estimate := monthlyExpenseEstimate(expenses, monthsBack)

	out := make([]MonthSummary, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		year, month := shiftMonth(reference.Year(), reference.Month(), -i)

		monthIncomes := FilterMonth(incomes,
			func(in core.Income) core.Date { return in.Date }, year, month)

		summary := MonthSummary{
			Year:     year,
			Month:    month,
			Label:    time.Month(month).String()[:3],
			Expenses: estimate,
		}
		for _, in := range monthIncomes {
			summary.Income = summary.Income.Add(in.Amount)
			switch in.Type {
			case core.IncomeBusiness:
				summary.Business = summary.Business.Add(in.Amount)
			case core.IncomePersonal:
				summary.Personal = summary.Personal.Add(in.Amount)
			}
		}
		summary.HasData = len(monthIncomes) > 0 || !estimate.IsZero()
		out = append(out, summary)
	}
	return out
}

func monthlyExpenseEstimate(expenses []core.Expense, monthsBack int) core.Money {
	var sum core.Money
	for _, e := range expenses {
		if !e.IsPaid {
			continue
		}
		if e.IsRecurring {
			sum = sum.Add(e.Amount)
		} else {
			sum = sum.Add(core.Money{Cents: e.Amount.Cents / int64(monthsBack)})
		}
	}
	return sum
}

// shiftMonth moves a year/month pair by delta months, normalizing across
// year boundaries.
func shiftMonth(year, month, delta int) (int, int) {
	m := month - 1 + delta
	y := year + m/12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, m + 1
}
