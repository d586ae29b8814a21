package report

import (
	"hearth/internal/core"

	"github.com/shopspring/decimal"
)

// OverviewConfig holds the tunable constants of the monthly overview,
// kept out of the derivation functions so they can be overridden and
// tested in isolation.
type OverviewConfig struct {
	// AssumedBusinessExpenses is subtracted from business income when
	// estimating the business margin.
	AssumedBusinessExpenses core.Money

	// FixedExpenseShare is the estimated fraction of total expenses that
	// is fixed (rent, subscriptions); the remainder counts as variable.
	FixedExpenseShare float64
}

// DefaultOverviewConfig returns the documented defaults: $1,500 assumed
// business expenses and an 85/15 fixed/variable split.
func DefaultOverviewConfig() OverviewConfig {
	return OverviewConfig{
		AssumedBusinessExpenses: core.Money{Cents: 1500_00},
		FixedExpenseShare:       0.85,
	}
}

// Overview is the dashboard's derived monthly picture.
type Overview struct {
	TotalIncome     core.Money
	TotalExpenses   core.Money
	BusinessIncome  core.Money
	PersonalIncome  core.Money
	FixedExpenses   core.Money
	VariableExpenses core.Money
	NetCashflow     core.Money
	SavingsRate     float64 // percent of income kept; 0 when no income
	BusinessMargin  float64 // percent; 0 when no business income
	CashflowLevel   string
	MarginLevel     string
}

// Cashflow and margin severity tags.
const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelPositive  = "positive"
	LevelNegative  = "negative"
	LevelOK        = "ok"
	LevelLow       = "low"
)

var cashflowLevels = []Level{
	{Tag: LevelExcellent, Min: 2000},
	{Tag: LevelGood, Min: 1000},
	{Tag: LevelPositive, Min: 0},
}

var marginLevels = []Level{
	{Tag: LevelGood, Min: 50},
	{Tag: LevelOK, Min: 30},
}

// BuildOverview derives the monthly metrics from the full income and
// expense collections.
func BuildOverview(incomes []core.Income, expenses []core.Expense, cfg OverviewConfig) Overview {
	o := Overview{
		TotalIncome:   Total(incomes, IncomeAmount),
		TotalExpenses: Total(expenses, ExpenseAmount),
	}
	for _, in := range incomes {
		switch in.Type {
		case core.IncomeBusiness:
			o.BusinessIncome = o.BusinessIncome.Add(in.Amount)
		case core.IncomePersonal:
			o.PersonalIncome = o.PersonalIncome.Add(in.Amount)
		}
	}

	o.FixedExpenses = scale(o.TotalExpenses, cfg.FixedExpenseShare)
	o.VariableExpenses = o.TotalExpenses.Sub(o.FixedExpenses)
	o.NetCashflow = o.TotalIncome.Sub(o.TotalExpenses)

	if o.TotalIncome.Cents > 0 {
		o.SavingsRate = float64(o.NetCashflow.Cents) / float64(o.TotalIncome.Cents) * 100
	}
	if o.BusinessIncome.Cents > 0 {
		net := o.BusinessIncome.Sub(cfg.AssumedBusinessExpenses)
		o.BusinessMargin = float64(net.Cents) / float64(o.BusinessIncome.Cents) * 100
	}

	o.CashflowLevel = Classify(o.NetCashflow.Dollars(), cashflowLevels, LevelNegative)
	o.MarginLevel = Classify(o.BusinessMargin, marginLevels, LevelLow)
	return o
}

// scale multiplies an amount by a fraction with half-up cent rounding.
func scale(m core.Money, fraction float64) core.Money {
	scaled := decimal.NewFromInt(m.Cents).Mul(decimal.NewFromFloat(fraction)).Round(0)
	return core.Money{Cents: scaled.IntPart()}
}

// Insights derives the dashboard's advisory lines. Each rule fires
// independently of the others.
func Insights(o Overview) []string {
	var out []string
	if o.NetCashflow.Cents > 2000_00 {
		out = append(out, "Excellent cashflow! Consider increasing savings or business investment.")
	}
	if o.SavingsRate >= 40 {
		out = append(out, "Outstanding savings rate! You're on track for your goal.")
	}
	if o.TotalIncome.Cents > 0 && float64(o.FixedExpenses.Cents)/float64(o.TotalIncome.Cents) > 0.5 {
		out = append(out, "Fixed expenses are high. Consider ways to reduce recurring costs.")
	}
	if o.BusinessIncome.Cents > 0 && o.BusinessMargin < 30 {
		out = append(out, "Business margins could improve. Review ad spend and costs.")
	}
	return out
}
