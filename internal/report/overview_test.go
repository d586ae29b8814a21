package report

import (
	"testing"

	"hearth/internal/core"
)

func TestBuildOverview(t *testing.T) {
	incomes := []core.Income{
		income(2800_00, core.IncomeBusiness, core.NewDate(2024, 3, 1)),
		income(1200_00, core.IncomePersonal, core.NewDate(2024, 3, 5)),
	}
	expenses := []core.Expense{
		{Name: "rent", Amount: core.Money{Cents: 1500_00}, Category: core.ExpenseRent, IsRecurring: true},
		{Name: "misc", Amount: core.Money{Cents: 500_00}, Category: core.ExpenseMisc},
	}

	o := BuildOverview(incomes, expenses, DefaultOverviewConfig())

	if o.TotalIncome.Cents != 4000_00 {
		t.Fatalf("total income: expected 400000, got %d", o.TotalIncome.Cents)
	}
	if o.BusinessIncome.Cents != 2800_00 || o.PersonalIncome.Cents != 1200_00 {
		t.Fatalf("income split wrong: %d / %d", o.BusinessIncome.Cents, o.PersonalIncome.Cents)
	}
	if o.TotalExpenses.Cents != 2000_00 {
		t.Fatalf("total expenses: expected 200000, got %d", o.TotalExpenses.Cents)
	}
	if o.FixedExpenses.Cents != 1700_00 || o.VariableExpenses.Cents != 300_00 {
		t.Fatalf("85/15 split wrong: %d / %d", o.FixedExpenses.Cents, o.VariableExpenses.Cents)
	}
	if o.NetCashflow.Cents != 2000_00 {
		t.Fatalf("net cashflow: expected 200000, got %d", o.NetCashflow.Cents)
	}
	if o.SavingsRate != 50 {
		t.Fatalf("savings rate: expected 50, got %v", o.SavingsRate)
	}

	// (2800 - 1500) / 2800 * 100
	wantMargin := float64(1300_00) / float64(2800_00) * 100
	if o.BusinessMargin != wantMargin {
		t.Fatalf("business margin: expected %v, got %v", wantMargin, o.BusinessMargin)
	}

	if o.CashflowLevel != LevelExcellent {
		t.Fatalf("cashflow $2000 meets the excellent bound, got %q", o.CashflowLevel)
	}
	if o.MarginLevel != LevelOK {
		t.Fatalf("margin ~46%% is ok, got %q", o.MarginLevel)
	}
}

func TestBuildOverviewNoIncome(t *testing.T) {
	expenses := []core.Expense{
		{Name: "rent", Amount: core.Money{Cents: 1000_00}, Category: core.ExpenseRent},
	}
	o := BuildOverview(nil, expenses, DefaultOverviewConfig())
	if o.SavingsRate != 0 || o.BusinessMargin != 0 {
		t.Fatalf("rates must stay zero without income, got %v / %v", o.SavingsRate, o.BusinessMargin)
	}
	if o.NetCashflow.Cents != -1000_00 {
		t.Fatalf("expected -100000 cashflow, got %d", o.NetCashflow.Cents)
	}
	if o.CashflowLevel != LevelNegative {
		t.Fatalf("expected negative level, got %q", o.CashflowLevel)
	}
}

func TestInsights(t *testing.T) {
	rich := Overview{
		TotalIncome:    core.Money{Cents: 6000_00},
		BusinessIncome: core.Money{Cents: 5000_00},
		FixedExpenses:  core.Money{Cents: 1000_00},
		NetCashflow:    core.Money{Cents: 2500_00},
		SavingsRate:    41,
		BusinessMargin: 70,
	}
	got := Insights(rich)
	if len(got) != 2 {
		t.Fatalf("expected cashflow and savings insights, got %v", got)
	}

	strained := Overview{
		TotalIncome:    core.Money{Cents: 2000_00},
		BusinessIncome: core.Money{Cents: 2000_00},
		FixedExpenses:  core.Money{Cents: 1500_00},
		NetCashflow:    core.Money{Cents: 100_00},
		SavingsRate:    5,
		BusinessMargin: 10,
	}
	got = Insights(strained)
	if len(got) != 2 {
		t.Fatalf("expected fixed-cost and margin insights, got %v", got)
	}
}
