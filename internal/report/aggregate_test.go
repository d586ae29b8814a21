package report

import (
	"testing"

	"hearth/internal/core"
)

func spend(cat core.SpendCategory, cents int64, date core.Date) core.DailySpend {
	return core.DailySpend{
		Date:        date,
		Category:    cat,
		Amount:      core.Money{Cents: cents},
		Description: "x",
	}
}

func TestTotalEmpty(t *testing.T) {
	if got := Total(nil, SpendAmount); !got.IsZero() {
		t.Fatalf("total of empty collection must be zero, got %d", got.Cents)
	}
}

func TestGroupTotalsPartition(t *testing.T) {
	d := core.NewDate(2024, 3, 10)
	spends := []core.DailySpend{
		spend(core.SpendFood, 1200, d),
		spend(core.SpendFood, 800, d),
		spend(core.SpendGas, 4000, d),
		spend(core.SpendGroceries, 5500, d),
	}

	whole := Total(spends, SpendAmount)
	groups := GroupTotals(spends,
		func(s core.DailySpend) core.SpendCategory { return s.Category },
		SpendAmount)

	if groups[core.SpendFood].Cents != 2000 {
		t.Fatalf("food: expected 2000, got %d", groups[core.SpendFood].Cents)
	}

	var partSum core.Money
	for _, v := range groups {
		partSum = partSum.Add(v)
	}
	if partSum.Cents != whole.Cents {
		t.Fatalf("group totals must sum to the whole: %d != %d", partSum.Cents, whole.Cents)
	}
}

func TestRankedOrder(t *testing.T) {
	totals := map[core.SpendCategory]core.Money{
		core.SpendGas:       {Cents: 4000},
		core.SpendFood:      {Cents: 2000},
		core.SpendGroceries: {Cents: 5500},
		core.SpendMisc:      {Cents: 2000},
	}
	ranked := Ranked(totals)
	if len(ranked) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Amount.Cents > ranked[i-1].Amount.Cents {
			t.Fatalf("ranking must be non-increasing: %v", ranked)
		}
	}
	if ranked[0].Key != core.SpendGroceries {
		t.Fatalf("expected groceries first, got %s", ranked[0].Key)
	}
	// equal amounts fall back to key order for a stable result
	if ranked[2].Key != core.SpendFood || ranked[3].Key != core.SpendMisc {
		t.Fatalf("tie break by key failed: %v", ranked)
	}
}

func TestFilterMonth(t *testing.T) {
	spends := []core.DailySpend{
		spend(core.SpendFood, 100, core.NewDate(2024, 1, 31)),
		spend(core.SpendFood, 200, core.NewDate(2024, 2, 1)),
		spend(core.SpendFood, 300, core.NewDate(2023, 1, 15)),
	}
	got := FilterMonth(spends, func(s core.DailySpend) core.Date { return s.Date }, 2024, 1)
	if len(got) != 1 || got[0].Amount.Cents != 100 {
		t.Fatalf("expected only the 2024-01-31 spend, got %v", got)
	}
}

func TestDailyAverage(t *testing.T) {
	if got := DailyAverage(core.Money{Cents: 3000}, 3); got.Cents != 1000 {
		t.Fatalf("expected 1000, got %d", got.Cents)
	}
	if got := DailyAverage(core.Money{Cents: 3000}, 0); !got.IsZero() {
		t.Fatalf("day zero must not divide, got %d", got.Cents)
	}
}

func TestProgressPercentage(t *testing.T) {
	if got := ProgressPercentage(core.Money{Cents: 50_00}, core.Money{Cents: 200_00}); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := ProgressPercentage(core.Money{Cents: 300_00}, core.Money{Cents: 200_00}); got != 150 {
		t.Fatalf("progress may exceed 100, got %v", got)
	}
	if got := ProgressPercentage(core.Money{Cents: 50_00}, core.Money{}); got != 0 {
		t.Fatalf("zero goal must yield zero progress, got %v", got)
	}
}
