package report

import (
	"testing"

	"hearth/internal/core"
)

func savingsState(current, goal int64, target core.Date) core.SavingsState {
	return core.SavingsState{
		Current:    core.Money{Cents: current},
		Goal:       core.Money{Cents: goal},
		TargetDate: target,
	}
}

func TestBuildSavingsReportOnTrack(t *testing.T) {
	today := core.NewDate(2024, 1, 1)
	// 12000 remaining over 181 days, rounded up to 7 months
	r := BuildSavingsReport(savingsState(23000_00, 35000_00, core.NewDate(2024, 6, 30)), today)

	if r.Status != GoalOnTrack {
		t.Fatalf("expected on-track, got %s", r.Status)
	}
	if r.Remaining.Cents != 12000_00 {
		t.Fatalf("remaining: expected 1200000, got %d", r.Remaining.Cents)
	}
	if r.MonthsRemaining != 7 {
		t.Fatalf("181 days rounds up to 7 months with a 30-day month, got %d", r.MonthsRemaining)
	}
	if r.MonthlyTarget.Cents != 12000_00/7 {
		t.Fatalf("monthly target: expected %d, got %d", 12000_00/7, r.MonthlyTarget.Cents)
	}
	wantProgress := float64(23000_00) / float64(35000_00) * 100
	if r.Progress != wantProgress {
		t.Fatalf("progress: expected %v, got %v", wantProgress, r.Progress)
	}
}

func TestBuildSavingsReportTargetWithinMonth(t *testing.T) {
	today := core.NewDate(2024, 1, 1)
	r := BuildSavingsReport(savingsState(100_00, 200_00, core.NewDate(2024, 1, 10)), today)
	if r.MonthsRemaining != 1 {
		t.Fatalf("a near target still counts as one month, got %d", r.MonthsRemaining)
	}
	if r.MonthlyTarget.Cents != 100_00 {
		t.Fatalf("expected the whole remainder this month, got %d", r.MonthlyTarget.Cents)
	}
}

func TestBuildSavingsReportOverdue(t *testing.T) {
	today := core.NewDate(2024, 8, 1)
	r := BuildSavingsReport(savingsState(100_00, 200_00, core.NewDate(2024, 6, 30)), today)
	if r.Status != GoalOverdue {
		t.Fatalf("expected overdue, got %s", r.Status)
	}
	if r.MonthlyTarget.Cents != 0 || r.MonthsRemaining != 0 {
		t.Fatalf("an overdue goal has no schedule, got target=%d months=%d",
			r.MonthlyTarget.Cents, r.MonthsRemaining)
	}
	if r.Remaining.Cents != 100_00 {
		t.Fatalf("remaining still reported when overdue, got %d", r.Remaining.Cents)
	}
}

func TestBuildSavingsReportReached(t *testing.T) {
	today := core.NewDate(2024, 8, 1)
	r := BuildSavingsReport(savingsState(250_00, 200_00, core.NewDate(2024, 6, 30)), today)
	if r.Status != GoalReached {
		t.Fatalf("expected reached even past the target date, got %s", r.Status)
	}
	if !r.Remaining.IsZero() {
		t.Fatalf("remaining clamps at zero when over the goal, got %d", r.Remaining.Cents)
	}
	if r.Progress != 125 {
		t.Fatalf("progress: expected 125, got %v", r.Progress)
	}
}

func TestMilestones(t *testing.T) {
	labels := []string{"Emergency Fund", "Safety Buffer", "Final Goal"}
	amounts := []core.Money{{Cents: 25000_00}, {Cents: 30000_00}, {Cents: 35000_00}}

	got := Milestones(core.Money{Cents: 27000_00}, labels, amounts)
	if len(got) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(got))
	}
	if !got[0].Reached || !got[0].ToGo.IsZero() {
		t.Fatalf("first milestone should be reached: %+v", got[0])
	}
	if got[1].Reached || got[1].ToGo.Cents != 3000_00 {
		t.Fatalf("second milestone: %+v", got[1])
	}
	if got[2].Reached || got[2].ToGo.Cents != 8000_00 {
		t.Fatalf("third milestone: %+v", got[2])
	}

	// mismatched config lengths take the shorter side
	short := Milestones(core.Money{}, labels[:1], amounts)
	if len(short) != 1 {
		t.Fatalf("expected 1 milestone, got %d", len(short))
	}
}
