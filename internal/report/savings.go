package report

import "hearth/internal/core"

// GoalStatus classifies progress towards the savings goal.
type GoalStatus string

const (
	GoalReached GoalStatus = "reached"
	GoalOnTrack GoalStatus = "on-track"
	GoalOverdue GoalStatus = "overdue" // target date passed with the goal unmet
)

// SavingsReport is the derived view of the savings goal.
type SavingsReport struct {
	Current         core.Money
	Goal            core.Money
	Remaining       core.Money // clamped at zero
	Progress        float64    // percent, may exceed 100
	Status          GoalStatus
	MonthsRemaining int
	MonthlyTarget   core.Money
}

// BuildSavingsReport derives savings progress for the given day.
//
// Months remaining is the ceiling of days-to-target over 30. A target
// date already passed never produces a negative denominator: the report
// is classified Overdue with a zero monthly target, and a target due
// within the current month still counts as one month so the remaining
// amount stays meaningful.
func BuildSavingsReport(s core.SavingsState, today core.Date) SavingsReport {
	r := SavingsReport{
		Current:  s.Current,
		Goal:     s.Goal,
		Progress: ProgressPercentage(s.Current, s.Goal),
	}

	remaining := s.Goal.Sub(s.Current)
	if remaining.Cents > 0 {
		r.Remaining = remaining
	}

	days := DaysUntil(s.TargetDate, today)
	switch {
	case r.Remaining.IsZero():
		r.Status = GoalReached
		r.MonthsRemaining = monthsFromDays(days)
	case days < 0:
		r.Status = GoalOverdue
	default:
		r.Status = GoalOnTrack
		r.MonthsRemaining = monthsFromDays(days)
		if r.MonthsRemaining < 1 {
			r.MonthsRemaining = 1
		}
		r.MonthlyTarget = core.Money{Cents: r.Remaining.Cents / int64(r.MonthsRemaining)}
	}
	return r
}

func monthsFromDays(days int) int {
	if days <= 0 {
		return 0
	}
	months := days / 30
	if days%30 > 0 {
		months++
	}
	return months
}

// Milestone is one fixed waypoint on the way to the goal.
type Milestone struct {
	Label   string
	Amount  core.Money
	Reached bool
	ToGo    core.Money // zero once reached
}

// Milestones evaluates the configured waypoints against the current
// balance, preserving their configured order.
func Milestones(current core.Money, labels []string, amounts []core.Money) []Milestone {
	n := len(amounts)
	if len(labels) < n {
		n = len(labels)
	}
	out := make([]Milestone, 0, n)
	for i := 0; i < n; i++ {
		m := Milestone{Label: labels[i], Amount: amounts[i]}
		if current.Cents >= amounts[i].Cents {
			m.Reached = true
		} else {
			m.ToGo = amounts[i].Sub(current)
		}
		out = append(out, m)
	}
	return out
}
