package http

import (
	"net/http"

	"hearth/internal/core"
	"hearth/internal/report"
)

type adjustRequest struct {
	// Delta is a signed decimal amount; negative values are withdrawals.
	Delta string `json:"delta"`
}

func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	s.writeSavingsReport(w, http.StatusOK)
}

func (s *Server) handleAdjustSavings(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if !decodeBody(w, r, &req) {
		return
	}
	delta, err := core.ParseSignedAmount(req.Delta)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid delta amount")
		return
	}

	if _, err := s.savings.Adjust(r.Context(), delta); err != nil {
		writeMutationError(w, r, err)
		return
	}
	s.writeSavingsReport(w, http.StatusOK)
}

func (s *Server) writeSavingsReport(w http.ResponseWriter, status int) {
	state := s.savings.State()
	rep := report.BuildSavingsReport(state, core.Today())

	amounts := make([]core.Money, len(s.milestones.amounts))
	for i, cents := range s.milestones.amounts {
		amounts[i] = core.Money{Cents: cents}
	}

	type milestoneView struct {
		Label   string     `json:"label"`
		Amount  amountView `json:"amount"`
		Reached bool       `json:"reached"`
		ToGo    amountView `json:"toGo"`
	}
	milestones := make([]milestoneView, 0, len(amounts))
	for _, m := range report.Milestones(state.Current, s.milestones.labels, amounts) {
		milestones = append(milestones, milestoneView{
			Label:   m.Label,
			Amount:  viewAmount(m.Amount),
			Reached: m.Reached,
			ToGo:    viewAmount(m.ToGo),
		})
	}

	writeJSON(w, status, struct {
		Current         amountView        `json:"current"`
		Goal            amountView        `json:"goal"`
		Remaining       amountView        `json:"remaining"`
		Progress        float64           `json:"progress"`
		Status          report.GoalStatus `json:"status"`
		TargetDate      string            `json:"targetDate"`
		MonthsRemaining int               `json:"monthsRemaining"`
		MonthlyTarget   amountView        `json:"monthlyTarget"`
		Milestones      []milestoneView   `json:"milestones"`
	}{
		Current:         viewAmount(rep.Current),
		Goal:            viewAmount(rep.Goal),
		Remaining:       viewAmount(rep.Remaining),
		Progress:        rep.Progress,
		Status:          rep.Status,
		TargetDate:      state.TargetDate.String(),
		MonthsRemaining: rep.MonthsRemaining,
		MonthlyTarget:   viewAmount(rep.MonthlyTarget),
		Milestones:      milestones,
	})
}
