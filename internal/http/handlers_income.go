package http

import (
	"net/http"

	"hearth/internal/books"
	"hearth/internal/core"
	"hearth/internal/report"
)

type incomeRequest struct {
	Source string `json:"source"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
	Date   string `json:"date,omitempty"`
}

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	incomes := s.incomes.List()

	byType := report.GroupTotals(incomes,
		func(in core.Income) core.IncomeType { return in.Type },
		report.IncomeAmount)

	writeJSON(w, http.StatusOK, struct {
		Incomes  []core.Income `json:"incomes"`
		Total    amountView    `json:"total"`
		Business amountView    `json:"business"`
		Personal amountView    `json:"personal"`
	}{
		Incomes:  incomes,
		Total:    viewAmount(report.Total(incomes, report.IncomeAmount)),
		Business: viewAmount(byType[core.IncomeBusiness]),
		Personal: viewAmount(byType[core.IncomePersonal]),
	})
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseAmountField(w, req.Amount)
	if !ok {
		return
	}
	date, ok := parseOptionalDate(w, req.Date)
	if !ok {
		return
	}

	rec, err := s.incomes.Add(r.Context(), books.IncomeInput{
		Source: sanitizeInput(req.Source),
		Amount: amount,
		Type:   core.IncomeType(req.Type),
		Date:   date,
	})
	if err != nil {
		writeMutationError(w, r, err)
		return
	}
	s.invalidateSeries()
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := s.incomes.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeMutationError(w, r, err)
		return
	}
	s.invalidateSeries()
	w.WriteHeader(http.StatusNoContent)
}
