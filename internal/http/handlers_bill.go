package http

import (
	"net/http"

	"hearth/internal/books"
	"hearth/internal/core"
	"hearth/internal/report"
)

type billRequest struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	DueDate  string `json:"dueDate"`
	Category string `json:"category"`
}

// handleListBills returns the due-date collection in display order with
// per-bill status tags.
func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	today := core.Today()
	sorted := report.SortBills(s.bills.List())

	type billView struct {
		core.Bill
		DaysUntil int              `json:"daysUntil"`
		Status    report.DueStatus `json:"status"`
	}
	views := make([]billView, 0, len(sorted))
	for _, b := range sorted {
		views = append(views, billView{
			Bill:      b,
			DaysUntil: report.DaysUntil(b.DueDate, today),
			Status:    report.ClassifyDue(b, today),
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Bills         []billView `json:"bills"`
		UpcomingTotal amountView `json:"upcomingTotal"`
	}{
		Bills:         views,
		UpcomingTotal: viewAmount(report.UpcomingTotal(sorted, today)),
	})
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseAmountField(w, req.Amount)
	if !ok {
		return
	}
	due, err := core.ParseDate(req.DueDate)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid due date, want YYYY-MM-DD")
		return
	}

	rec, err := s.bills.Add(r.Context(), books.BillInput{
		Name:     sanitizeInput(req.Name),
		Amount:   amount,
		DueDate:  due,
		Category: core.BillCategory(req.Category),
	})
	if err != nil {
		writeMutationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := s.bills.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetBillPaid(w http.ResponseWriter, r *http.Request) {
	var req paidRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.bills.SetPaid(r.Context(), r.PathValue("id"), req.Paid); err != nil {
		writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
