package http

import (
	"net/http"

	"hearth/internal/books"
	"hearth/internal/core"
	"hearth/internal/report"
)

type expenseRequest struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	IsRecurring bool   `json:"isRecurring"`
	Purpose     string `json:"purpose,omitempty"`
}

type paidRequest struct {
	Paid bool `json:"paid"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := s.expenses.List()

	var paid core.Money
	for _, e := range expenses {
		if e.IsPaid {
			paid = paid.Add(e.Amount)
		}
	}

	writeJSON(w, http.StatusOK, struct {
		Expenses []core.Expense `json:"expenses"`
		Total    amountView     `json:"total"`
		Paid     amountView     `json:"paid"`
	}{
		Expenses: expenses,
		Total:    viewAmount(report.Total(expenses, report.ExpenseAmount)),
		Paid:     viewAmount(paid),
	})
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseAmountField(w, req.Amount)
	if !ok {
		return
	}

	rec, err := s.expenses.Add(r.Context(), books.ExpenseInput{
		Name:        sanitizeInput(req.Name),
		Amount:      amount,
		Category:    core.ExpenseCategory(req.Category),
		IsRecurring: req.IsRecurring,
		Purpose:     sanitizeInput(req.Purpose),
	})
	if err != nil {
		writeMutationError(w, r, err)
		return
	}
	s.invalidateSeries()
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeMutationError(w, r, err)
		return
	}
	s.invalidateSeries()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetExpensePaid(w http.ResponseWriter, r *http.Request) {
	var req paidRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.expenses.SetPaid(r.Context(), r.PathValue("id"), req.Paid); err != nil {
		writeMutationError(w, r, err)
		return
	}
	s.invalidateSeries()
	w.WriteHeader(http.StatusNoContent)
}
