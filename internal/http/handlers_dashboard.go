package http

import (
	"net/http"
	"time"

	"hearth/internal/core"
	"hearth/internal/report"
)

const seriesCacheKey = "series"

// handleOverview returns the dashboard's derived monthly picture.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	o := report.BuildOverview(s.incomes.List(), s.expenses.List(), s.overviewCfg)

	writeJSON(w, http.StatusOK, struct {
		Month            string     `json:"month"`
		TotalIncome      amountView `json:"totalIncome"`
		TotalExpenses    amountView `json:"totalExpenses"`
		BusinessIncome   amountView `json:"businessIncome"`
		PersonalIncome   amountView `json:"personalIncome"`
		FixedExpenses    amountView `json:"fixedExpenses"`
		VariableExpenses amountView `json:"variableExpenses"`
		NetCashflow      amountView `json:"netCashflow"`
		SavingsRate      float64    `json:"savingsRate"`
		BusinessMargin   float64    `json:"businessMargin"`
		CashflowLevel    string     `json:"cashflowLevel"`
		MarginLevel      string     `json:"marginLevel"`
		Insights         []string   `json:"insights"`
	}{
		Month:            time.Now().Format("January 2006"),
		TotalIncome:      viewAmount(o.TotalIncome),
		TotalExpenses:    viewAmount(o.TotalExpenses),
		BusinessIncome:   viewAmount(o.BusinessIncome),
		PersonalIncome:   viewAmount(o.PersonalIncome),
		FixedExpenses:    viewAmount(o.FixedExpenses),
		VariableExpenses: viewAmount(o.VariableExpenses),
		NetCashflow:      viewAmount(o.NetCashflow),
		SavingsRate:      o.SavingsRate,
		BusinessMargin:   o.BusinessMargin,
		CashflowLevel:    o.CashflowLevel,
		MarginLevel:      o.MarginLevel,
		Insights:         report.Insights(o),
	})
}

// handleSeries returns the monthly chart series, cached briefly since it
// walks both collections.
func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	series, ok := s.seriesCache.Get(seriesCacheKey)
	if !ok {
		series = report.MonthlySeries(s.incomes.List(), s.expenses.List(), s.seriesMonths, core.Today())
		s.seriesCache.Set(seriesCacheKey, series)
	}

	type pointView struct {
		Year     int        `json:"year"`
		Month    int        `json:"month"`
		Label    string     `json:"label"`
		HasData  bool       `json:"hasData"`
		Income   amountView `json:"income"`
		Business amountView `json:"business"`
		Personal amountView `json:"personal"`
		Expenses amountView `json:"expenses"`
	}
	points := make([]pointView, 0, len(series))
	for _, m := range series {
		points = append(points, pointView{
			Year:     m.Year,
			Month:    m.Month,
			Label:    m.Label,
			HasData:  m.HasData,
			Income:   viewAmount(m.Income),
			Business: viewAmount(m.Business),
			Personal: viewAmount(m.Personal),
			Expenses: viewAmount(m.Expenses),
		})
	}
	writeJSON(w, http.StatusOK, points)
}

// handleCategoryBreakdown returns expense totals grouped by category,
// ranked descending, for the pie chart.
func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	expenses := s.expenses.List()
	totals := report.GroupTotals(expenses,
		func(e core.Expense) core.ExpenseCategory { return e.Category },
		report.ExpenseAmount)
	ranked := report.Ranked(totals)
	whole := report.Total(expenses, report.ExpenseAmount)

	type catView struct {
		Category core.ExpenseCategory `json:"category"`
		Amount   amountView           `json:"amount"`
		Share    float64              `json:"share"` // percent of all expenses
	}
	cats := make([]catView, 0, len(ranked))
	for _, entry := range ranked {
		share := 0.0
		if whole.Cents > 0 {
			share = float64(entry.Amount.Cents) / float64(whole.Cents) * 100
		}
		cats = append(cats, catView{
			Category: entry.Key,
			Amount:   viewAmount(entry.Amount),
			Share:    share,
		})
	}
	writeJSON(w, http.StatusOK, cats)
}
