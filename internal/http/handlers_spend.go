package http

import (
	"net/http"
	"time"

	"hearth/internal/books"
	"hearth/internal/core"
	"hearth/internal/report"
)

type spendRequest struct {
	Date        string `json:"date,omitempty"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func (s *Server) handleListSpends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Spends []core.DailySpend `json:"spends"`
		Total  amountView        `json:"total"`
	}{
		Spends: s.spends.List(),
		Total:  viewAmount(report.Total(s.spends.List(), report.SpendAmount)),
	})
}

func (s *Server) handleCreateSpend(w http.ResponseWriter, r *http.Request) {
	var req spendRequest
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

	rec, err := s.spends.Add(r.Context(), books.SpendInput{
		Date:        date,
		Category:    core.SpendCategory(req.Category),
		Amount:      amount,
		Description: sanitizeInput(req.Description),
	})
	if err != nil {
		writeMutationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteSpend(w http.ResponseWriter, r *http.Request) {
	if err := s.spends.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDaySpends returns one day's spends with its total, day class and
// per-category limit status.
func (s *Server) handleDaySpends(w http.ResponseWriter, r *http.Request) {
	date := core.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := core.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid date, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	all := s.spends.List()
	daySpends := report.DaySpends(all, date)
	total := report.Total(daySpends, report.SpendAmount)

	type limitView struct {
		Category  core.SpendCategory `json:"category"`
		Spent     amountView         `json:"spent"`
		Limit     amountView         `json:"limit"`
		OverLimit bool               `json:"overLimit"`
	}
	limits := make([]limitView, 0, len(core.SpendCategories))
	for _, cat := range core.SpendCategories {
		var spent core.Money
		for _, sp := range daySpends {
			if sp.Category == cat {
				spent = spent.Add(sp.Amount)
			}
		}
		limits = append(limits, limitView{
			Category:  cat,
			Spent:     viewAmount(spent),
			Limit:     viewAmount(cat.DailyLimit()),
			OverLimit: report.OverDailyLimit(all, date, cat),
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Date   string             `json:"date"`
		Spends []core.DailySpend  `json:"spends"`
		Total  amountView         `json:"total"`
		Class  report.DayClass    `json:"class"`
		Emoji  string             `json:"emoji"`
		Limits []limitView        `json:"limits"`
	}{
		Date:   date.String(),
		Spends: daySpends,
		Total:  viewAmount(total),
		Class:  report.ClassifyDay(total, len(daySpends)),
		Emoji:  report.ClassifyDay(total, len(daySpends)).Emoji(),
		Limits: limits,
	})
}

// handleSpendAnalysis returns the month-to-date spending summary with
// ranked categories and advisory tips.
func (s *Server) handleSpendAnalysis(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	now := time.Now()
	dayOfMonth := now.Day()
	if year != now.Year() || month != int(now.Month()) {
		// a past month is averaged over its full length
		dayOfMonth = daysInMonth(year, month)
	}

	analysis := report.AnalyzeMonth(s.spends.List(), year, month, dayOfMonth)

	type rankedView struct {
		Category core.SpendCategory `json:"category"`
		Amount   amountView         `json:"amount"`
		OverLimit bool              `json:"overDailyLimit"`
	}
	ranked := make([]rankedView, 0, len(analysis.Ranked))
	for _, entry := range analysis.Ranked {
		ranked = append(ranked, rankedView{
			Category:  entry.Key,
			Amount:    viewAmount(entry.Amount),
			OverLimit: entry.Amount.Cents > entry.Key.DailyLimit().Cents,
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Year         int          `json:"year"`
		Month        int          `json:"month"`
		Total        amountView   `json:"total"`
		DailyAverage amountView   `json:"dailyAverage"`
		Categories   []rankedView `json:"categories"`
		Tips         []string     `json:"tips"`
	}{
		Year:         year,
		Month:        month,
		Total:        viewAmount(analysis.Total),
		DailyAverage: viewAmount(analysis.DailyAverage),
		Categories:   ranked,
		Tips:         report.SpendingTips(analysis),
	})
}

// handleCalendar returns the month grid with per-day totals and classes.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)
	all := s.spends.List()

	type cellView struct {
		Date  string          `json:"date,omitempty"`
		Empty bool            `json:"empty,omitempty"`
		Total amountView      `json:"total"`
		Class report.DayClass `json:"class,omitempty"`
		Emoji string          `json:"emoji,omitempty"`
	}

	grid := report.BuildCalendarGrid(year, month)
	cells := make([]cellView, 0, len(grid))
	for _, c := range grid {
		if c.Empty {
			cells = append(cells, cellView{Empty: true})
			continue
		}
		daySpends := report.DaySpends(all, c.Date)
		total := report.Total(daySpends, report.SpendAmount)
		class := report.ClassifyDay(total, len(daySpends))
		cells = append(cells, cellView{
			Date:  c.Date.String(),
			Total: viewAmount(total),
			Class: class,
			Emoji: class.Emoji(),
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Year  int        `json:"year"`
		Month int        `json:"month"`
		Cells []cellView `json:"cells"`
	}{Year: year, Month: month, Cells: cells})
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
