// Package http exposes the domain collections and the aggregation engine
// as a JSON API. Rendering stays on the client; this layer only shapes
// derived values for it.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hearth/internal/books"
	"hearth/internal/cache"
	"hearth/internal/report"
)

type Server struct {
	http.Server

	incomes  *books.IncomeBook
	expenses *books.ExpenseBook
	spends   *books.SpendBook
	bills    *books.BillBook
	savings  *books.SavingsTracker

	overviewCfg  report.OverviewConfig
	seriesMonths int
	milestones   milestoneConfig

	seriesCache *cache.LRU[[]report.MonthSummary]
	rateLimiter *rateLimiter

	shutdownOnce sync.Once
}

type milestoneConfig struct {
	labels  []string
	amounts []int64
}

// Deps bundles the collection managers the server serves.
type Deps struct {
	Incomes  *books.IncomeBook
	Expenses *books.ExpenseBook
	Spends   *books.SpendBook
	Bills    *books.BillBook
	Savings  *books.SavingsTracker
}

// Config tunes the derived views.
type Config struct {
	Overview         report.OverviewConfig
	SeriesMonths     int
	MilestoneLabels  []string
	MilestoneCents   []int64
	SummaryCacheTTL  time.Duration
	SummaryCacheSize int
}

// NewServer configures routes and returns a ready-to-run server.
func NewServer(addr string, deps Deps, cfg Config) *Server {
	if cfg.SeriesMonths < 1 {
		cfg.SeriesMonths = 6
	}
	if cfg.SummaryCacheSize < 1 {
		cfg.SummaryCacheSize = 64
	}
	if cfg.SummaryCacheTTL <= 0 {
		cfg.SummaryCacheTTL = 30 * time.Second
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		incomes:      deps.Incomes,
		expenses:     deps.Expenses,
		spends:       deps.Spends,
		bills:        deps.Bills,
		savings:      deps.Savings,
		overviewCfg:  cfg.Overview,
		seriesMonths: cfg.SeriesMonths,
		milestones:   milestoneConfig{labels: cfg.MilestoneLabels, amounts: cfg.MilestoneCents},
		seriesCache:  cache.NewLRU[[]report.MonthSummary](cfg.SummaryCacheSize, cfg.SummaryCacheTTL),
		rateLimiter:  newRateLimiter(),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleHealth)

	mux.HandleFunc("GET /api/incomes", s.wrap(s.handleListIncomes))
	mux.HandleFunc("POST /api/incomes", s.wrap(s.handleCreateIncome))
	mux.HandleFunc("DELETE /api/incomes/{id}", s.wrap(s.handleDeleteIncome))

	mux.HandleFunc("GET /api/expenses", s.wrap(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.wrap(s.handleCreateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.wrap(s.handleDeleteExpense))
	mux.HandleFunc("PATCH /api/expenses/{id}/paid", s.wrap(s.handleSetExpensePaid))

	mux.HandleFunc("GET /api/spends", s.wrap(s.handleListSpends))
	mux.HandleFunc("POST /api/spends", s.wrap(s.handleCreateSpend))
	mux.HandleFunc("DELETE /api/spends/{id}", s.wrap(s.handleDeleteSpend))
	mux.HandleFunc("GET /api/spends/day", s.wrap(s.handleDaySpends))
	mux.HandleFunc("GET /api/spends/analysis", s.wrap(s.handleSpendAnalysis))
	mux.HandleFunc("GET /api/spends/calendar", s.wrap(s.handleCalendar))

	mux.HandleFunc("GET /api/bills", s.wrap(s.handleListBills))
	mux.HandleFunc("POST /api/bills", s.wrap(s.handleCreateBill))
	mux.HandleFunc("DELETE /api/bills/{id}", s.wrap(s.handleDeleteBill))
	mux.HandleFunc("PATCH /api/bills/{id}/paid", s.wrap(s.handleSetBillPaid))

	mux.HandleFunc("GET /api/savings", s.wrap(s.handleSavings))
	mux.HandleFunc("POST /api/savings/adjust", s.wrap(s.handleAdjustSavings))

	mux.HandleFunc("GET /api/overview", s.wrap(s.handleOverview))
	mux.HandleFunc("GET /api/series", s.wrap(s.handleSeries))
	mux.HandleFunc("GET /api/categories", s.wrap(s.handleCategoryBreakdown))

	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// invalidateSeries drops cached chart series after any income or expense
// mutation so the next read recomputes.
func (s *Server) invalidateSeries() {
	s.seriesCache.Delete(seriesCacheKey)
}

// Shutdown stops the server and its background cleanup.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}
