package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hearth/internal/books"
	"hearth/internal/config"
	apphttp "hearth/internal/http"
	"hearth/internal/log"
	"hearth/internal/report"
	"hearth/internal/store"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var st store.Store
	switch cfg.DataBackend {
	case "sqlite":
		sqlite, err := store.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open record store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer sqlite.Close()
		st = sqlite
		logger.Info("Initialized sqlite record store", "path", cfg.SQLiteDBPath)
	default:
		st = store.NewMemory()
		logger.Info("Initialized memory record store")
	}

	incomes, err := books.LoadIncomeBook(ctx, st)
	if err != nil {
		logger.Error("Failed to load incomes", "error", err)
		os.Exit(1)
	}
	expenses, err := books.LoadExpenseBook(ctx, st)
	if err != nil {
		logger.Error("Failed to load expenses", "error", err)
		os.Exit(1)
	}
	spends, err := books.LoadSpendBook(ctx, st)
	if err != nil {
		logger.Error("Failed to load daily spends", "error", err)
		os.Exit(1)
	}
	bills, err := books.LoadBillBook(ctx, st)
	if err != nil {
		logger.Error("Failed to load bills", "error", err)
		os.Exit(1)
	}
	savings, err := books.LoadSavingsTracker(ctx, st, cfg.DefaultSavings())
	if err != nil {
		logger.Error("Failed to load savings state", "error", err)
		os.Exit(1)
	}

	milestoneCents := make([]int64, len(cfg.MilestoneAmounts))
	for i, m := range cfg.MilestoneAmounts {
		milestoneCents[i] = m.Cents
	}

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Incomes:  incomes,
		Expenses: expenses,
		Spends:   spends,
		Bills:    bills,
		Savings:  savings,
	}, apphttp.Config{
		Overview: report.OverviewConfig{
			AssumedBusinessExpenses: cfg.BusinessExpenses,
			FixedExpenseShare:       cfg.FixedExpenseShare,
		},
		SeriesMonths:     cfg.SeriesMonths,
		MilestoneLabels:  cfg.MilestoneLabels,
		MilestoneCents:   milestoneCents,
		SummaryCacheTTL:  cfg.SummaryCacheTTL,
		SummaryCacheSize: cfg.SummaryCacheEntries,
	})

	srv.Handler = log.Middleware(logger.WithComponent(log.ComponentHTTP))(srv.Handler)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting hearth server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-runCtx.Done()
	logger.Info("Server stopped gracefully")
}
