package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"hearth/internal/core"
)

// Config is the process configuration, loaded from the environment. It
// also carries the overview and savings constants so tuning them never
// requires touching the aggregation code.
type Config struct {
	// HTTP server
	Port string

	// Record store backend: "memory" or "sqlite"
	DataBackend string

	// Database
	SQLiteDBPath string

	// Aggregation
	SeriesMonths        int        // span of the monthly chart series
	BusinessExpenses    core.Money // assumed fixed business expenses for the margin estimate
	FixedExpenseShare   float64    // estimated fixed fraction of total expenses
	SummaryCacheTTL     time.Duration
	SummaryCacheEntries int

	// Savings goal defaults, applied on first run only
	SavingsGoal       core.Money
	SavingsTargetDate core.Date
	MilestoneLabels   []string
	MilestoneAmounts  []core.Money
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend:  getEnv("DATA_BACKEND", "memory"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/hearth.db"),

		SeriesMonths:        getEnvInt("SERIES_MONTHS", 6),
		BusinessExpenses:    getEnvMoney("BUSINESS_EXPENSES", core.Money{Cents: 1500_00}),
		FixedExpenseShare:   getEnvFloat("FIXED_EXPENSE_SHARE", 0.85),
		SummaryCacheTTL:     getEnvDuration("SUMMARY_CACHE_TTL", 30*time.Second),
		SummaryCacheEntries: getEnvInt("SUMMARY_CACHE_ENTRIES", 64),

		SavingsGoal:       getEnvMoney("SAVINGS_GOAL", core.Money{Cents: 35000_00}),
		SavingsTargetDate: getEnvDate("SAVINGS_TARGET_DATE", core.NewDate(2026, 7, 1)),
	}

	cfg.MilestoneLabels, cfg.MilestoneAmounts = parseMilestones(
		getEnv("SAVINGS_MILESTONES", "Emergency Fund:25000,Safety Buffer:30000,Final Goal:35000"))

	return cfg
}

// Validate checks the configuration and returns a combined error when
// anything is off.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.SeriesMonths < 1 || c.SeriesMonths > 24 {
		errs = append(errs, fmt.Sprintf("invalid series months %d: must be between 1 and 24", c.SeriesMonths))
	}

	if c.FixedExpenseShare < 0 || c.FixedExpenseShare > 1 {
		errs = append(errs, fmt.Sprintf("invalid fixed expense share %v: must be between 0 and 1", c.FixedExpenseShare))
	}

	if c.SavingsGoal.Cents <= 0 {
		errs = append(errs, "savings goal must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// DefaultSavings is the savings state applied when the store has none.
func (c *Config) DefaultSavings() core.SavingsState {
	return core.SavingsState{
		Goal:       c.SavingsGoal,
		TargetDate: c.SavingsTargetDate,
	}
}

// parseMilestones splits "Label:amount,Label:amount" pairs. Malformed
// entries are skipped.
func parseMilestones(s string) ([]string, []core.Money) {
	var labels []string
	var amounts []core.Money
	for _, part := range strings.Split(s, ",") {
		label, amount, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		m, err := core.ParseAmount(amount)
		if err != nil {
			continue
		}
		labels = append(labels, strings.TrimSpace(label))
		amounts = append(amounts, m)
	}
	return labels, amounts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvMoney(key string, defaultValue core.Money) core.Money {
	if value := os.Getenv(key); value != "" {
		if m, err := core.ParseAmount(value); err == nil {
			return m
		}
	}
	return defaultValue
}

func getEnvDate(key string, defaultValue core.Date) core.Date {
	if value := os.Getenv(key); value != "" {
		if d, err := core.ParseDate(value); err == nil {
			return d
		}
	}
	return defaultValue
}
