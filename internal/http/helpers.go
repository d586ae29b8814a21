package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hearth/internal/books"
	"hearth/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody decodes a JSON request body into dst. A decode failure,
// including an unknown enum value, surfaces as a validation error rather
// than a raw 400.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeMutationError maps book errors onto HTTP statuses. Validation
// failures are the client's problem; anything else means the snapshot
// was kept in memory but could not be persisted.
func writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, books.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrUnknownCategory),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrEmptySource),
		errors.Is(err, core.ErrEmptyDescription):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Mutation failed", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "could not persist change; data kept in memory")
	}
}

// parseYearMonth extracts year and month from query parameters, defaulting
// to the current month.
func parseYearMonth(r *http.Request) (year, month int) {
	now := time.Now()
	year = now.Year()
	month = int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	return year, month
}

// parseAmountField parses a user-entered amount string, reporting a 422
// on failure.
func parseAmountField(w http.ResponseWriter, raw string) (core.Money, bool) {
	m, err := core.ParseAmount(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return core.Money{}, false
	}
	return m, true
}

// parseOptionalDate parses a YYYY-MM-DD field, treating absence as the
// zero date (books default it to today).
func parseOptionalDate(w http.ResponseWriter, raw string) (core.Date, bool) {
	if strings.TrimSpace(raw) == "" {
		return core.Date{}, true
	}
	d, err := core.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date, want YYYY-MM-DD")
		return core.Date{}, false
	}
	return d, true
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// amountView renders money for JSON responses: exact cents plus the
// formatted display string.
type amountView struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

func viewAmount(m core.Money) amountView {
	return amountView{Cents: m.Cents, Display: core.FormatUSD(m)}
}
