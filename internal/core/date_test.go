package core

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 2 || d.Day() != 29 {
		t.Fatalf("expected 2024-02-29, got %s", d)
	}

	for _, bad := range []string{"", "29/02/2024", "2024-13-01", "2023-02-29", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 7, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-07-15"` {
		t.Fatalf("expected ISO date string, got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.SameDay(d) {
		t.Fatalf("round trip changed the day: %s != %s", back, d)
	}

	var rejected Date
	if err := json.Unmarshal([]byte(`"15/07/2024"`), &rejected); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestDateInMonth(t *testing.T) {
	d := NewDate(2024, 1, 31)
	if !d.InMonth(2024, 1) {
		t.Fatalf("expected %s in 2024-01", d)
	}
	if d.InMonth(2024, 2) || d.InMonth(2023, 1) {
		t.Fatalf("month membership must match both year and month")
	}
}
