package report

import "testing"

func TestClassify(t *testing.T) {
	levels := []Level{
		{Tag: "good", Min: 1000},
		{Tag: "excellent", Min: 2000},
		{Tag: "positive", Min: 0},
	}
	cases := []struct {
		value float64
		want  string
	}{
		{2500, "excellent"},
		{2000, "excellent"}, // meets the bound exactly
		{1999.99, "good"},
		{1000, "good"},
		{500, "positive"},
		{0, "positive"},
		{-1, "negative"},
	}
	for _, tc := range cases {
		if got := Classify(tc.value, levels, "negative"); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.value, tc.want, got)
		}
	}
}

func TestClassifyOverlappingLevels(t *testing.T) {
	// a value qualifying for several tags gets the most severe one,
	// regardless of the order the levels are declared in
	levels := []Level{
		{Tag: "low", Min: 10},
		{Tag: "high", Min: 100},
		{Tag: "medium", Min: 50},
	}
	if got := Classify(120, levels, "none"); got != "high" {
		t.Fatalf("expected high, got %q", got)
	}
	if got := Classify(75, levels, "none"); got != "medium" {
		t.Fatalf("expected medium, got %q", got)
	}
}
