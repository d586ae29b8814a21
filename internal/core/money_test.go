package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"2800", 280000, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseSignedAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"500", 50000, true},
		{"-500", -50000, true},
		{"-0.01", -1, true},
		{"0", 0, true},
		{"nope", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseSignedAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -5}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{1599, "$15.99"},
		{280000, "$2,800.00"},
		{123456789, "$1,234,567.89"},
		{-1599, "-$15.99"},
		{100000, "$1,000.00"},
		{99999, "$999.99"},
	}
	for _, tc := range cases {
		if got := FormatUSD(Money{Cents: tc.cents}); got != tc.want {
			t.Fatalf("%d cents: expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 150}
	b := Money{Cents: 75}
	if got := a.Add(b); got.Cents != 225 {
		t.Fatalf("add: expected 225, got %d", got.Cents)
	}
	if got := b.Sub(a); got.Cents != -75 {
		t.Fatalf("sub: expected -75, got %d", got.Cents)
	}
	if !(Money{}).IsZero() {
		t.Fatalf("zero money should report IsZero")
	}
}
