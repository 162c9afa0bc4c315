package domain

import (
	"testing"
	"time"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Graph Theory", want: "graph theory"},
		{name: "compress multiple spaces", input: "dynamic   programming", want: "dynamic programming"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "unicode", input: "Naïve Bayes", want: "naïve bayes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{-20, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{150, 100},
	}
	for _, tt := range tests {
		if got := ClampProgress(tt.in); got != tt.want {
			t.Errorf("ClampProgress(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	got, ok := ParseDay("2024-02-29")
	if !ok {
		t.Fatal("expected leap day to parse")
	}
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDay = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "2024-2-29", "29/02/2024", "2023-02-29", "yesterday"} {
		if _, ok := ParseDay(bad); ok {
			t.Errorf("ParseDay(%q) should fail", bad)
		}
	}
}

func TestFormatDay_UsesLocation(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on Jan 1 is already Jan 2 in Tokyo.
	instant := time.Date(2025, time.January, 1, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	if got := FormatDay(instant, time.UTC); got != "2025-01-01" {
		t.Errorf("UTC day = %q", got)
	}
	if got := FormatDay(instant, tokyo); got != "2025-01-02" {
		t.Errorf("Tokyo day = %q", got)
	}
}
