package payrollrun

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain amount", "1234.56", "1234.56"},
		{"whitespace trimmed", "  10 ", "10"},
		{"negative adjustment", "-5.00", "-5"},
		{"empty normalizes to zero", "", "0"},
		{"blank normalizes to zero", "   ", "0"},
		{"garbage normalizes to zero", "N/A", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseAmount(tc.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestParseHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain hours", "72.5", 72.5},
		{"whitespace trimmed", " 40 ", 40},
		{"empty normalizes to zero", "", 0},
		{"garbage normalizes to zero", "eight", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, ParseHours(tc.input), 1e-9)
		})
	}
}

func TestPayrollRun_Overlaps(t *testing.T) {
	t.Parallel()

	run := PayrollRun{
		PeriodStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"fully inside", time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"fully containing", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), true},
		{"touching at period end", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), true},
		{"touching at period start", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), true},
		{"entirely before", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), false},
		{"entirely after", time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, run.Overlaps(tc.start, tc.end))
		})
	}
}
