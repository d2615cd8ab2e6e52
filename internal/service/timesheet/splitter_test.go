package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		hours        float64
		threshold    float64
		wantRegular  float64
		wantOvertime float64
	}{
		{"above threshold", 10.5, 8.0, 8.0, 2.5},
		{"below threshold", 6.0, 8.0, 6.0, 0},
		{"exactly threshold", 8.0, 8.0, 8.0, 0},
		{"zero hours", 0, 8.0, 0, 0},
		{"zero threshold falls back to default", 10.0, 0, 8.0, 2.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			split := SplitHours(tc.hours, tc.threshold)
			assert.InDelta(t, tc.wantRegular, split.RegularHours, 1e-9)
			assert.InDelta(t, tc.wantOvertime, split.OvertimeHours, 1e-9)
		})
	}
}
