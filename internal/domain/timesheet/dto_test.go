package timesheet

import (
	"testing"

	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceReportRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        AttendanceReportRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  AttendanceReportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"},
		},
		{
			name:       "missing dates",
			req:        AttendanceReportRequest{},
			wantFields: []string{"start_date", "end_date"},
		},
		{
			name:       "bad format",
			req:        AttendanceReportRequest{StartDate: "01/01/2024", EndDate: "2024-01-31"},
			wantFields: []string{"start_date"},
		},
		{
			name:       "end before start",
			req:        AttendanceReportRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"},
			wantFields: []string{"end_date"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := verrs.ToMap()
			for _, f := range tc.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestTimeSummaryRequest_Validate_GroupBy(t *testing.T) {
	t.Parallel()

	for _, groupBy := range GroupByValues {
		req := TimeSummaryRequest{StartDate: "2024-01-01", EndDate: "2024-01-31", GroupBy: groupBy}
		assert.NoError(t, req.Validate(), "group_by %q should validate", groupBy)
	}

	req := TimeSummaryRequest{StartDate: "2024-01-01", EndDate: "2024-01-31", GroupBy: "manager"}
	err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "group_by")
}
