package timesheet

import (
	"testing"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_GroupsByEmployeeAndDay(t *testing.T) {
	t.Parallel()

	events := []punch.Event{
		{EmployeeID: "emp-2", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
		{EmployeeID: "emp-1", Timestamp: time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), Type: punch.TypeCheckIn},
		{EmployeeID: "emp-1", Timestamp: time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC), Type: punch.TypeCheckOut},
		{EmployeeID: "emp-1", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
	}

	groups := Normalize(events)

	require.Len(t, groups, 3)

	// Keys sort ascending: employee id first, then date.
	assert.Equal(t, "emp-1", groups[0].EmployeeID)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), groups[0].Date)
	assert.Equal(t, "emp-1", groups[1].EmployeeID)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), groups[1].Date)
	assert.Equal(t, "emp-2", groups[2].EmployeeID)

	// Events within a group sort ascending by timestamp.
	require.Len(t, groups[0].Events, 2)
	assert.Equal(t, punch.TypeCheckIn, groups[0].Events[0].Type)
	assert.Equal(t, punch.TypeCheckOut, groups[0].Events[1].Type)
}

func TestNormalize_DropsIncompleteEvents(t *testing.T) {
	t.Parallel()

	events := []punch.Event{
		{EmployeeID: "", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
		{EmployeeID: "emp-1", Type: punch.TypeCheckIn},
		{EmployeeID: "emp-1", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
	}

	groups := Normalize(events)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Events, 1)
}

func TestNormalize_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	events := []punch.Event{
		{EmployeeID: "emp-1", Timestamp: ts, Type: punch.TypeBreakStart},
		{EmployeeID: "emp-1", Timestamp: ts, Type: punch.TypeBreakEnd},
	}

	groups := Normalize(events)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Events, 2)
	assert.Equal(t, punch.TypeBreakStart, groups[0].Events[0].Type)
	assert.Equal(t, punch.TypeBreakEnd, groups[0].Events[1].Type)
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	events := []punch.Event{
		{EmployeeID: "emp-3", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
		{EmployeeID: "emp-1", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
		{EmployeeID: "emp-2", Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
		{EmployeeID: "emp-2", Timestamp: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), Type: punch.TypeCheckIn},
	}

	first := Normalize(events)
	second := Normalize(events)

	assert.Equal(t, first, second)
}
