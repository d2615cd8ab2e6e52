package timesheet

import (
	"sort"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/punch"
)

// Group holds one employee's clock events for one calendar day, sorted
// ascending by timestamp.
type Group struct {
	EmployeeID string
	Date       time.Time
	Events     []punch.Event
}

// Normalize groups raw events by (employee, local calendar date) and sorts
// each group ascending by timestamp. The sort is stable so ties keep input
// order and repeated runs give bit-identical output. Events missing an
// employee id or timestamp are incomplete source data and are dropped, not
// errors. The date is the local date the timestamp already encodes; no
// timezone conversion is applied.
func Normalize(events []punch.Event) []Group {
	grouped := make(map[string]*Group)
	keys := make([]string, 0)

	for _, ev := range events {
		if !ev.Usable() {
			continue
		}
		day := ev.Timestamp.Format("2006-01-02")
		key := ev.EmployeeID + "|" + day

		g, ok := grouped[key]
		if !ok {
			y, m, d := ev.Timestamp.Date()
			g = &Group{
				EmployeeID: ev.EmployeeID,
				Date:       time.Date(y, m, d, 0, 0, 0, 0, ev.Timestamp.Location()),
			}
			grouped[key] = g
			keys = append(keys, key)
		}
		g.Events = append(g.Events, ev)
	}

	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		g := grouped[key]
		sort.SliceStable(g.Events, func(i, j int) bool {
			return g.Events[i].Timestamp.Before(g.Events[j].Timestamp)
		})
		groups = append(groups, *g)
	}

	return groups
}
