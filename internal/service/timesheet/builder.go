package timesheet

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
)

// pairingState tracks the builder through one employee-day. At most one
// check-in and one break are open at any time.
type pairingState int

const (
	stateIdle pairingState = iota
	stateAwaitingCheckout
	stateOnBreak
)

type recordBuilder struct {
	policy timesheet.Policy

	state        pairingState
	pendingIn    time.Time
	pendingBreak time.Time

	worked          time.Duration
	breaks          []timesheet.BreakInterval
	unmatchedBreaks int
	matchedShifts   int
	discardedPairs  int

	firstIn *time.Time
	lastOut *time.Time
}

// BuildDailyRecord pairs one sorted event group into a daily attendance
// record. It returns the number of check-in/check-out pairs discarded as
// malformed, and false when the group held no usable pair and no break, in
// which case no record exists for that day.
func BuildDailyRecord(g Group, policy timesheet.Policy) (timesheet.DailyRecord, int, bool) {
	b := recordBuilder{policy: policy}
	for _, ev := range g.Events {
		b.apply(ev)
	}
	return b.finish(g)
}

func (b *recordBuilder) apply(ev punch.Event) {
	switch ev.Type {
	case punch.TypeCheckIn:
		b.openShift(ev.Timestamp)
	case punch.TypeCheckOut:
		b.closeShift(ev.Timestamp)
	case punch.TypeBreakStart:
		b.openBreak(ev.Timestamp)
	case punch.TypeBreakEnd:
		b.closeBreak(ev.Timestamp)
	}
}

// openShift tracks only the most recent open check-in; an earlier check-in
// with no matching check-out never contributes hours.
func (b *recordBuilder) openShift(ts time.Time) {
	if b.state == stateOnBreak {
		b.unmatchedBreaks++
	}
	b.pendingIn = ts
	b.state = stateAwaitingCheckout
	if b.firstIn == nil {
		t := ts
		b.firstIn = &t
	}
}

func (b *recordBuilder) closeShift(ts time.Time) {
	t := ts
	b.lastOut = &t

	if b.state == stateOnBreak {
		// Check-out while a break is still open: the break marker can no
		// longer pair.
		b.unmatchedBreaks++
		b.state = stateAwaitingCheckout
	}
	if b.state != stateAwaitingCheckout {
		// Check-out with no open check-in pairs with nothing.
		return
	}

	delta := ts.Sub(b.pendingIn)
	if delta <= 0 {
		// Clock time earlier than check-in: the check-out belongs to the
		// next calendar day (overnight shift).
		delta += 24 * time.Hour
	}
	if delta < 0 || delta > 24*time.Hour {
		// Corrupt pair. Drop it without contributing hours.
		b.discardedPairs++
	} else {
		b.worked += delta
		b.matchedShifts++
	}
	b.pendingIn = time.Time{}
	b.state = stateIdle
}

func (b *recordBuilder) openBreak(ts time.Time) {
	if b.state == stateOnBreak {
		b.unmatchedBreaks++
	}
	b.pendingBreak = ts
	b.state = stateOnBreak
}

func (b *recordBuilder) closeBreak(ts time.Time) {
	if b.state != stateOnBreak {
		b.unmatchedBreaks++
		return
	}
	if ts.After(b.pendingBreak) {
		b.breaks = append(b.breaks, timesheet.BreakInterval{Start: b.pendingBreak, End: ts})
	} else {
		// Break timing too coarse to pair (legacy data); falls back to the
		// default deduction.
		b.unmatchedBreaks++
	}
	b.pendingBreak = time.Time{}
	if b.pendingIn.IsZero() {
		b.state = stateIdle
	} else {
		b.state = stateAwaitingCheckout
	}
}

func (b *recordBuilder) finish(g Group) (timesheet.DailyRecord, int, bool) {
	if b.state == stateOnBreak {
		b.unmatchedBreaks++
	}
	// A dangling check-in is incomplete data, not malformed: it contributes
	// nothing and raises no signal.

	if b.matchedShifts == 0 && len(b.breaks) == 0 {
		return timesheet.DailyRecord{}, b.discardedPairs, false
	}

	total := b.worked
	for _, br := range b.breaks {
		total -= br.Duration()
	}
	total -= time.Duration(b.unmatchedBreaks) * b.policy.DefaultBreakDeduction
	if total < 0 {
		total = 0
	}

	rec := timesheet.DailyRecord{
		EmployeeID:  g.EmployeeID,
		Date:        g.Date,
		CheckIn:     b.firstIn,
		CheckOut:    b.lastOut,
		Breaks:      b.breaks,
		HoursWorked: total.Hours(),
	}
	if b.firstIn != nil && b.firstIn.Hour() >= b.policy.LateArrivalHour {
		rec.LateArrival = true
	}
	if b.lastOut != nil && b.lastOut.Hour() < b.policy.EarlyDepartureHour {
		rec.EarlyDeparture = true
	}
	return rec, b.discardedPairs, true
}
