package timesheet

import (
	"math"
	"time"
)

// standardShiftHours is the canonical shift length the Unit is measured
// against.
const standardShiftHours = 8.0

// deriveUnit computes the day's variance in hours from a standard shift by
// comparing the actual sign-on/off window against the rostered one.
// An Off/ADO/sick day, or any unparseable time field, yields 0. The result
// is rounded to 2 decimals here and reused as-is everywhere downstream.
func deriveUnit(date time.Time, in DayInput, status Status) float64 {
	if status != StatusWorked || in.Sick {
		return 0
	}

	rosterOn, ok := ParseTime(in.RosteredOn)
	if !ok {
		return 0
	}
	rosterOff, ok := ParseTime(in.RosteredOff)
	if !ok {
		return 0
	}
	actualOn, ok := ParseTime(in.ActualOn)
	if !ok {
		return 0
	}
	actualOff, ok := ParseTime(in.ActualOff)
	if !ok {
		return 0
	}

	rosterStart, rosterEnd := shiftWindow(date, rosterOn, rosterOff)
	actualStart, actualEnd := shiftWindow(date, actualOn, actualOff)

	var delta float64
	builtUp := false
	switch {
	case actualStart.Before(rosterStart):
		// Lift-up: started early, variance is whatever was shaved off
		// (or added to) the rostered end.
		delta = rosterEnd.Sub(actualEnd).Hours()
	case actualEnd.After(rosterEnd):
		// Lay-back: finished late, variance is the start offset.
		delta = math.Abs(actualStart.Sub(rosterStart).Hours())
	case actualEnd.Sub(actualStart) < rosterEnd.Sub(rosterStart):
		// Built-up: the previous cases rule out starting early or
		// finishing late, so a shorter actual interval is a strict
		// sub-interval of the roster.
		builtUp = true
		delta = rosterEnd.Sub(rosterStart).Hours() - standardShiftHours
	}

	// Built-up always measures against a full standard shift no matter
	// what was typed into the worked field; so does a blank/zero worked.
	workedUse := ParseDuration(in.Worked)
	if builtUp || workedUse == 0 {
		workedUse = standardShiftHours
	}

	unit := delta + (workedUse - standardShiftHours) + ParseDuration(in.Extra)
	return round2(unit)
}

// shiftWindow anchors a sign-on/sign-off pair to the calendar date, pushing
// the sign-off into the next day when it precedes the sign-on (overnight
// shifts).
func shiftWindow(date time.Time, on, off TimeOfDay) (time.Time, time.Time) {
	start := on.At(date)
	end := off.At(date)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
