package timesheet

import (
	"testing"
	"time"
)

var monday = time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)

func TestStatusPrecedence(t *testing.T) {
	in := DayInput{Sick: true, Off: true, ADO: true}
	if got := in.Status(); got != StatusADO {
		t.Fatalf("expected ADO to dominate, got %v", got)
	}

	in = DayInput{Sick: true}
	if got := in.Status(); got != StatusOff {
		t.Fatalf("expected sick day to resolve to off, got %v", got)
	}

	in = DayInput{RosteredOn: "ado"}
	if got := in.Status(); got != StatusADO {
		t.Fatalf("expected typed marker to resolve to ADO, got %v", got)
	}

	in = DayInput{RosteredOn: "08:00"}
	if got := in.Status(); got != StatusWorked {
		t.Fatalf("expected worked day, got %v", got)
	}
}

func TestUnitZeroWhenOffOrADO(t *testing.T) {
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "07:00", ActualOff: "17:00",
		Off: true,
	}
	if got := deriveUnit(monday, in, in.Status()); got != 0 {
		t.Fatalf("expected 0 unit on off day, got %v", got)
	}

	in.Off = false
	in.ADO = true
	if got := deriveUnit(monday, in, in.Status()); got != 0 {
		t.Fatalf("expected 0 unit on ADO day, got %v", got)
	}

	in.ADO = false
	in.Sick = true
	if got := deriveUnit(monday, in, in.Status()); got != 0 {
		t.Fatalf("expected 0 unit on sick day, got %v", got)
	}
}

func TestUnitZeroWhenTimeMissing(t *testing.T) {
	in := DayInput{RosteredOn: "08:00", RosteredOff: "16:00", ActualOn: "08:00"}
	if got := deriveUnit(monday, in, in.Status()); got != 0 {
		t.Fatalf("expected 0 unit with missing sign-off, got %v", got)
	}
}

func TestUnitLiftUp(t *testing.T) {
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "07:00", ActualOff: "15:00",
	}
	if got := deriveUnit(monday, in, in.Status()); got != 1.0 {
		t.Fatalf("expected unit 1.0 for lift-up, got %v", got)
	}
}

func TestUnitLayBack(t *testing.T) {
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "09:00", ActualOff: "18:00",
	}
	if got := deriveUnit(monday, in, in.Status()); got != 1.0 {
		t.Fatalf("expected unit 1.0 for lay-back, got %v", got)
	}
}

func TestUnitBuiltUpForcesStandardWorked(t *testing.T) {
	// Rostered 9 hours, actual a strict sub-interval; the worked field is
	// ignored and measured as a full standard shift.
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "17:00",
		ActualOn: "09:00", ActualOff: "16:00",
		Worked: "6:00",
	}
	if got := deriveUnit(monday, in, in.Status()); got != 1.0 {
		t.Fatalf("expected unit 1.0 for built-up, got %v", got)
	}
}

func TestUnitWorkedAndExtra(t *testing.T) {
	// Matching roster and actual: the variance comes from worked/extra
	// alone.
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "08:00", ActualOff: "16:00",
		Worked: "10:00", Extra: "0:30",
	}
	if got := deriveUnit(monday, in, in.Status()); got != 2.5 {
		t.Fatalf("expected unit 2.5, got %v", got)
	}

	in.Worked = "7:00"
	in.Extra = ""
	if got := deriveUnit(monday, in, in.Status()); got != -1.0 {
		t.Fatalf("expected unit -1.0 shortfall, got %v", got)
	}
}

func TestUnitOvernightShift(t *testing.T) {
	in := DayInput{
		RosteredOn: "22:00", RosteredOff: "06:00",
		ActualOn: "21:00", ActualOff: "06:00",
		Extra: "1:00",
	}
	// Lift-up with an unchanged sign-off: delta 0, extra carries the unit.
	if got := deriveUnit(monday, in, in.Status()); got != 1.0 {
		t.Fatalf("expected unit 1.0 for overnight lift-up, got %v", got)
	}
}
