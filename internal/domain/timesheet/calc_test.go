package timesheet

import (
	"testing"
	"time"
)

func testEngine() *Engine {
	return NewEngine(DefaultRates(), DefaultHolidays())
}

func TestWeekendOvertime(t *testing.T) {
	saturday := time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC)
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "08:00", ActualOff: "16:00",
		Worked: "10:00",
	}

	day := testEngine().CalculateDay(saturday, in)
	if day.Unit != 2.0 {
		t.Fatalf("expected unit 2.0, got %v", day.Unit)
	}
	if day.OTRate != 199.27 {
		t.Fatalf("expected OT rate 199.27 at 200%%, got %v", day.OTRate)
	}
	if day.Loading != 199.27 {
		t.Fatalf("expected Saturday loading 199.27, got %v", day.Loading)
	}
	if day.DailyRate != 398.55 {
		t.Fatalf("expected daily rate 398.55, got %v", day.DailyRate)
	}
	if day.Penalty != PenaltyNone {
		t.Fatalf("expected no penalty on weekend, got %q", day.Penalty)
	}
}

func TestWeekdayOvertime(t *testing.T) {
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "08:00", ActualOff: "16:00",
		Worked: "9:00",
	}

	day := testEngine().CalculateDay(monday, in)
	if day.Unit != 1.0 {
		t.Fatalf("expected unit 1.0, got %v", day.Unit)
	}
	if day.OTRate != 74.73 {
		t.Fatalf("expected OT rate 74.73 at 150%%, got %v", day.OTRate)
	}
}

func TestADODayCredit(t *testing.T) {
	day := testEngine().CalculateDay(monday, DayInput{ADO: true})
	if day.Unit != 0 {
		t.Fatalf("expected unit 0 on ADO day, got %v", day.Unit)
	}
	if day.OTRate != 0 {
		t.Fatalf("expected OT rate 0 on ADO day, got %v", day.OTRate)
	}
	// Base daily rate is withheld, but the half-day accrual credit from
	// the literal field scan still pays out.
	if day.DailyRate != 199.27 {
		t.Fatalf("expected daily rate 199.27, got %v", day.DailyRate)
	}
	if day.DailyCount != 199.27 {
		t.Fatalf("expected daily count 199.27, got %v", day.DailyCount)
	}
}

func TestADOTypedInOtherFieldDoubleApplies(t *testing.T) {
	// The credit scan is literal: "ADO" typed into a non-status field adds
	// the credit on top of a normal worked day's base.
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "08:00", ActualOff: "16:00",
		Extra: "ADO",
	}
	day := testEngine().CalculateDay(monday, in)
	if round2(day.DailyRate) != 597.82 {
		t.Fatalf("expected daily rate 597.82, got %v", day.DailyRate)
	}
}

func TestSickDay(t *testing.T) {
	day := testEngine().CalculateDay(monday, DayInput{Sick: true})
	if day.SickRate != 398.55 {
		t.Fatalf("expected sick rate 398.55, got %v", day.SickRate)
	}
	if day.DailyRate != 0 {
		t.Fatalf("expected daily rate 0 on sick day, got %v", day.DailyRate)
	}
	if day.Unit != 0 {
		t.Fatalf("expected unit 0 on sick day, got %v", day.Unit)
	}
}

func TestShortfallGoesNegative(t *testing.T) {
	in := DayInput{
		RosteredOn: "08:00", RosteredOff: "16:00",
		ActualOn: "08:00", ActualOff: "16:00",
		Worked: "7:00",
	}
	day := testEngine().CalculateDay(monday, in)
	if day.Unit != -1.0 {
		t.Fatalf("expected unit -1.0, got %v", day.Unit)
	}
	if day.OTRate != -49.82 {
		t.Fatalf("expected OT rate -49.82 shortfall, got %v", day.OTRate)
	}
	if round2(day.DailyCount) != 348.73 {
		t.Fatalf("expected daily count 348.73, got %v", day.DailyCount)
	}
}

func TestShortfallUsesPenaltyRate(t *testing.T) {
	// A night-shift shortfall deducts at ordinary plus the night penalty.
	in := DayInput{
		RosteredOn: "18:00", RosteredOff: "02:00",
		ActualOn: "18:00", ActualOff: "02:00",
		Worked: "7:00",
	}
	day := testEngine().CalculateDay(monday, in)
	if day.Penalty != PenaltyNight {
		t.Fatalf("expected night penalty, got %q", day.Penalty)
	}
	want := round2(-1 * (5.69 + 49.81842))
	if day.OTRate != want {
		t.Fatalf("expected OT rate %v, got %v", want, day.OTRate)
	}
}

func TestPenaltyRateUsesFlooredWorkedHours(t *testing.T) {
	in := DayInput{
		RosteredOn: "10:00", RosteredOff: "19:00",
		ActualOn: "10:00", ActualOff: "19:00",
		Worked: "8:30",
	}
	day := testEngine().CalculateDay(monday, in)
	if day.Penalty != PenaltyAfternoon {
		t.Fatalf("expected afternoon penalty, got %q", day.Penalty)
	}
	// floor(8.5) = 8 hours at the afternoon rate.
	if day.PenaltyRate != 38.72 {
		t.Fatalf("expected penalty rate 38.72, got %v", day.PenaltyRate)
	}
}

func TestSpecialLoadingFlat(t *testing.T) {
	in := DayInput{
		RosteredOn: "02:00", RosteredOff: "10:00",
		ActualOn: "02:00", ActualOff: "10:00",
	}
	day := testEngine().CalculateDay(monday, in)
	if day.Special != FlagYes {
		t.Fatalf("expected special flag, got %q", day.Special)
	}
	if day.SpecialLoading != 5.69 {
		t.Fatalf("expected special loading 5.69, got %v", day.SpecialLoading)
	}
}

func TestHolidayFlag(t *testing.T) {
	newYears := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	day := testEngine().CalculateDay(newYears, DayInput{})
	if day.Holiday != FlagYes {
		t.Fatalf("expected holiday flag on 2025-01-01, got %q", day.Holiday)
	}

	day = testEngine().CalculateDay(monday, DayInput{})
	if day.Holiday != FlagNo {
		t.Fatalf("expected no holiday flag, got %q", day.Holiday)
	}
}
