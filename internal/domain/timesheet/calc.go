package timesheet

import (
	"math"
	"strings"
	"time"
)

// dayAmounts are the seven money components of one day.
type dayAmounts struct {
	OTRate         float64
	PenaltyRate    float64
	SpecialLoading float64
	SickRate       float64
	DailyRate      float64
	Loading        float64
	DailyCount     float64
}

// calculateRow computes the money components from the effective field
// values, the resolved status and the pre-rounded Unit. Each component is
// rounded independently; the OT component may legitimately go negative on
// a shortfall day (Unit < 0); that is a deduction, not an error.
func (e *Engine) calculateRow(weekday time.Weekday, values [6]string, status Status, sick bool, penalty, special string, unit float64) dayAmounts {
	var out dayAmounts
	rates := e.rates
	weekend := isWeekend(weekday)

	switch {
	case status == StatusADO && unit >= 0:
		out.OTRate = round2(unit * rates.ADOAdjustment)
	case status == StatusWorked && unit >= 0:
		if weekend {
			out.OTRate = round2(unit * rates.OT200)
		} else {
			out.OTRate = round2(unit * rates.OT150)
		}
	default:
		// Shortfall (or an Off day): ordinary hours plus whatever
		// loading the day would have carried.
		switch {
		case weekday == time.Saturday:
			out.OTRate = round2(unit * (rates.SatLoading50 + rates.OrdinaryHours))
		case weekday == time.Sunday:
			out.OTRate = round2(unit * (rates.SunLoading100 + rates.OrdinaryHours))
		case penalty == PenaltyAfternoon || penalty == PenaltyMorning:
			out.OTRate = round2(unit * (rates.AfternoonShift + rates.OrdinaryHours))
		case penalty == PenaltyNight:
			out.OTRate = round2(unit * (rates.NightShift + rates.OrdinaryHours))
		default:
			out.OTRate = round2(unit * rates.OrdinaryHours)
		}
	}

	workedHours := ParseDuration(values[4])
	if workedHours == 0 {
		workedHours = standardShiftHours
	}
	penaltyHours := math.Floor(workedHours)
	switch penalty {
	case PenaltyAfternoon:
		out.PenaltyRate = round2(penaltyHours * rates.AfternoonShift)
	case PenaltyNight:
		out.PenaltyRate = round2(penaltyHours * rates.NightShift)
	case PenaltyMorning:
		out.PenaltyRate = round2(penaltyHours * rates.EarlyMorning)
	}

	if special == FlagYes {
		out.SpecialLoading = round2(rates.SpecialLoading)
	}
	if sick {
		out.SickRate = round2(standardShiftHours * rates.SickWithMC)
	}

	if status == StatusWorked {
		out.DailyRate = round2(standardShiftHours * rates.OrdinaryHours)
	}
	// Half-day ADO accrual credit: a literal "ADO" in any of the six
	// field slots earns it, on top of (and independent of) the status
	// branch above. The scan is deliberately this literal.
	if containsADO(values) {
		out.DailyRate = round2(out.DailyRate + round2(4*rates.OrdinaryHours))
	}

	if status == StatusWorked {
		switch weekday {
		case time.Saturday:
			out.Loading = round2(standardShiftHours * rates.SatLoading50)
		case time.Sunday:
			out.Loading = round2(standardShiftHours * rates.SunLoading100)
		}
	}

	// The components are already 2-decimal values; rounding the sum only
	// squares away float representation noise.
	out.DailyCount = round2(out.OTRate + out.PenaltyRate + out.SpecialLoading +
		out.SickRate + out.DailyRate + out.Loading)
	return out
}

func containsADO(values [6]string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), MarkerADO) {
			return true
		}
	}
	return false
}
