package timesheet

import (
	"fmt"
	"sort"
	"time"
)

// Engine computes fortnightly pay breakdowns against an injected,
// read-only rate table and holiday set. One Engine may serve any number
// of concurrent invocations; it holds no mutable state.
type Engine struct {
	rates    RateTable
	holidays map[string]struct{}
}

func NewEngine(rates RateTable, holidays []string) *Engine {
	set := make(map[string]struct{}, len(holidays))
	for _, d := range holidays {
		set[d] = struct{}{}
	}
	return &Engine{rates: rates, holidays: set}
}

// Rates returns the rate table in effect.
func (e *Engine) Rates() RateTable {
	return e.rates
}

// Holidays returns the configured holiday dates in ascending order.
func (e *Engine) Holidays() []string {
	out := make([]string, 0, len(e.holidays))
	for d := range e.holidays {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// CalculateDay computes the full breakdown for a single calendar day.
// It is pure: the same date and input always yield the same result.
func (e *Engine) CalculateDay(date time.Time, in DayInput) DayResult {
	status := in.Status()
	values := in.effectiveValues(status)
	unit := deriveUnit(date, in, status)
	penalty, special := classifyDay(in, status, date.Weekday())
	amounts := e.calculateRow(date.Weekday(), values, status, in.Sick, penalty, special, unit)

	holiday := FlagNo
	if _, ok := e.holidays[date.Format(DateFormat)]; ok {
		holiday = FlagYes
	}

	return DayResult{
		Weekday:     date.Weekday().String(),
		Date:        date.Format(DateFormat),
		RosteredOn:  in.RosteredOn,
		ActualOn:    in.ActualOn,
		RosteredOff: in.RosteredOff,
		ActualOff:   in.ActualOff,
		Worked:      in.Worked,
		Extra:       in.Extra,
		Sick:        in.Sick,
		Unit:        unit,
		Penalty:     penalty,
		Special:     special,
		Holiday:     holiday,

		OTRate:         amounts.OTRate,
		PenaltyRate:    amounts.PenaltyRate,
		SpecialLoading: amounts.SpecialLoading,
		SickRate:       amounts.SickRate,
		DailyRate:      amounts.DailyRate,
		Loading:        amounts.Loading,
		DailyCount:     amounts.DailyCount,
	}
}

// CalculateFortnight computes all fourteen days from the start date and
// aggregates the totals. When no day in the fortnight carries ADO status
// (toggled or typed), four ordinary hours are deducted from the Daily-count
// total. It either returns the complete result or an error before any
// output, never a partial fortnight.
func (e *Engine) CalculateFortnight(start time.Time, days []DayInput) (*Fortnight, error) {
	if start.IsZero() {
		return nil, ErrStartDate
	}
	if len(days) != FortnightDays {
		return nil, fmt.Errorf("%w: got %d", ErrFortnightLength, len(days))
	}

	result := &Fortnight{
		StartDate: start.Format(DateFormat),
		Days:      make([]DayResult, 0, FortnightDays),
	}

	anyADO := false
	var totals FortnightTotals
	for i, in := range days {
		date := start.AddDate(0, 0, i)
		day := e.CalculateDay(date, in)
		result.Days = append(result.Days, day)

		status := in.Status()
		if status == StatusADO || containsADO(in.effectiveValues(status)) {
			anyADO = true
		}

		totals.OTRate += day.OTRate
		totals.PenaltyRate += day.PenaltyRate
		totals.SpecialLoading += day.SpecialLoading
		totals.SickRate += day.SickRate
		totals.DailyRate += day.DailyRate
		totals.Loading += day.Loading
		totals.DailyCount += day.DailyCount
	}

	totals.OTRate = round2(totals.OTRate)
	totals.PenaltyRate = round2(totals.PenaltyRate)
	totals.SpecialLoading = round2(totals.SpecialLoading)
	totals.SickRate = round2(totals.SickRate)
	totals.DailyRate = round2(totals.DailyRate)
	totals.Loading = round2(totals.Loading)
	totals.DailyCount = round2(totals.DailyCount)

	if !anyADO {
		totals.Deduction = round2(4 * e.rates.OrdinaryHours)
		totals.DeductionApplied = true
		totals.DailyCount = round2(totals.DailyCount - totals.Deduction)
	}

	result.Totals = totals
	return result, nil
}
