package timesheet

import (
	"strings"
	"time"
)

// FortnightDays is the fixed length of a pay period.
const FortnightDays = 14

// Status is the resolved standing of a single day. ADO strictly dominates
// Sick/Off; both dominate a normal worked day.
type Status int

const (
	StatusWorked Status = iota
	StatusOff
	StatusADO
)

// Markers accepted as literal text in the rostered sign-on field, matched
// case-insensitively. A toggle sets the same marker, so hand-typed and
// toggled days behave identically downstream.
const (
	MarkerADO = "ADO"
	MarkerOff = "OFF"
)

const (
	PenaltyNone      = "No"
	PenaltyMorning   = "Morning"
	PenaltyAfternoon = "Afternoon"
	PenaltyNight     = "Night"

	FlagYes = "Yes"
	FlagNo  = "No"
)

// DayInput is one calendar day's raw entry as supplied by the caller.
// Time and duration fields are free text; blanks degrade per the parser.
type DayInput struct {
	RosteredOn  string `json:"rosteredOn"`
	ActualOn    string `json:"actualOn"`
	RosteredOff string `json:"rosteredOff"`
	ActualOff   string `json:"actualOff"`
	Worked      string `json:"worked"`
	Extra       string `json:"extra"`
	Sick        bool   `json:"sick"`
	Off         bool   `json:"off"`
	ADO         bool   `json:"ado"`
}

// Status resolves the day's standing. Precedence: ADO toggle, then
// Sick/Off toggles, then a literal marker typed into the rostered
// sign-on field, then a normal worked day.
func (in DayInput) Status() Status {
	switch {
	case in.ADO:
		return StatusADO
	case in.Sick || in.Off:
		return StatusOff
	}
	switch {
	case strings.EqualFold(strings.TrimSpace(in.RosteredOn), MarkerADO):
		return StatusADO
	case strings.EqualFold(strings.TrimSpace(in.RosteredOn), MarkerOff):
		return StatusOff
	}
	return StatusWorked
}

// Marker is the effective content of the rostered sign-on slot: the status
// marker for ADO/Off days, the raw text otherwise.
func (s Status) Marker(raw string) string {
	switch s {
	case StatusADO:
		return MarkerADO
	case StatusOff:
		return MarkerOff
	}
	return raw
}

// effectiveValues is the six-field slice the rate computation scans:
// index 0 carries the resolved marker, the rest stay exactly as typed.
// Order: rostered-on, actual-on, rostered-off, actual-off, worked, extra.
func (in DayInput) effectiveValues(status Status) [6]string {
	return [6]string{
		status.Marker(in.RosteredOn),
		in.ActualOn,
		in.RosteredOff,
		in.ActualOff,
		in.Worked,
		in.Extra,
	}
}

// DayResult is one computed day. Amounts are rounded to 2 decimals once
// at computation time and never re-derived.
type DayResult struct {
	Weekday     string `json:"weekday"`
	Date        string `json:"date"`
	RosteredOn  string `json:"rosteredOn"`
	ActualOn    string `json:"actualOn"`
	RosteredOff string `json:"rosteredOff"`
	ActualOff   string `json:"actualOff"`
	Worked      string `json:"worked"`
	Extra       string `json:"extra"`
	Sick        bool   `json:"sick"`

	Unit    float64 `json:"unit"`
	Penalty string  `json:"penalty"`
	Special string  `json:"special"`
	Holiday string  `json:"holiday"`

	OTRate         float64 `json:"otRate"`
	PenaltyRate    float64 `json:"penaltyRate"`
	SpecialLoading float64 `json:"specialLoading"`
	SickRate       float64 `json:"sickRate"`
	DailyRate      float64 `json:"dailyRate"`
	Loading        float64 `json:"loading"`
	DailyCount     float64 `json:"dailyCount"`
}

// FortnightTotals is the column-wise sum of the seven money fields across
// all days. The long-fortnight deduction, when applied, reduces the
// Daily-count total only.
type FortnightTotals struct {
	OTRate           float64 `json:"otRate"`
	PenaltyRate      float64 `json:"penaltyRate"`
	SpecialLoading   float64 `json:"specialLoading"`
	SickRate         float64 `json:"sickRate"`
	DailyRate        float64 `json:"dailyRate"`
	Loading          float64 `json:"loading"`
	DailyCount       float64 `json:"dailyCount"`
	Deduction        float64 `json:"deduction"`
	DeductionApplied bool    `json:"deductionApplied"`
}

// Fortnight is the full output of one engine invocation.
type Fortnight struct {
	StartDate string          `json:"startDate"`
	Days      []DayResult     `json:"days"`
	Totals    FortnightTotals `json:"totals"`
}

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}
