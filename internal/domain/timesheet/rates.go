package timesheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RateTable holds the per-hour (or flat) pay constants. It is loaded once
// at startup and shared read-only by every day computation.
type RateTable struct {
	AfternoonShift float64 `yaml:"afternoonShift" json:"afternoonShift"`
	NightShift     float64 `yaml:"nightShift" json:"nightShift"`
	EarlyMorning   float64 `yaml:"earlyMorning" json:"earlyMorning"`
	SpecialLoading float64 `yaml:"specialLoading" json:"specialLoading"`
	OT150          float64 `yaml:"ot150" json:"ot150"`
	OT200          float64 `yaml:"ot200" json:"ot200"`
	ADOAdjustment  float64 `yaml:"adoAdjustment" json:"adoAdjustment"`
	SatLoading50   float64 `yaml:"satLoading50" json:"satLoading50"`
	SunLoading100  float64 `yaml:"sunLoading100" json:"sunLoading100"`
	PublicHoliday  float64 `yaml:"publicHoliday" json:"publicHoliday"`
	PHLoading50    float64 `yaml:"phLoading50" json:"phLoading50"`
	PHLoading100   float64 `yaml:"phLoading100" json:"phLoading100"`
	SickWithMC     float64 `yaml:"sickWithMC" json:"sickWithMC"`
	OrdinaryHours  float64 `yaml:"ordinaryHours" json:"ordinaryHours"`
}

// DefaultRates returns the NSW award constants.
func DefaultRates() RateTable {
	return RateTable{
		AfternoonShift: 4.84,
		NightShift:     5.69,
		EarlyMorning:   4.84,
		SpecialLoading: 5.69,
		OT150:          74.72763,
		OT200:          99.63684,
		ADOAdjustment:  49.81842,
		SatLoading50:   24.90921,
		SunLoading100:  49.81842,
		PublicHoliday:  49.81842,
		PHLoading50:    24.90921,
		PHLoading100:   49.81842,
		SickWithMC:     49.81842,
		OrdinaryHours:  49.81842,
	}
}

// DefaultHolidays returns the NSW public holidays for 2025.
func DefaultHolidays() []string {
	return []string{
		"2025-01-01", "2025-01-27", "2025-04-18", "2025-04-19", "2025-04-20",
		"2025-04-21", "2025-04-25", "2025-06-09", "2025-10-06", "2025-12-25",
		"2025-12-26",
	}
}

type ratesFile struct {
	Rates    RateTable `yaml:"rates"`
	Holidays []string  `yaml:"holidays"`
}

// LoadRatesFile reads a YAML override for the rate table and holiday set.
// Rate fields omitted from the file keep their default values; an empty
// holidays list keeps the default set.
func LoadRatesFile(path string) (RateTable, []string, error) {
	doc := ratesFile{Rates: DefaultRates(), Holidays: DefaultHolidays()}

	data, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, nil, fmt.Errorf("read rates file: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RateTable{}, nil, fmt.Errorf("parse rates file %s: %w", path, err)
	}
	if len(doc.Holidays) == 0 {
		doc.Holidays = DefaultHolidays()
	}
	return doc.Rates, doc.Holidays, nil
}
