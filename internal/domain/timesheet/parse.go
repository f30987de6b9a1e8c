package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// At anchors the clock time to the given calendar date.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime reads a clock time from free-form text. Accepted shapes are
// "HH:MM" (24-hour, hour and minute each 1–2 digits) and a bare 3- or
// 4-digit string where the last two digits are minutes. Anything else,
// including out-of-range values, reports ok=false rather than an error:
// bad input means "absent", never a failure.
func ParseTime(text string) (TimeOfDay, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TimeOfDay{}, false
	}

	if strings.Contains(text, ":") {
		parts := strings.Split(text, ":")
		if len(parts) != 2 {
			return TimeOfDay{}, false
		}
		hour, ok := clockField(parts[0])
		if !ok {
			return TimeOfDay{}, false
		}
		minute, ok := clockField(parts[1])
		if !ok {
			return TimeOfDay{}, false
		}
		return clockValue(hour, minute)
	}

	if !allDigits(text) || (len(text) != 3 && len(text) != 4) {
		return TimeOfDay{}, false
	}
	hour, _ := strconv.Atoi(text[:len(text)-2])
	minute, _ := strconv.Atoi(text[len(text)-2:])
	return clockValue(hour, minute)
}

// ParseDuration reads a span of hours from free-form text. "H:MM" allows
// any hour magnitude; a bare digit string splits into hours plus a two-digit
// minute tail. Empty or unparsable text yields 0: a duration defaults to
// zero, never to absent.
func ParseDuration(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	if strings.Contains(text, ":") {
		parts := strings.Split(text, ":")
		if len(parts) != 2 {
			return 0
		}
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0
		}
		return float64(hours) + float64(minutes)/60
	}

	if !allDigits(text) || len(text) < 3 {
		return 0
	}
	hours, _ := strconv.Atoi(text[:len(text)-2])
	minutes, _ := strconv.Atoi(text[len(text)-2:])
	return float64(hours) + float64(minutes)/60
}

// ParseStartDate reads a fortnight start date, accepting RFC3339 or
// YYYY-MM-DD. Unlike the clock parsers, a bad start date is a hard error.
func ParseStartDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, ErrStartDate
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q", value)
	}
	return parsed, nil
}

func clockField(s string) (int, bool) {
	if len(s) < 1 || len(s) > 2 || !allDigits(s) {
		return 0, false
	}
	value, _ := strconv.Atoi(s)
	return value, true
}

func clockValue(hour, minute int) (TimeOfDay, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
