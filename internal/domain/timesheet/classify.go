package timesheet

import "time"

// Clock windows in minutes since midnight.
const (
	nightFrom     = 18 * 60  // 18:00
	nightWrapTo   = 4 * 60   // up to 03:59 after midnight
	morningFrom   = 4 * 60   // 04:00
	morningTo     = 330      // 05:30
	afternoonMark = 18 * 60  // shift must straddle 18:00
	specialFrom   = 60 + 1   // 01:01
	specialTo     = 4*60 - 1 // 03:59
	dayMinutes    = 24 * 60
)

// classifyDay determines the shift-penalty category and the special-loading
// flag from the actual sign-on/off clocks. Off/ADO days, sick days and
// weekends never attract either.
func classifyDay(in DayInput, status Status, weekday time.Weekday) (penalty, special string) {
	penalty, special = PenaltyNone, FlagNo
	if status != StatusWorked || in.Sick || isWeekend(weekday) {
		return penalty, special
	}

	signOn, onOK := ParseTime(in.ActualOn)
	signOff, offOK := ParseTime(in.ActualOff)

	if onOK {
		m1 := signOn.Minutes()
		switch {
		case m1 >= nightFrom || m1 < nightWrapTo:
			penalty = PenaltyNight
		case m1 >= morningFrom && m1 <= morningTo:
			penalty = PenaltyMorning
		case offOK:
			// Wrap the sign-off forward across midnight before testing
			// whether the shift straddles the afternoon mark.
			m2 := signOff.Minutes()
			if m2 < m1 {
				m2 += dayMinutes
			}
			if m1 <= afternoonMark && m2 >= afternoonMark {
				penalty = PenaltyAfternoon
			}
		}
	}

	if (onOK && inSpecialWindow(signOn)) || (offOK && inSpecialWindow(signOff)) {
		special = FlagYes
	}
	return penalty, special
}

func inSpecialWindow(t TimeOfDay) bool {
	m := t.Minutes() % dayMinutes
	return m >= specialFrom && m <= specialTo
}
