package timesheet

import "testing"

func TestParseTime(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"07:30", 7, 30, true},
		{"0730", 7, 30, true},
		{"730", 7, 30, true},
		{"7:30", 7, 30, true},
		{"23:59", 23, 59, true},
		{"0000", 0, 0, true},
		{"", 0, 0, false},
		{"  ", 0, 0, false},
		{"2599", 0, 0, false},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"12345", 0, 0, false},
		{"73", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"7:30:00", 0, 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseTime(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseTime(%q): expected ok=%v, got %v", tc.in, tc.ok, ok)
		}
		if ok && (got.Hour != tc.hour || got.Minute != tc.minute) {
			t.Fatalf("ParseTime(%q): expected %02d:%02d, got %02d:%02d", tc.in, tc.hour, tc.minute, got.Hour, got.Minute)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1:30", 1.5},
		{"0130", 1.5},
		{"26:30", 26.5},
		{"800", 8},
		{"", 0},
		{"30", 0},
		{"abc", 0},
		{"1:2:3", 0},
	}

	for _, tc := range cases {
		if got := ParseDuration(tc.in); got != tc.want {
			t.Fatalf("ParseDuration(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestParseStartDate(t *testing.T) {
	parsed, err := ParseStartDate("2025-08-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Format(DateFormat) != "2025-08-04" {
		t.Fatalf("unexpected date %v", parsed)
	}

	if _, err := ParseStartDate("2025-08-04T00:00:00Z"); err != nil {
		t.Fatalf("expected RFC3339 to parse, got %v", err)
	}
	if _, err := ParseStartDate(""); err == nil {
		t.Fatal("expected error for empty start date")
	}
	if _, err := ParseStartDate("04/08/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestTimeOfDayMinutes(t *testing.T) {
	tod := TimeOfDay{Hour: 18, Minute: 30}
	if tod.Minutes() != 1110 {
		t.Fatalf("expected 1110 minutes, got %d", tod.Minutes())
	}
	if tod.String() != "18:30" {
		t.Fatalf("expected 18:30, got %s", tod.String())
	}
}
