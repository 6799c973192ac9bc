package leave

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsMonth(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		year       int
		month      time.Month
		want       bool
	}{
		{"fully inside month", day(2024, 3, 5), day(2024, 3, 10), 2024, time.March, true},
		{"starts in month ends next", day(2024, 1, 28), day(2024, 2, 3), 2024, time.January, true},
		{"ends in month started previous", day(2024, 1, 28), day(2024, 2, 3), 2024, time.February, true},
		{"spans whole month", day(2024, 2, 20), day(2024, 4, 10), 2024, time.March, true},
		{"before month", day(2024, 1, 1), day(2024, 1, 31), 2024, time.February, false},
		{"after month", day(2024, 3, 1), day(2024, 3, 5), 2024, time.February, false},
		{"ends on month first day", day(2024, 1, 20), day(2024, 2, 1), 2024, time.February, true},
		{"single day in month", day(2024, 6, 15), day(2024, 6, 15), 2024, time.June, true},
		{"year boundary span", day(2023, 12, 28), day(2024, 1, 2), 2024, time.January, true},
		{"year boundary previous year", day(2023, 12, 28), day(2024, 1, 2), 2023, time.December, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := OverlapsMonth(c.start, c.end, c.year, c.month); got != c.want {
				t.Errorf("OverlapsMonth(%s, %s, %d, %s) = %v, want %v",
					c.start.Format(time.DateOnly), c.end.Format(time.DateOnly),
					c.year, c.month, got, c.want)
			}
		})
	}
}

func TestCoversDate(t *testing.T) {
	start := day(2024, 3, 10)
	end := day(2024, 3, 15)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"first day inclusive", day(2024, 3, 10), true},
		{"last day inclusive", day(2024, 3, 15), true},
		{"middle", day(2024, 3, 12), true},
		{"day before", day(2024, 3, 9), false},
		{"day after", day(2024, 3, 16), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CoversDate(start, end, c.date); got != c.want {
				t.Errorf("CoversDate(%s) = %v, want %v", c.date.Format(time.DateOnly), got, c.want)
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Error("Pending must not be terminal")
	}
	if !StatusApproved.IsTerminal() {
		t.Error("Approved must be terminal")
	}
	if !StatusRejected.IsTerminal() {
		t.Error("Rejected must be terminal")
	}
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"Annual", "Sick", "Unpaid", "Maternity", "Emergency"} {
		if _, err := ParseType(valid); err != nil {
			t.Errorf("ParseType(%q) returned error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "annual", "Vacation"} {
		if _, err := ParseType(invalid); err == nil {
			t.Errorf("ParseType(%q) = nil error, want ErrInvalidLeaveType", invalid)
		}
	}
}
