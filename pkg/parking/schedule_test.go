package parking

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// 2024-01-01 was a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func TestParseSchedule(t *testing.T) {
	s := FormatWeek(
		Hours{Open: "06:30 am", Close: "08:15 pm"},
		Hours{Open: "07:00 am", Close: "05:00 pm"},
		Hours{Open: "Closed"},
	)

	got, err := ParseSchedule(s)
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}

	weekday := Hours{Open: "06:30 am", Close: "08:15 pm"}
	want := Schedule{
		weekday, weekday, weekday, weekday, weekday,
		{Open: "07:00 am", Close: "05:00 pm"},
		{Open: "Closed", Close: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSchedule mismatch (-want +got):\n%s", diff)
	}

	if h := got.Day(time.Saturday); h.Open != "07:00 am" {
		t.Errorf("Day(Saturday) = %+v", h)
	}
	if h := got.Day(time.Sunday); h.Open != "Closed" {
		t.Errorf("Day(Sunday) = %+v", h)
	}
}

func TestParseScheduleErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few days", "Monday : 1:00am - 2:00am<br>Tuesday : 1:00am - 2:00am"},
		{"wrong order", "Tuesday : a - b<br>Monday : a - b<br>Wednesday : a - b<br>Thursday : a - b<br>Friday : a - b<br>Saturday : a - b<br>Sunday : a - b"},
		{"no separator", "Monday<br>Tuesday<br>Wednesday<br>Thursday<br>Friday<br>Saturday<br>Sunday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchedule(tt.input)
			if !errors.Is(err, ErrMalformedSchedule) {
				t.Errorf("ParseSchedule(%q) error = %v, want ErrMalformedSchedule", tt.input, err)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"6:30am", 6*60 + 30, false},
		{"06:30 am", 6*60 + 30, false},
		{"12:00am", 0, false},
		{"12:15 PM", 12*60 + 15, false},
		{"1:00am", 60, false},
		{"6:00pm", 18 * 60, false},
		{"11:59 pm", 23*60 + 59, false},
		{"18:00", 0, true},
		{"13:00 pm", 0, true},
		{"6am", 0, true},
		{"6:75am", 0, true},
		{"Closed", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedClock) {
					t.Errorf("ParseClock(%q) error = %v, want ErrMalformedClock", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestScheduleIsOpen(t *testing.T) {
	overnight, err := ParseSchedule(FormatWeek(
		Hours{Open: "6:30am", Close: "1:00am"},
		Hours{Open: "6:30am", Close: "1:00am"},
		Hours{Open: "10:00am", Close: "6:00pm"},
	))
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}

	closedSunday, err := ParseSchedule(FormatWeek(
		Hours{Open: "08:00 am", Close: "05:00 pm"},
		Hours{Open: "08:00 am", Close: "05:00 pm"},
		Hours{Open: "Closed"},
	))
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}

	garbage, err := ParseSchedule(FormatWeek(
		Hours{Open: "dawn", Close: "dusk"},
		Hours{Open: "dawn", Close: "dusk"},
		Hours{Open: "dawn", Close: "dusk"},
	))
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}

	tests := []struct {
		name  string
		sched Schedule
		at    time.Time
		want  bool
	}{
		{"monday morning", overnight, at(1, 9, 0), true},
		{"monday before opening", overnight, at(1, 5, 0), false},
		{"monday just past midnight", overnight, at(1, 0, 30), false},
		{"tuesday before monday closes", overnight, at(2, 0, 30), true},
		{"tuesday at monday closing", overnight, at(2, 1, 0), true},
		{"tuesday after monday closes", overnight, at(2, 1, 1), false},
		{"sunday before saturday closes", overnight, at(7, 0, 30), true},
		{"monday late evening", overnight, at(1, 23, 45), true},
		{"sunday afternoon", overnight, at(7, 15, 0), true},
		{"sunday evening", overnight, at(7, 19, 0), false},
		{"sunday closed", closedSunday, at(7, 12, 0), false},
		{"weekday open", closedSunday, at(3, 8, 0), true},
		{"weekday closing minute", closedSunday, at(3, 17, 0), true},
		{"weekday after close", closedSunday, at(3, 17, 1), false},
		{"unparseable", garbage, at(2, 3, 0), true},
		{"monday after closed sunday", closedSunday, at(1, 0, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sched.IsOpen(tt.at); got != tt.want {
				t.Errorf("IsOpen(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestIsBusy(t *testing.T) {
	busy := []string{"07:00 am", "09:00 pm", "12:00 pm"}

	tests := []struct {
		name string
		busy []string
		at   time.Time
		want bool
	}{
		{"no busy hours", nil, at(1, 7, 0), false},
		{"morning match", busy, at(1, 7, 45), true},
		{"evening match", busy, at(1, 21, 5), true},
		{"noon match", busy, at(1, 12, 30), true},
		{"am/pm mismatch", busy, at(1, 19, 0), false},
		{"no match", busy, at(1, 8, 0), false},
		{"midnight label", []string{"00:00 am"}, at(1, 0, 10), true},
		{"midnight is not twelve am", []string{"12:00 am"}, at(1, 0, 10), false},
		{"noon is not zero pm", []string{"00:00 pm"}, at(1, 12, 10), false},
		{"case insensitive", []string{"10:00 AM"}, at(1, 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBusy(tt.busy, tt.at); got != tt.want {
				t.Errorf("IsBusy(%v, %v) = %v, want %v", tt.busy, tt.at, got, tt.want)
			}
		})
	}
}

func TestClockLabel(t *testing.T) {
	if got := ClockLabel(6, 0, false); got != "06:00 am" {
		t.Errorf("ClockLabel(6, 0, false) = %q", got)
	}
	if got := ClockLabel(10, 5, true); got != "10:05 pm" {
		t.Errorf("ClockLabel(10, 5, true) = %q", got)
	}
}

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name   string
		prices string
		hours  float64
		want   float64
	}{
		{"hourly", "£1 / hour", 2, 2},
		{"hourly rounds up", "£1 / hour", 2.1, 3},
		{"hourly decimal", "£1.50 / hour", 1, 1.5},
		{"free", "Free parking", 5, 0},
		{"block", "£2 / 3 hours", 4, 4},
		{"block exact", "£2 / 3 hours", 3, 2},
		{"first hour only", "£1.30 first hour, +20p per additional hour", 0.5, 1.3},
		{"first hour plus extra", "£1.30 first hour, +20p per additional hour", 3, 1.7},
		{"unknown", "call for prices", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(tt.prices, tt.hours)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateCost(%q, %v) = %v, want %v", tt.prices, tt.hours, got, tt.want)
			}
		})
	}
}

func TestIsFree(t *testing.T) {
	if !IsFree("FREE for 2 hours") {
		t.Error("IsFree should match case-insensitively")
	}
	if IsFree("£1 / hour") {
		t.Error("IsFree(£1 / hour) should be false")
	}
}

func TestFreeHourLimit(t *testing.T) {
	tests := []struct {
		description string
		want        int
		wantOK      bool
	}{
		{"2 hour free parking", 2, true},
		{"First 3 Hours Free", 3, true},
		{"4hour free", 4, true},
		{"A cool place to park", 0, false},
		{"0 hours free", 0, false},
		{"free parking", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, ok := FreeHourLimit(tt.description)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FreeHourLimit(%q) = %d, %v, want %d, %v", tt.description, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
