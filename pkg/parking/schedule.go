package parking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Schedule is a parsed opening schedule, Monday first.
type Schedule [7]Hours

// ParseSchedule parses the openCloseTimes format produced by FormatDays.
func ParseSchedule(s string) (Schedule, error) {
	var sched Schedule

	lines := strings.Split(s, LineBreak)
	if len(lines) != len(Days) {
		return sched, fmt.Errorf("%w: got %d days, want %d", ErrMalformedSchedule, len(lines), len(Days))
	}

	for i, line := range lines {
		day, span, ok := strings.Cut(line, " : ")
		if !ok {
			return sched, fmt.Errorf("%w: line %q has no day separator", ErrMalformedSchedule, line)
		}
		if strings.TrimSpace(day) != Days[i] {
			return sched, fmt.Errorf("%w: line %d is %q, want %s", ErrMalformedSchedule, i+1, day, Days[i])
		}

		open, closing, ok := strings.Cut(span, " - ")
		if !ok {
			// e.g. "Closed"
			sched[i] = Hours{Open: strings.TrimSpace(span)}
			continue
		}
		sched[i] = Hours{Open: strings.TrimSpace(open), Close: strings.TrimSpace(closing)}
	}

	return sched, nil
}

// Day returns the hours that apply on the given weekday.
func (s Schedule) Day(d time.Weekday) Hours {
	return s[dayIndex(d)]
}

// IsOpen reports whether the lot is open at t. A closing time earlier than
// the opening time runs past midnight into the next day, so the previous
// day's hours are checked first. Ranges that cannot be parsed are reported
// as open.
func (s Schedule) IsOpen(t time.Time) bool {
	now := t.Hour()*60 + t.Minute()

	prev := s.Day((t.Weekday() + 6) % 7)
	if open, closing, ok := prev.clocks(); ok && closing < open && now <= closing {
		return true
	}

	h := s.Day(t.Weekday())
	if h.Closed() {
		return false
	}
	open, closing, ok := h.clocks()
	if !ok {
		return true
	}
	if closing < open {
		return now >= open
	}
	return now >= open && now <= closing
}

// Closed reports whether the day is marked closed.
func (h Hours) Closed() bool {
	return strings.Contains(strings.ToLower(h.Open), "closed")
}

// clocks parses both ends of the range in minutes after midnight.
func (h Hours) clocks() (open, closing int, ok bool) {
	if h.Closed() {
		return 0, 0, false
	}
	open, err := ParseClock(h.Open)
	if err != nil {
		return 0, 0, false
	}
	closing, err = ParseClock(h.Close)
	if err != nil {
		return 0, 0, false
	}
	return open, closing, true
}

// ParseClock parses a 12-hour clock label such as "6:30am" or "06:30 pm"
// into minutes after midnight.
func ParseClock(s string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	var pm bool
	switch {
	case strings.HasSuffix(v, "pm"):
		pm = true
	case strings.HasSuffix(v, "am"):
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}
	v = strings.TrimSpace(v[:len(v)-2])

	hs, ms, ok := strings.Cut(v, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil || hour < 0 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}

	if pm && hour != 12 {
		hour += 12
	}
	if !pm && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}

// ClockLabel formats a 12-hour clock label as "HH:MM am" or "HH:MM pm".
func ClockLabel(hour, minute int, pm bool) string {
	suffix := "am"
	if pm {
		suffix = "pm"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, minute, suffix)
}

// IsBusy reports whether the hour containing t appears in busyHours.
func IsBusy(busyHours []string, t time.Time) bool {
	if len(busyHours) == 0 {
		return false
	}

	// Midnight is "00:00 am", noon is "12:00 pm".
	pm := t.Hour() >= 12
	hour := t.Hour() % 12
	if pm && hour == 0 {
		hour = 12
	}
	label := ClockLabel(hour, 0, pm)

	for _, b := range busyHours {
		if strings.EqualFold(strings.TrimSpace(b), label) {
			return true
		}
	}
	return false
}
