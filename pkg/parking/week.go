package parking

import (
	"strings"
	"time"
)

// LineBreak separates the per-day lines of an opening schedule.
const LineBreak = "<br>"

// Days lists the schedule's day names in output order.
var Days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Hours is an opening/closing pair. Both values are free-form clock labels
// and are never validated when formatting.
type Hours struct {
	Open  string
	Close string
}

// FormatWeek renders a schedule where Monday to Friday share the same hours.
func FormatWeek(weekday, saturday, sunday Hours) string {
	return FormatDays([7]Hours{weekday, weekday, weekday, weekday, weekday, saturday, sunday})
}

// FormatDays renders a schedule with independent hours for every day,
// Monday first.
func FormatDays(days [7]Hours) string {
	var sb strings.Builder
	for i, h := range days {
		if i > 0 {
			sb.WriteString(LineBreak)
		}
		sb.WriteString(Days[i])
		sb.WriteString(" : ")
		sb.WriteString(h.Open)
		sb.WriteString(" - ")
		sb.WriteString(h.Close)
	}
	return sb.String()
}

// dayIndex maps a time.Weekday onto the Monday-first schedule index.
func dayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
