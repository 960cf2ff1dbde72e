package util

import "time"

// MonthRange returns the first and last day of the given month, both at
// midnight UTC. The last day is found by rolling to day 0 of the next month.
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// TruncateToDay normalizes a timestamp to midnight UTC so that range
// comparisons work at day granularity regardless of time-of-day.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Sunday that begins the week containing t,
// normalized to midnight UTC.
func WeekStart(t time.Time) time.Time {
	day := TruncateToDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// PreviousMonth returns the year and month for the previous month.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
