package util

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantFirst string
		wantLast  string
	}{
		{"june", 2025, 6, "2025-06-01", "2025-06-30"},
		{"february non-leap", 2025, 2, "2025-02-01", "2025-02-28"},
		{"february leap", 2024, 2, "2024-02-01", "2024-02-29"},
		{"december", 2025, 12, "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthRange(tt.year, tt.month)
			if got := first.Format("2006-01-02"); got != tt.wantFirst {
				t.Errorf("first day = %s, want %s", got, tt.wantFirst)
			}
			if got := last.Format("2006-01-02"); got != tt.wantLast {
				t.Errorf("last day = %s, want %s", got, tt.wantLast)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2025, 6, 15, 23, 59, 58, 123, time.UTC)
	got := TruncateToDay(ts)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateToDay = %v, want %v", got, want)
	}
}

func TestWeekStart_SundayBased(t *testing.T) {
	// 2025-06-15 is a Sunday; the week runs through Saturday 2025-06-21.
	sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		if got := WeekStart(day); !got.Equal(sunday) {
			t.Errorf("WeekStart(%s) = %s, want %s",
				day.Format("2006-01-02"), got.Format("2006-01-02"), sunday.Format("2006-01-02"))
		}
	}

	// The next Sunday starts a new week.
	next := sunday.AddDate(0, 0, 7)
	if got := WeekStart(next); !got.Equal(next) {
		t.Errorf("WeekStart(next sunday) = %s, want %s", got, next)
	}
}

func TestPreviousMonth(t *testing.T) {
	year, month := PreviousMonth(2025, 1)
	if year != 2024 || month != 12 {
		t.Errorf("PreviousMonth(2025, 1) = %d, %d, want 2024, 12", year, month)
	}

	year, month = PreviousMonth(2025, 7)
	if year != 2025 || month != 6 {
		t.Errorf("PreviousMonth(2025, 7) = %d, %d, want 2025, 6", year, month)
	}
}
