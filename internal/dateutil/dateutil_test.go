package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2024-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("15/03/2024")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseView(t *testing.T) {
	tests := []struct {
		input   string
		want    View
		wantErr bool
	}{
		{"day", ViewDay, false},
		{"week", ViewWeek, false},
		{"Day", ViewDay, false},
		{"", ViewDay, false},
		{"month", "", true},
	}

	for _, tt := range tests {
		got, err := ParseView(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidView) {
				t.Errorf("ParseView(%q): got error %v, want ErrInvalidView", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseView(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseView(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestViewRange(t *testing.T) {
	// 2024-03-15 is a Friday.
	date := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

	t.Run("day view spans the whole day", func(t *testing.T) {
		start, end := ViewRange(date, ViewDay)

		wantStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
		if !start.Equal(wantStart) {
			t.Errorf("got start %v, want %v", start, wantStart)
		}
		wantEnd := time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.Local)
		if !end.Equal(wantEnd) {
			t.Errorf("got end %v, want %v", end, wantEnd)
		}
	})

	t.Run("week view starts on Sunday", func(t *testing.T) {
		start, end := ViewRange(date, ViewWeek)

		wantStart := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
		if !start.Equal(wantStart) {
			t.Errorf("got start %v, want %v", start, wantStart)
		}
		wantEnd := time.Date(2024, 3, 16, 23, 59, 59, 999_000_000, time.Local)
		if !end.Equal(wantEnd) {
			t.Errorf("got end %v, want %v", end, wantEnd)
		}
	})

	t.Run("sunday is its own week start", func(t *testing.T) {
		sunday := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
		start, _ := ViewRange(sunday, ViewWeek)
		if !start.Equal(TruncateToDay(sunday)) {
			t.Errorf("got start %v, want %v", start, TruncateToDay(sunday))
		}
	})
}

func TestViewDays(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	t.Run("day view has one day", func(t *testing.T) {
		days := ViewDays(date, ViewDay)
		if len(days) != 1 {
			t.Fatalf("got %d days, want 1", len(days))
		}
		if !days[0].Equal(date) {
			t.Errorf("got %v, want %v", days[0], date)
		}
	})

	t.Run("week view has seven days from Sunday", func(t *testing.T) {
		days := ViewDays(date, ViewWeek)
		if len(days) != 7 {
			t.Fatalf("got %d days, want 7", len(days))
		}
		if days[0].Weekday() != time.Sunday {
			t.Errorf("first day is %v, want Sunday", days[0].Weekday())
		}
		if days[6].Weekday() != time.Saturday {
			t.Errorf("last day is %v, want Saturday", days[6].Weekday())
		}
		for i := 1; i < 7; i++ {
			if days[i].Sub(days[i-1]) != 24*time.Hour {
				t.Errorf("days %d and %d are not consecutive: %v, %v", i-1, i, days[i-1], days[i])
			}
		}
	})
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-03-15", false}, // Friday
		{"2024-03-16", true},  // Saturday
		{"2024-03-17", true},  // Sunday
		{"2024-03-18", false}, // Monday
	}

	for _, tt := range tests {
		date, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("parsing %q: %v", tt.date, err)
		}
		if got := IsWeekend(date); got != tt.want {
			t.Errorf("IsWeekend(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Friday.
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)},
		{"tomorrow", time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)},
		{"monday", time.Date(2024, 3, 18, 0, 0, 0, 0, time.Local)},
		{"friday", time.Date(2024, 3, 22, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		got, err := ParseRelativeDate(tt.input, today)
		if err != nil {
			t.Errorf("ParseRelativeDate(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	t.Run("past date rejected", func(t *testing.T) {
		_, err := ParseRelativeDate("2024-03-01", today)
		if !errors.Is(err, ErrDateInPast) {
			t.Errorf("got error %v, want %v", err, ErrDateInPast)
		}
	})
}
