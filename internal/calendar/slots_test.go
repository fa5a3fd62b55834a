package calendar

import (
	"errors"
	"testing"
	"time"
)

func testSettings() *Settings {
	return &Settings{
		WeekdayStart: "09:00",
		WeekdayEnd:   "18:00",
		WeekendStart: "10:00",
		WeekendEnd:   "16:00",
		SlotDuration: 30,
	}
}

// 2024-03-15 is a Friday, 2024-03-16 a Saturday.
var (
	friday   = time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	saturday = time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)
)

func TestGenerateSlots(t *testing.T) {
	t.Run("weekday hours", func(t *testing.T) {
		slots := GenerateSlots(testSettings(), friday)

		if len(slots) != 18 {
			t.Fatalf("got %d slots, want 18", len(slots))
		}
		if slots[0].Time != "09:00" {
			t.Errorf("first slot %q, want 09:00", slots[0].Time)
		}
		if slots[len(slots)-1].Time != "17:30" {
			t.Errorf("last slot %q, want 17:30", slots[len(slots)-1].Time)
		}
	})

	t.Run("weekend hours", func(t *testing.T) {
		slots := GenerateSlots(testSettings(), saturday)

		if len(slots) != 12 {
			t.Fatalf("got %d slots, want 12", len(slots))
		}
		if slots[0].Time != "10:00" {
			t.Errorf("first slot %q, want 10:00", slots[0].Time)
		}
		if slots[len(slots)-1].Time != "15:30" {
			t.Errorf("last slot %q, want 15:30", slots[len(slots)-1].Time)
		}
	})

	t.Run("minute overflow carries into hour", func(t *testing.T) {
		s := testSettings()
		s.WeekdayStart = "09:45"
		s.SlotDuration = 30

		slots := GenerateSlots(s, friday)
		if slots[0].Time != "09:45" {
			t.Errorf("first slot %q, want 09:45", slots[0].Time)
		}
		if slots[1].Time != "10:15" {
			t.Errorf("second slot %q, want 10:15", slots[1].Time)
		}
		if slots[1].Hour != 10 || slots[1].Minute != 15 {
			t.Errorf("second slot fields %d:%d, want 10:15", slots[1].Hour, slots[1].Minute)
		}
	})

	t.Run("end boundary excluded", func(t *testing.T) {
		slots := GenerateSlots(testSettings(), friday)
		for _, slot := range slots {
			if slot.Time == "18:00" {
				t.Error("slot at end boundary should not exist")
			}
		}
	})

	t.Run("hourly slots", func(t *testing.T) {
		s := testSettings()
		s.SlotDuration = 60
		slots := GenerateSlots(s, friday)
		if len(slots) != 9 {
			t.Fatalf("got %d slots, want 9", len(slots))
		}
	})

	t.Run("nil settings yields no slots", func(t *testing.T) {
		if slots := GenerateSlots(nil, friday); slots != nil {
			t.Errorf("got %v, want nil", slots)
		}
	})
}

func TestSlotAt(t *testing.T) {
	s := testSettings()

	t.Run("floors to raster", func(t *testing.T) {
		slot, err := SlotAt(s, friday, "14:23")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Time != "14:00" {
			t.Errorf("got %q, want 14:00", slot.Time)
		}
	})

	t.Run("exact boundary maps to itself", func(t *testing.T) {
		slot, err := SlotAt(s, friday, "14:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Time != "14:30" {
			t.Errorf("got %q, want 14:30", slot.Time)
		}
	})

	t.Run("before opening hours", func(t *testing.T) {
		_, err := SlotAt(s, friday, "08:15")
		if !errors.Is(err, ErrOutsideDisplayHours) {
			t.Errorf("got error %v, want ErrOutsideDisplayHours", err)
		}
	})

	t.Run("at closing boundary", func(t *testing.T) {
		_, err := SlotAt(s, friday, "18:00")
		if !errors.Is(err, ErrOutsideDisplayHours) {
			t.Errorf("got error %v, want ErrOutsideDisplayHours", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := SlotAt(s, friday, "2pm")
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("got error %v, want ErrInvalidTimeFormat", err)
		}
	})
}

func TestSlotStart(t *testing.T) {
	slot := TimeSlot{Time: "14:30", Hour: 14, Minute: 30}
	got := SlotStart(friday, slot)
	want := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeConversions(t *testing.T) {
	tests := []struct {
		hhmm string
		mins int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"18:00", 1080},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		if got := TimeToMinutes(tt.hhmm); got != tt.mins {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.hhmm, got, tt.mins)
		}
		if got := MinutesToTime(tt.mins); got != tt.hhmm {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.mins, got, tt.hhmm)
		}
	}
}
