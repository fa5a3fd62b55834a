package calendar

import "time"

// slotWindow returns the half-open [start, end) window of a slot on a date.
func slotWindow(date time.Time, slot TimeSlot, slotDuration int) (start, end time.Time) {
	start = SlotStart(date, slot)
	end = start.Add(time.Duration(slotDuration) * time.Minute)
	return start, end
}

// overlaps reports whether an event occupies a half-open window.
// Touching a boundary exactly does not count, so zero-duration events and
// events ending at the window start are excluded.
func overlaps(e *Event, winStart, winEnd time.Time) bool {
	return e.Start.Before(winEnd) && e.End.After(winStart)
}

// EventsForSlot returns the events occupying a slot, with task-based events
// merged per task: when several fragments of the same task overlap the slot,
// they collapse into one synthetic event spanning min(start)..max(end), all
// other fields taken from the first fragment seen. Merged task groups come
// first, in first-seen order, followed by untouched non-task events.
func EventsForSlot(events []Event, date time.Time, slot TimeSlot, slotDuration int) []Event {
	winStart, winEnd := slotWindow(date, slot, slotDuration)

	var taskOrder []int64
	taskGroups := make(map[int64]Event)
	var others []Event

	for _, e := range events {
		if !overlaps(&e, winStart, winEnd) {
			continue
		}
		if !e.IsTaskBased || e.TaskID == nil {
			others = append(others, e)
			continue
		}
		id := *e.TaskID
		existing, ok := taskGroups[id]
		if !ok {
			taskGroups[id] = e
			taskOrder = append(taskOrder, id)
			continue
		}
		if e.Start.Before(existing.Start) {
			existing.Start = e.Start
		}
		if e.End.After(existing.End) {
			existing.End = e.End
		}
		taskGroups[id] = existing
	}

	result := make([]Event, 0, len(taskOrder)+len(others))
	for _, id := range taskOrder {
		result = append(result, taskGroups[id])
	}
	return append(result, others...)
}

// Display describes how an event relates to one slot.
type Display struct {
	StartsInSlot bool // event begins inside this slot; render it here only
	IsActive     bool // event occupies this slot
}

// DisplayInfo computes the per-slot display flags for an event. Task-based
// events render only in the slot they start in and stretch over the slots
// they span; IsActive uses the same half-open overlap rule as occupancy.
func DisplayInfo(e *Event, date time.Time, slot TimeSlot, slotDuration int) Display {
	winStart, winEnd := slotWindow(date, slot, slotDuration)
	return Display{
		StartsInSlot: !e.Start.Before(winStart) && e.Start.Before(winEnd),
		IsActive:     overlaps(e, winStart, winEnd),
	}
}

// HeightSlots returns the event's visual height in slot units: duration
// rounded to the nearest minute, divided by the slot size rounding up, with
// a floor of one slot even for zero-duration events.
func HeightSlots(e *Event, slotDuration int) int {
	mins := e.DurationMinutes()
	slots := (mins + slotDuration - 1) / slotDuration
	if slots < 1 {
		return 1
	}
	return slots
}
