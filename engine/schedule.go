package engine

// =============================================================================
// SCHEDULE CALCULATOR - Expected work days in a date range
// =============================================================================

// WorkingDaysInRange counts the calendar days in [start, end] inclusive
// whose weekday is in the worker's schedule. An empty set counts every
// day. Pure function, no state.
//
// start after end is a caller bug and returns InvalidRangeError.
func WorkingDaysInRange(days WeekdaySet, start, end Date) (int, error) {
	if start.After(end) {
		return 0, &InvalidRangeError{Start: start, End: end}
	}
	count := 0
	for cur := start; cur.BeforeOrEqual(end); cur = cur.AddDays(1) {
		if days.Contains(cur.Weekday()) {
			count++
		}
	}
	return count, nil
}
