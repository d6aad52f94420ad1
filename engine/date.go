package engine

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Naive calendar date (no time component, no zone ambiguity)
// =============================================================================

// Date is a calendar date, normalized to midnight UTC. Entries are keyed
// by Date, and ranges are compared with explicit date comparison rather
// than string ordering so the wire format can change without breaking
// range queries.
type Date struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(o Date) bool        { return d.normalize().Before(o.normalize()) }
func (d Date) After(o Date) bool         { return d.normalize().After(o.normalize()) }
func (d Date) Equal(o Date) bool         { return d.normalize().Equal(o.normalize()) }
func (d Date) BeforeOrEqual(o Date) bool { return !d.After(o) }
func (d Date) AfterOrEqual(o Date) bool  { return !d.Before(o) }
func (d Date) IsZero() bool              { return d.Time.IsZero() }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.normalize().AddDate(0, 0, n)} }

// AddMonths shifts by whole calendar months, clamping to the last day
// of the target month. Without the clamp, May 31 minus one month would
// pass through "April 31" and normalize forward into May again, which
// corrupts month bucketing and rolling-window starts.
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.Year(), d.Month(), 1).Time.AddDate(0, n, 0)
	day := d.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.normalize().Weekday() }

func (d Date) String() string { return d.normalize().Format(dateLayout) }

// DaysBetween returns the signed whole-day distance from a to b.
func DaysBetween(a, b Date) int {
	return int(b.normalize().Sub(a.normalize()).Hours() / 24)
}

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

type Period struct {
	Start Date
	End   Date
}

// Contains reports whether d falls within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns every day in the period, inclusive of both endpoints.
func (p Period) Days() []Date {
	var days []Date
	for cur := p.Start; cur.BeforeOrEqual(p.End); cur = cur.AddDays(1) {
		days = append(days, cur)
	}
	return days
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// MonthOf returns the calendar-month boundaries containing d.
func MonthOf(d Date) Period {
	first := NewDate(d.Year(), d.Month(), 1)
	return Period{Start: first, End: first.AddMonths(1).AddDays(-1)}
}

// TrailingMonths returns one period per calendar month for the trailing
// n months ending at asOf, oldest first. Analytics buckets trend points
// with these boundaries. Stepping happens from the first of asOf's
// month so every calendar month appears exactly once regardless of
// which day of the month asOf is.
func TrailingMonths(asOf Date, n int) []Period {
	anchor := NewDate(asOf.Year(), asOf.Month(), 1)
	var periods []Period
	for i := n - 1; i >= 0; i-- {
		periods = append(periods, MonthOf(anchor.AddMonths(-i)))
	}
	return periods
}

// =============================================================================
// WEEKDAY SET - A worker's working-day schedule
// =============================================================================

// WeekdaySet holds weekday indices 0-6, Sunday=0. An empty set means the
// worker works every day of the week, which is how records created
// before schedules existed behave.
type WeekdaySet []int

// EveryDay reports whether the set counts all seven days.
func (s WeekdaySet) EveryDay() bool { return len(s) == 0 }

// Contains reports whether the weekday is a working day under this set.
func (s WeekdaySet) Contains(w time.Weekday) bool {
	if s.EveryDay() {
		return true
	}
	for _, d := range s {
		if d == int(w) {
			return true
		}
	}
	return false
}

// Validate rejects out-of-range values and duplicates.
func (s WeekdaySet) Validate() error {
	seen := make(map[int]bool, len(s))
	for _, d := range s {
		if d < 0 || d > 6 {
			return &ConfigurationError{Field: "workingDays", Reason: "weekday index must be in 0..6"}
		}
		if seen[d] {
			return &ConfigurationError{Field: "workingDays", Reason: "duplicate weekday index"}
		}
		seen[d] = true
	}
	return nil
}
