package engine

import "time"

// Calendar supplies the engine's notion of "now" and locale conventions
// (week start day). Injecting it keeps snapshot computation deterministic
// under test: fix NowFunc and WeekStart and the output is a pure function
// of the event set.
type Calendar struct {
	// NowFunc returns the current time. Defaults to time.Now.
	NowFunc func() time.Time

	// WeekStart is the first day of the week. Defaults to Monday.
	WeekStart time.Weekday
}

// DefaultCalendar returns a wall-clock calendar with Monday week starts.
func DefaultCalendar() Calendar {
	return Calendar{NowFunc: time.Now, WeekStart: time.Monday}
}

// FixedCalendar returns a calendar pinned to the given instant, useful in
// tests and for reproducing a snapshot.
func FixedCalendar(now time.Time, weekStart time.Weekday) Calendar {
	return Calendar{
		NowFunc:   func() time.Time { return now },
		WeekStart: weekStart,
	}
}

// Now returns the calendar's current time.
func (c Calendar) Now() time.Time {
	if c.NowFunc == nil {
		return time.Now()
	}
	return c.NowFunc()
}

// StartOfDay returns local midnight of the day containing t.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the WeekStart day on or before t.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	back := (int(day.Weekday()) - int(c.WeekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// StartOfMonth returns local midnight on the first of the month containing t.
func (c Calendar) StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
