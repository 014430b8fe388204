package engine

import (
	"time"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

// lifeLeakage computes total waiting time and its share of the elapsed day
// and week, plus the month-to-date total. The percentages relate waiting to
// time actually elapsed since midnight / week start, so they are not capped:
// a wait recorded just after midnight can legitimately exceed 100%.
func (e Engine) lifeLeakage(events []store.WaitEvent, now time.Time) LifeLeakage {
	total := totalDuration(events)

	startOfDay := e.cal.StartOfDay(now)
	daySeconds := now.Sub(startOfDay).Seconds()
	var dayTotal float64
	for _, ev := range events {
		if !ev.EndDate.Before(startOfDay) {
			dayTotal += ev.DurationSeconds()
		}
	}
	var percentOfDay float64
	if daySeconds > 0 {
		percentOfDay = dayTotal / daySeconds * 100
	}

	startOfWeek := e.cal.StartOfWeek(now)
	weekSeconds := now.Sub(startOfWeek).Seconds()
	var weekTotal float64
	for _, ev := range events {
		if !ev.EndDate.Before(startOfWeek) {
			weekTotal += ev.DurationSeconds()
		}
	}
	var percentOfWeek float64
	if weekSeconds > 0 {
		percentOfWeek = weekTotal / weekSeconds * 100
	}

	startOfMonth := e.cal.StartOfMonth(now)
	var monthTotal float64
	for _, ev := range events {
		if !ev.EndDate.Before(startOfMonth) {
			monthTotal += ev.DurationSeconds()
		}
	}

	return LifeLeakage{
		TotalSeconds:  total,
		PercentOfDay:  percentOfDay,
		PercentOfWeek: percentOfWeek,
		MonthSeconds:  monthTotal,
	}
}
