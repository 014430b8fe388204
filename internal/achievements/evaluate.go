package achievements

import (
	"github.com/blackwell-systems/waitwatch/internal/engine"
	"github.com/blackwell-systems/waitwatch/internal/store"
)

// Evaluator computes achievement progress from the full event history. Like
// the analytics engine it is stateless; the calendar fixes "now" and the
// week-start convention for the time-based rules.
type Evaluator struct {
	cal engine.Calendar
}

// NewEvaluator returns an evaluator using the given calendar.
func NewEvaluator(cal engine.Calendar) Evaluator {
	return Evaluator{cal: cal}
}

// Evaluate returns one progress entry per catalogue definition, in catalogue
// order. Every rule is total over its input: an empty history yields ten
// locked entries.
func (ev Evaluator) Evaluate(events []store.WaitEvent) []Progress {
	results := make([]Progress, 0, len(Catalogue))
	for _, def := range Catalogue {
		results = append(results, ev.progress(def, events))
	}
	return results
}

func (ev Evaluator) progress(def Definition, events []store.WaitEvent) Progress {
	switch def.ID {
	case FirstStep:
		n := len(events)
		return Progress{ID: def.ID, Current: n, Target: def.Target, Unlocked: n >= 1}

	case GettingStarted, Centurion:
		n := len(events)
		return Progress{ID: def.ID, Current: clamp(n, def.Target), Target: def.Target, Unlocked: n >= def.Target}

	case Marathon:
		return boolProgress(def, anyEvent(events, func(e store.WaitEvent) bool {
			return e.DurationSeconds() >= 60*60
		}))

	case Speedster:
		return boolProgress(def, anyEvent(events, func(e store.WaitEvent) bool {
			d := e.DurationSeconds()
			return d > 0 && d < 10
		}))

	case WeekWarrior:
		days := make(map[string]struct{})
		for _, e := range events {
			days[ev.cal.StartOfDay(e.EndDate).Format("2006-01-02")] = struct{}{}
		}
		n := len(days)
		return Progress{ID: def.ID, Current: clamp(n, def.Target), Target: def.Target, Unlocked: n >= def.Target}

	case AllRounder:
		used := make(map[string]struct{})
		for _, e := range events {
			used[e.CategoryID] = struct{}{}
		}
		n := 0
		for _, kind := range store.SystemKinds {
			if _, ok := used[string(kind)]; ok {
				n++
			}
		}
		return Progress{ID: def.ID, Current: n, Target: def.Target, Unlocked: n >= def.Target}

	case TimeSaver:
		thisWeek, lastWeek := ev.weekTotals(events)
		return boolProgress(def, lastWeek > 0 && thisWeek < lastWeek)

	case NightOwl:
		return boolProgress(def, anyEvent(events, func(e store.WaitEvent) bool {
			h := e.EndDate.Hour()
			return h >= 22 || h < 6
		}))

	case EarlyBird:
		return boolProgress(def, anyEvent(events, func(e store.WaitEvent) bool {
			h := e.EndDate.Hour()
			return h >= 5 && h < 8
		}))
	}

	// Unreachable with the fixed catalogue.
	return Progress{ID: def.ID, Target: def.Target}
}

// weekTotals sums durations for the current and previous calendar week,
// split at the configured week start.
func (ev Evaluator) weekTotals(events []store.WaitEvent) (thisWeek, lastWeek float64) {
	now := ev.cal.Now()
	thisWeekStart := ev.cal.StartOfWeek(now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)

	for _, e := range events {
		switch {
		case !e.EndDate.Before(thisWeekStart):
			thisWeek += e.DurationSeconds()
		case !e.EndDate.Before(lastWeekStart):
			lastWeek += e.DurationSeconds()
		}
	}
	return thisWeek, lastWeek
}

func boolProgress(def Definition, met bool) Progress {
	current := 0
	if met {
		current = 1
	}
	return Progress{ID: def.ID, Current: current, Target: def.Target, Unlocked: met}
}

func anyEvent(events []store.WaitEvent, pred func(store.WaitEvent) bool) bool {
	for _, e := range events {
		if pred(e) {
			return true
		}
	}
	return false
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}
