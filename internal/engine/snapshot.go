package engine

import (
	"github.com/blackwell-systems/waitwatch/internal/store"
)

// Thresholds shared across metrics, in seconds.
const (
	ultraShortSeconds  = 10
	shortPauseSeconds  = 60
	reclaimableSeconds = 5 * 60
	chainGapSeconds    = 5 * 60
	marathonSeconds    = 60 * 60
)

// defaultRangeDays is the analytics window when no range is supplied.
const defaultRangeDays = 30

// Engine computes analytics snapshots. It holds no mutable state; the only
// dependency is the injected calendar.
type Engine struct {
	cal Calendar
}

// New returns an engine using the given calendar.
func New(cal Calendar) Engine {
	return Engine{cal: cal}
}

// Snapshot computes all metrics over the supplied events and categories.
// When r is nil the range defaults to the trailing 30 days. Events whose end
// date falls outside the range are excluded from every metric except the
// comparative result, which always scans the full history. Empty input
// yields a zeroed snapshot, never an error.
func (e Engine) Snapshot(events []store.WaitEvent, categories []store.WaitCategory, r *DateRange) AnalyticsSnapshot {
	now := e.cal.Now()
	rng := DateRange{Start: now.AddDate(0, 0, -defaultRangeDays), End: now}
	if r != nil {
		rng = *r
	}

	filtered := make([]store.WaitEvent, 0, len(events))
	for _, ev := range events {
		if rng.Contains(ev.EndDate) {
			filtered = append(filtered, ev)
		}
	}

	names := categoryNames(categories)

	return AnalyticsSnapshot{
		LifeLeakage:        e.lifeLeakage(filtered, now),
		ExpensiveWaits:     expensiveWaits(filtered, names),
		PeakHours:          peakHourMapping(filtered),
		FragmentationIndex: e.fragmentationIndex(filtered, now),
		DriftIndex:         driftIndex(filtered, now),
		ReclaimableSeconds: opportunityWindow(filtered),
		PeakDelayHour:      peakDelayHour(filtered),
		RecurringClusters:  recurringClusters(filtered, names),
		Comparative:        e.comparative(events, names, now),
		EdgeCases:          edgeCases(filtered),
	}
}

// categoryNames builds the id-to-display-name lookup. Unknown category ids
// fall back to the raw id at the point of use.
func categoryNames(categories []store.WaitCategory) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

// resolveName maps a category id to its display name, or the id itself when
// the category no longer exists.
func resolveName(names map[string]string, categoryID string) string {
	if name, ok := names[categoryID]; ok {
		return name
	}
	return categoryID
}

// totalDuration sums clamped durations over a slice of events.
func totalDuration(events []store.WaitEvent) float64 {
	var total float64
	for _, ev := range events {
		total += ev.DurationSeconds()
	}
	return total
}
