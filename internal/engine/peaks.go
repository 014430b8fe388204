package engine

import (
	"github.com/blackwell-systems/waitwatch/internal/store"
)

// periodOf maps an hour of day to its fixed period bucket.
func periodOf(hour int) DayPeriod {
	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodDay
	case hour >= 17 && hour < 21:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// peakHourMapping buckets events by the local hour of their end date into
// the four fixed day periods. All four slots are always emitted, empty or
// not, in presentation order.
func peakHourMapping(events []store.WaitEvent) []PeakHourSlot {
	totals := make(map[DayPeriod]float64, len(DayPeriods))
	counts := make(map[DayPeriod]int, len(DayPeriods))
	for _, ev := range events {
		p := periodOf(ev.EndDate.Hour())
		totals[p] += ev.DurationSeconds()
		counts[p]++
	}

	slots := make([]PeakHourSlot, 0, len(DayPeriods))
	for _, p := range DayPeriods {
		slots = append(slots, PeakHourSlot{
			Period:       p,
			TotalSeconds: totals[p],
			EventCount:   counts[p],
		})
	}
	return slots
}

// peakDelayHour returns the hour of day (0-23) with the largest summed
// duration, or nil when there are no events. Ties go to the earlier hour.
func peakDelayHour(events []store.WaitEvent) *int {
	if len(events) == 0 {
		return nil
	}

	var totals [24]float64
	var seen [24]bool
	for _, ev := range events {
		h := ev.EndDate.Hour()
		totals[h] += ev.DurationSeconds()
		seen[h] = true
	}

	// Only hours that actually have events are candidates; ties go to the
	// earliest such hour.
	best := -1
	for h := 0; h < 24; h++ {
		if !seen[h] {
			continue
		}
		if best == -1 || totals[h] > totals[best] {
			best = h
		}
	}
	return &best
}
