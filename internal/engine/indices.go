package engine

import (
	"time"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

// fragmentationIndex scores how chopped-up today has been by waiting.
// Only events ending since local midnight count. Short pauses (<60s) weigh
// half an interruption on top of the base count; the result is scaled by
// 2.5 and capped at 100.
func (e Engine) fragmentationIndex(events []store.WaitEvent, now time.Time) float64 {
	startOfDay := e.cal.StartOfDay(now)

	count := 0
	shortPauses := 0
	for _, ev := range events {
		if ev.EndDate.Before(startOfDay) {
			continue
		}
		count++
		if ev.DurationSeconds() < shortPauseSeconds {
			shortPauses++
		}
	}
	if count == 0 {
		return 0
	}

	compounded := float64(count) + float64(shortPauses)*0.5
	index := compounded * 2.5
	if index > 100 {
		return 100
	}
	return index
}

// driftIndex is the share of the trailing 7 days spent waiting, as a
// percentage capped at 100.
func driftIndex(events []store.WaitEvent, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -7)

	var total float64
	for _, ev := range events {
		if !ev.EndDate.Before(cutoff) {
			total += ev.DurationSeconds()
		}
	}

	const weekSeconds = 7 * 24 * 3600
	percent := total / weekSeconds * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// opportunityWindow sums durations of waits long enough (>= 5 minutes) to
// have been reclaimable for something useful.
func opportunityWindow(events []store.WaitEvent) float64 {
	var total float64
	for _, ev := range events {
		if d := ev.DurationSeconds(); d >= reclaimableSeconds {
			total += d
		}
	}
	return total
}
