package engine

import (
	"sort"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

// edgeCases tallies ultra-short waits (<10s), marathons (>1h), and chains of
// back-to-back waits. A chain is a maximal run of two or more consecutive
// events (ordered by end date) where each event starts within 5 minutes of
// the previous one ending. Runs are found by a greedy left-to-right
// partition, never overlap, and count once each regardless of length.
func edgeCases(events []store.WaitEvent) EdgeCaseCounts {
	var counts EdgeCaseCounts
	for _, ev := range events {
		d := ev.DurationSeconds()
		if d < ultraShortSeconds {
			counts.UltraShortCount++
		}
		if d > marathonSeconds {
			counts.MarathonCount++
		}
	}

	sorted := make([]store.WaitEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EndDate.Before(sorted[j].EndDate)
	})

	i := 0
	for i < len(sorted) {
		run := 1
		for i+run < len(sorted) {
			gap := sorted[i+run].StartDate.Sub(sorted[i+run-1].EndDate).Seconds()
			if gap < 0 || gap > chainGapSeconds {
				break
			}
			run++
		}
		if run >= 2 {
			counts.ChainCount++
		}
		i += run
	}

	return counts
}
