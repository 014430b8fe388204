package engine

import (
	"sort"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

// recurringClusters finds categories the user keeps waiting on: any category
// with at least two events in the range. Sorted by frequency descending,
// category id for ties.
func recurringClusters(events []store.WaitEvent, names map[string]string) []RecurringCluster {
	byCategory := groupByCategory(events)

	var clusters []RecurringCluster
	for categoryID, evs := range byCategory {
		if len(evs) < 2 {
			continue
		}
		total := totalDuration(evs)
		last := evs[0].EndDate
		for _, ev := range evs[1:] {
			if ev.EndDate.After(last) {
				last = ev.EndDate
			}
		}
		clusters = append(clusters, RecurringCluster{
			CategoryID:     categoryID,
			CategoryName:   resolveName(names, categoryID),
			AvgSeconds:     total / float64(len(evs)),
			Frequency:      len(evs),
			LastOccurrence: last,
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Frequency != clusters[j].Frequency {
			return clusters[i].Frequency > clusters[j].Frequency
		}
		return clusters[i].CategoryID < clusters[j].CategoryID
	})

	return clusters
}
