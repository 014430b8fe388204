package engine

import (
	"sort"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

// expensiveWaits ranks categories by wait cost (total duration x frequency).
// Ties are broken by category id so the output is deterministic regardless
// of map iteration order.
func expensiveWaits(events []store.WaitEvent, names map[string]string) []ExpensiveWait {
	byCategory := groupByCategory(events)

	items := make([]ExpensiveWait, 0, len(byCategory))
	for categoryID, evs := range byCategory {
		total := totalDuration(evs)
		items = append(items, ExpensiveWait{
			CategoryID:   categoryID,
			CategoryName: resolveName(names, categoryID),
			TotalSeconds: total,
			Frequency:    len(evs),
			WaitCost:     total * float64(len(evs)),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].WaitCost != items[j].WaitCost {
			return items[i].WaitCost > items[j].WaitCost
		}
		return items[i].CategoryID < items[j].CategoryID
	})

	return items
}

// groupByCategory buckets events by their category id.
func groupByCategory(events []store.WaitEvent) map[string][]store.WaitEvent {
	byCategory := make(map[string][]store.WaitEvent)
	for _, ev := range events {
		byCategory[ev.CategoryID] = append(byCategory[ev.CategoryID], ev)
	}
	return byCategory
}
