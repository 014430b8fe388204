package engine

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

// comparative computes week-over-week and per-category growth. It scans the
// full unfiltered event history: comparing arbitrary weeks needs events the
// date-ranged subset may have dropped.
func (e Engine) comparative(events []store.WaitEvent, names map[string]string, now time.Time) Comparative {
	thisWeekStart := e.cal.StartOfWeek(now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)

	var thisWeekEvents, lastWeekEvents []store.WaitEvent
	for _, ev := range events {
		switch {
		case !ev.EndDate.Before(thisWeekStart):
			thisWeekEvents = append(thisWeekEvents, ev)
		case !ev.EndDate.Before(lastWeekStart):
			lastWeekEvents = append(lastWeekEvents, ev)
		}
	}

	thisWeek := totalDuration(thisWeekEvents)
	lastWeek := totalDuration(lastWeekEvents)

	var growth *float64
	if lastWeek > 0 {
		g := (thisWeek - lastWeek) / lastWeek * 100
		growth = &g
	}

	// Morning vs evening split over the whole history, by end hour.
	var morning, evening float64
	for _, ev := range events {
		h := ev.EndDate.Hour()
		switch {
		case h >= 5 && h < 12:
			morning += ev.DurationSeconds()
		case h >= 17 && h < 21:
			evening += ev.DurationSeconds()
		}
	}
	var ratio *float64
	if evening > 0 {
		r := morning / evening
		ratio = &r
	}

	// Per-category growth over the union of categories seen in either week.
	thisByCat := categoryTotals(thisWeekEvents)
	lastByCat := categoryTotals(lastWeekEvents)

	ids := make(map[string]struct{}, len(thisByCat)+len(lastByCat))
	for id := range thisByCat {
		ids[id] = struct{}{}
	}
	for id := range lastByCat {
		ids[id] = struct{}{}
	}

	var categoryGrowth []CategoryGrowth
	var bestID string
	var bestReduction float64
	for id := range ids {
		thisCat := thisByCat[id]
		lastCat := lastByCat[id]

		var growthPct float64
		switch {
		case lastCat > 0:
			growthPct = (thisCat - lastCat) / lastCat * 100
		case thisCat > 0:
			growthPct = 100
		}
		categoryGrowth = append(categoryGrowth, CategoryGrowth{
			CategoryID:    id,
			CategoryName:  resolveName(names, id),
			GrowthPercent: growthPct,
		})

		// Most improved: the largest positive week-over-week reduction.
		// Equal reductions resolve to the lower category id.
		if reduction := lastCat - thisCat; reduction > 0 {
			if bestID == "" || reduction > bestReduction || (reduction == bestReduction && id < bestID) {
				bestID = id
				bestReduction = reduction
			}
		}
	}

	sort.Slice(categoryGrowth, func(i, j int) bool {
		gi, gj := math.Abs(categoryGrowth[i].GrowthPercent), math.Abs(categoryGrowth[j].GrowthPercent)
		if gi != gj {
			return gi > gj
		}
		return categoryGrowth[i].CategoryID < categoryGrowth[j].CategoryID
	})

	var mostImprovedID, mostImprovedName *string
	if bestID != "" {
		id := bestID
		name := resolveName(names, bestID)
		mostImprovedID = &id
		mostImprovedName = &name
	}

	return Comparative{
		WeekOverWeekGrowth:       growth,
		MostImprovedCategoryID:   mostImprovedID,
		MostImprovedCategoryName: mostImprovedName,
		MorningEveningRatio:      ratio,
		CategoryGrowth:           categoryGrowth,
	}
}

// categoryTotals sums clamped durations per category id.
func categoryTotals(events []store.WaitEvent) map[string]float64 {
	totals := make(map[string]float64)
	for _, ev := range events {
		totals[ev.CategoryID] += ev.DurationSeconds()
	}
	return totals
}
