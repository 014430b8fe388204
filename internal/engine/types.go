// Package engine computes analytics snapshots over recorded wait events.
package engine

import "time"

// AnalyticsSnapshot is the top-level result of analyzing an event set.
// It is a plain immutable value: the engine never retains state between
// calls, and identical inputs produce identical snapshots.
type AnalyticsSnapshot struct {
	LifeLeakage        LifeLeakage        `json:"life_leakage"`
	ExpensiveWaits     []ExpensiveWait    `json:"expensive_waits"`
	PeakHours          []PeakHourSlot     `json:"peak_hours"`
	FragmentationIndex float64            `json:"fragmentation_index"`
	DriftIndex         float64            `json:"drift_index"`
	ReclaimableSeconds float64            `json:"reclaimable_seconds"`
	PeakDelayHour      *int               `json:"peak_delay_hour,omitempty"`
	RecurringClusters  []RecurringCluster `json:"recurring_clusters"`
	Comparative        Comparative        `json:"comparative"`
	EdgeCases          EdgeCaseCounts     `json:"edge_cases"`
}

// LifeLeakage captures how much time was lost to waiting across windows.
type LifeLeakage struct {
	// TotalSeconds is the summed duration of all events in the range.
	TotalSeconds float64 `json:"total_seconds"`

	// PercentOfDay is today's waiting as a share of seconds elapsed since
	// local midnight. Not capped.
	PercentOfDay float64 `json:"percent_of_day"`

	// PercentOfWeek is this week's waiting as a share of seconds elapsed
	// since the week start. Not capped.
	PercentOfWeek float64 `json:"percent_of_week"`

	// MonthSeconds is the summed duration of events ending on or after the
	// first of the current calendar month.
	MonthSeconds float64 `json:"month_seconds"`
}

// ExpensiveWait ranks a category by how costly its waits are.
type ExpensiveWait struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	TotalSeconds float64 `json:"total_seconds"`
	Frequency    int     `json:"frequency"`

	// WaitCost is total duration multiplied by frequency: long waits that
	// also happen often rank highest.
	WaitCost float64 `json:"wait_cost"`
}

// DayPeriod is one of the four fixed time-of-day buckets.
type DayPeriod string

// Day period buckets. Morning is [5,12), day [12,17), evening [17,21),
// night the rest.
const (
	PeriodMorning DayPeriod = "morning"
	PeriodDay     DayPeriod = "day"
	PeriodEvening DayPeriod = "evening"
	PeriodNight   DayPeriod = "night"
)

// DayPeriods lists the buckets in presentation order.
var DayPeriods = []DayPeriod{PeriodMorning, PeriodDay, PeriodEvening, PeriodNight}

// PeakHourSlot is the per-period aggregation of events by end hour.
type PeakHourSlot struct {
	Period       DayPeriod `json:"period"`
	TotalSeconds float64   `json:"total_seconds"`
	EventCount   int       `json:"event_count"`
}

// RecurringCluster describes a category with repeated waits.
type RecurringCluster struct {
	CategoryID     string    `json:"category_id"`
	CategoryName   string    `json:"category_name"`
	AvgSeconds     float64   `json:"avg_seconds"`
	Frequency      int       `json:"frequency"`
	LastOccurrence time.Time `json:"last_occurrence"`
}

// CategoryGrowth is the week-over-week growth of a single category.
type CategoryGrowth struct {
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	GrowthPercent float64 `json:"growth_percent"`
}

// Comparative holds week-over-week and category-vs-category comparisons.
// Unlike every other sub-result it is computed over the full unfiltered
// event history. Optional fields are nil when there is not enough data.
type Comparative struct {
	WeekOverWeekGrowth       *float64         `json:"week_over_week_growth,omitempty"`
	MostImprovedCategoryID   *string          `json:"most_improved_category_id,omitempty"`
	MostImprovedCategoryName *string          `json:"most_improved_category_name,omitempty"`
	MorningEveningRatio      *float64         `json:"morning_evening_ratio,omitempty"`
	CategoryGrowth           []CategoryGrowth `json:"category_growth"`
}

// EdgeCaseCounts tallies unusual wait shapes.
type EdgeCaseCounts struct {
	// UltraShortCount is the number of events shorter than 10 seconds.
	UltraShortCount int `json:"ultra_short_count"`

	// MarathonCount is the number of events longer than an hour.
	MarathonCount int `json:"marathon_count"`

	// ChainCount is the number of maximal runs of back-to-back waits
	// (gap between events within 5 minutes). Each run counts once.
	ChainCount int `json:"chain_count"`
}

// DateRange is a closed interval; events are selected by end date.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, endpoints included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
