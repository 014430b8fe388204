// Package store provides SQLite persistence for wait events and categories.
package store

import "time"

// WaitEvent is a single recorded wait interval. Events are immutable facts:
// they are inserted when a hold completes and removed only by explicit user
// deletion.
type WaitEvent struct {
	ID         string    `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// DurationSeconds returns the event's duration, clamped to zero when the
// stored end precedes the start. Every metric derives duration through this
// method so the clamp is applied exactly once.
func (e WaitEvent) DurationSeconds() float64 {
	d := e.EndDate.Sub(e.StartDate).Seconds()
	if d < 0 {
		return 0
	}
	return d
}

// CategoryKind classifies what a wait was for.
type CategoryKind string

// The five system kinds plus the open-ended custom kind.
const (
	KindPhysical    CategoryKind = "physical"
	KindDigital     CategoryKind = "digital"
	KindSocial      CategoryKind = "social"
	KindDecision    CategoryKind = "decision"
	KindPassiveIdle CategoryKind = "passive_idle"
	KindCustom      CategoryKind = "custom"
)

// SystemKinds lists the seeded kinds in their fixed sort order.
var SystemKinds = []CategoryKind{
	KindPhysical,
	KindDigital,
	KindSocial,
	KindDecision,
	KindPassiveIdle,
}

// LocalizationKey returns the display-name key for a system kind.
func (k CategoryKind) LocalizationKey() string {
	return "category_" + string(k)
}

// WaitCategory is a user-visible grouping for wait events. System categories
// have their kind's raw value as their id and a localization key as their
// name; custom categories carry a literal user-entered name.
type WaitCategory struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      CategoryKind `json:"kind"`
	SortOrder int          `json:"sort_order"`
	CreatedAt time.Time    `json:"created_at"`
}

// SystemCategories returns the five seed categories with deterministic ids
// and sort orders 0..4.
func SystemCategories(now time.Time) []WaitCategory {
	cats := make([]WaitCategory, 0, len(SystemKinds))
	for i, kind := range SystemKinds {
		cats = append(cats, WaitCategory{
			ID:        string(kind),
			Name:      kind.LocalizationKey(),
			Kind:      kind,
			SortOrder: i,
			CreatedAt: now,
		})
	}
	return cats
}
