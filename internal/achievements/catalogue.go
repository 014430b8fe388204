// Package achievements derives unlock and progress state from the event
// history. The catalogue is a closed, compile-time set: evaluation always
// yields one progress entry per definition, in declaration order.
package achievements

import "time"

// ID identifies an achievement in the fixed catalogue.
type ID string

// Catalogue ids.
const (
	FirstStep      ID = "firstStep"
	GettingStarted ID = "gettingStarted"
	Centurion      ID = "centurion"
	Marathon       ID = "marathon"
	Speedster      ID = "speedster"
	WeekWarrior    ID = "weekWarrior"
	AllRounder     ID = "allRounder"
	TimeSaver      ID = "timeSaver"
	NightOwl       ID = "nightOwl"
	EarlyBird      ID = "earlyBird"
)

// Definition describes one achievement: display metadata plus the value a
// user must reach to unlock it. The evaluation rule itself is bespoke per
// id and lives in the evaluator.
type Definition struct {
	ID             ID     `json:"id"`
	Icon           string `json:"icon"`
	TitleKey       string `json:"title_key"`
	DescriptionKey string `json:"description_key"`
	Target         int    `json:"target"`
}

// Catalogue is the full ordered achievement set. Definitions are not
// persisted; progress is recomputed from events on every evaluation.
var Catalogue = []Definition{
	{ID: FirstStep, Icon: "star", TitleKey: "ach_first_step", DescriptionKey: "firstStep_desc", Target: 1},
	{ID: GettingStarted, Icon: "flame", TitleKey: "ach_getting_started", DescriptionKey: "gettingStarted_desc", Target: 10},
	{ID: Centurion, Icon: "crown", TitleKey: "ach_centurion", DescriptionKey: "centurion_desc", Target: 100},
	{ID: Marathon, Icon: "runner", TitleKey: "ach_marathon", DescriptionKey: "marathon_desc", Target: 1},
	{ID: Speedster, Icon: "bolt", TitleKey: "ach_speedster", DescriptionKey: "speedster_desc", Target: 1},
	{ID: WeekWarrior, Icon: "calendar", TitleKey: "ach_week_warrior", DescriptionKey: "weekWarrior_desc", Target: 7},
	{ID: AllRounder, Icon: "grid", TitleKey: "ach_all_rounder", DescriptionKey: "allRounder_desc", Target: 5},
	{ID: TimeSaver, Icon: "arrow-down", TitleKey: "ach_time_saver", DescriptionKey: "timeSaver_desc", Target: 1},
	{ID: NightOwl, Icon: "moon", TitleKey: "ach_night_owl", DescriptionKey: "nightOwl_desc", Target: 1},
	{ID: EarlyBird, Icon: "sunrise", TitleKey: "ach_early_bird", DescriptionKey: "earlyBird_desc", Target: 1},
}

// Progress is the evaluated state of a single achievement.
type Progress struct {
	ID       ID   `json:"id"`
	Current  int  `json:"current"`
	Target   int  `json:"target"`
	Unlocked bool `json:"is_unlocked"`

	// UnlockedAt is always nil: unlock timestamps are not persisted, state
	// is derived fresh from events each time.
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
