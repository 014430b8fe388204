package achievements

import (
	"testing"
	"time"

	"github.com/blackwell-systems/waitwatch/internal/engine"
	"github.com/blackwell-systems/waitwatch/internal/store"
)

// testNow is a Wednesday; the Monday week start is 2026-03-09.
var testNow = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

func testEvaluator() Evaluator {
	return NewEvaluator(engine.FixedCalendar(testNow, time.Monday))
}

func wait(end time.Time, duration time.Duration, categoryID string) store.WaitEvent {
	return store.WaitEvent{
		ID:         categoryID + end.Format(time.RFC3339),
		StartDate:  end.Add(-duration),
		EndDate:    end,
		CategoryID: categoryID,
	}
}

func find(t *testing.T, progress []Progress, id ID) Progress {
	t.Helper()
	for _, p := range progress {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("no progress entry for %s", id)
	return Progress{}
}

func TestEvaluate_AlwaysFullCatalogue(t *testing.T) {
	progress := testEvaluator().Evaluate(nil)

	if len(progress) != len(Catalogue) {
		t.Fatalf("expected %d entries, got %d", len(Catalogue), len(progress))
	}
	for i, p := range progress {
		if p.ID != Catalogue[i].ID {
			t.Errorf("entry %d = %s, want %s (catalogue order)", i, p.ID, Catalogue[i].ID)
		}
		if p.Unlocked {
			t.Errorf("%s should be locked with no events", p.ID)
		}
		if p.UnlockedAt != nil {
			t.Errorf("%s UnlockedAt should always be nil", p.ID)
		}
	}
}

func TestEvaluate_CountAchievements(t *testing.T) {
	var events []store.WaitEvent
	for i := 0; i < 12; i++ {
		events = append(events, wait(testNow.Add(-time.Duration(i)*time.Hour), time.Minute, "digital"))
	}

	progress := testEvaluator().Evaluate(events)

	first := find(t, progress, FirstStep)
	if !first.Unlocked || first.Current != 12 {
		t.Errorf("firstStep = %+v, want unlocked with current 12", first)
	}

	started := find(t, progress, GettingStarted)
	if !started.Unlocked || started.Current != 10 {
		t.Errorf("gettingStarted = %+v, want unlocked with current clamped to 10", started)
	}

	cent := find(t, progress, Centurion)
	if cent.Unlocked || cent.Current != 12 {
		t.Errorf("centurion = %+v, want locked with current 12", cent)
	}
}

func TestEvaluate_SpecScenario(t *testing.T) {
	// Ten events covering all five system categories twice, one marathon.
	var events []store.WaitEvent
	for i, kind := range store.SystemKinds {
		d := 5 * time.Minute
		if i == 0 {
			d = 3700 * time.Second
		}
		events = append(events,
			wait(testNow.Add(-time.Duration(i)*time.Hour), d, string(kind)),
			wait(testNow.Add(-time.Duration(i+10)*time.Hour), 5*time.Minute, string(kind)),
		)
	}

	progress := testEvaluator().Evaluate(events)

	cent := find(t, progress, Centurion)
	if cent.Unlocked || cent.Current != 10 || cent.Target != 100 {
		t.Errorf("centurion = %+v, want locked 10/100", cent)
	}
	if !find(t, progress, AllRounder).Unlocked {
		t.Error("allRounder should be unlocked with all system categories used")
	}
	if !find(t, progress, Marathon).Unlocked {
		t.Error("marathon should be unlocked with a 3700s event")
	}
}

func TestEvaluate_Speedster(t *testing.T) {
	// Zero-duration events do not count; only 0 < duration < 10s.
	zero := testEvaluator().Evaluate([]store.WaitEvent{
		wait(testNow, 0, "a"),
	})
	if find(t, zero, Speedster).Unlocked {
		t.Error("speedster should ignore zero-duration events")
	}

	short := testEvaluator().Evaluate([]store.WaitEvent{
		wait(testNow, 5*time.Second, "a"),
	})
	if !find(t, short, Speedster).Unlocked {
		t.Error("speedster should unlock on a 5s event")
	}
}

func TestEvaluate_WeekWarrior(t *testing.T) {
	var events []store.WaitEvent
	for day := 0; day < 9; day++ {
		events = append(events, wait(testNow.Add(-time.Duration(day)*24*time.Hour), time.Minute, "a"))
	}

	p := find(t, testEvaluator().Evaluate(events), WeekWarrior)

	if !p.Unlocked {
		t.Error("weekWarrior should unlock with 9 distinct days")
	}
	if p.Current != 7 {
		t.Errorf("current = %d, want clamped to target 7", p.Current)
	}
}

func TestEvaluate_TimeSaver(t *testing.T) {
	lastWeek := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	thisWeek := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// Waited less this week: unlocked.
	saved := testEvaluator().Evaluate([]store.WaitEvent{
		wait(lastWeek, 10*time.Minute, "a"),
		wait(thisWeek, 5*time.Minute, "a"),
	})
	if !find(t, saved, TimeSaver).Unlocked {
		t.Error("timeSaver should unlock when this week is below last week")
	}

	// No last-week baseline: locked even with zero waiting this week.
	noBase := testEvaluator().Evaluate([]store.WaitEvent{
		wait(thisWeek, 5*time.Minute, "a"),
	})
	if find(t, noBase, TimeSaver).Unlocked {
		t.Error("timeSaver needs a non-zero last week")
	}
}

func TestEvaluate_NightOwlAndEarlyBird(t *testing.T) {
	night := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	early := time.Date(2026, 3, 10, 6, 30, 0, 0, time.UTC)
	noon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	progress := testEvaluator().Evaluate([]store.WaitEvent{
		wait(night, time.Minute, "a"),
	})
	if !find(t, progress, NightOwl).Unlocked {
		t.Error("nightOwl should unlock for a 23:00 event")
	}
	if find(t, progress, EarlyBird).Unlocked {
		t.Error("earlyBird should stay locked")
	}

	progress = testEvaluator().Evaluate([]store.WaitEvent{
		wait(early, time.Minute, "a"),
	})
	if !find(t, progress, EarlyBird).Unlocked {
		t.Error("earlyBird should unlock for a 06:30 event")
	}
	if find(t, progress, NightOwl).Unlocked {
		t.Error("nightOwl should stay locked at 06:30")
	}

	progress = testEvaluator().Evaluate([]store.WaitEvent{
		wait(noon, time.Minute, "a"),
	})
	if find(t, progress, NightOwl).Unlocked || find(t, progress, EarlyBird).Unlocked {
		t.Error("noon event should unlock neither time-of-day achievement")
	}
}
