package engine

import (
	"math"
	"testing"
	"time"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLifeLeakage_Empty(t *testing.T) {
	got := testEngine().lifeLeakage(nil, testNow)
	if got != (LifeLeakage{}) {
		t.Errorf("expected zeroed result, got %+v", got)
	}
}

func TestLifeLeakage_PercentOfDay(t *testing.T) {
	// 15h elapsed since midnight = 54000s. A 5400s wait ending today is 10%.
	events := []store.WaitEvent{
		wait(testNow.Add(-time.Hour), 5400*time.Second, "digital"),
	}

	got := testEngine().lifeLeakage(events, testNow)

	if !almostEqual(got.PercentOfDay, 10) {
		t.Errorf("PercentOfDay = %f, want 10", got.PercentOfDay)
	}
	if !almostEqual(got.TotalSeconds, 5400) {
		t.Errorf("TotalSeconds = %f, want 5400", got.TotalSeconds)
	}
}

func TestLifeLeakage_YesterdayExcludedFromDay(t *testing.T) {
	events := []store.WaitEvent{
		wait(testNow.Add(-24*time.Hour), time.Hour, "digital"), // yesterday 15:00
	}

	got := testEngine().lifeLeakage(events, testNow)

	if got.PercentOfDay != 0 {
		t.Errorf("PercentOfDay = %f, want 0 (event ended yesterday)", got.PercentOfDay)
	}
	// Still counted in the overall and week totals.
	if !almostEqual(got.TotalSeconds, 3600) {
		t.Errorf("TotalSeconds = %f, want 3600", got.TotalSeconds)
	}
}

func TestLifeLeakage_PercentOfWeek(t *testing.T) {
	// Week started Monday 2026-03-09 00:00; now is Wednesday 15:00, so
	// 63h = 226800s have elapsed. A 22680s wait is 10%.
	events := []store.WaitEvent{
		wait(testNow.Add(-30*time.Hour), 22680*time.Second, "social"), // Tuesday 09:00
	}

	got := testEngine().lifeLeakage(events, testNow)

	if !almostEqual(got.PercentOfWeek, 10) {
		t.Errorf("PercentOfWeek = %f, want 10", got.PercentOfWeek)
	}
}

func TestLifeLeakage_PercentagesNotCapped(t *testing.T) {
	// A long wait ending just after midnight: the day percentage
	// legitimately exceeds 100 and must not be capped.
	now := time.Date(2026, 3, 11, 0, 10, 0, 0, time.UTC)
	e := New(FixedCalendar(now, time.Monday))
	events := []store.WaitEvent{
		wait(now.Add(-5*time.Minute), 2*time.Hour, "physical"),
	}

	got := e.lifeLeakage(events, now)

	if got.PercentOfDay <= 100 {
		t.Errorf("PercentOfDay = %f, expected > 100 (uncapped)", got.PercentOfDay)
	}
}

func TestLifeLeakage_MonthTotal(t *testing.T) {
	events := []store.WaitEvent{
		wait(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), 10*time.Minute, "a"),  // this month
		wait(time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC), 20*time.Minute, "a"), // last month
	}

	got := testEngine().lifeLeakage(events, testNow)

	if !almostEqual(got.MonthSeconds, 600) {
		t.Errorf("MonthSeconds = %f, want 600", got.MonthSeconds)
	}
	if !almostEqual(got.TotalSeconds, 1800) {
		t.Errorf("TotalSeconds = %f, want 1800", got.TotalSeconds)
	}
}
