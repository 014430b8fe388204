package engine

import (
	"testing"
	"time"

	"github.com/blackwell-systems/waitwatch/internal/store"
)

func TestRecurringClusters_RequiresTwoEvents(t *testing.T) {
	events := []store.WaitEvent{
		wait(testNow.Add(-1*time.Hour), time.Minute, "lonely"),
		wait(testNow.Add(-2*time.Hour), time.Minute, "pair"),
		wait(testNow.Add(-3*time.Hour), 3*time.Minute, "pair"),
	}

	got := recurringClusters(events, nil)

	if len(got) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(got))
	}
	if got[0].CategoryID != "pair" {
		t.Errorf("cluster = %s, want pair", got[0].CategoryID)
	}
	if got[0].Frequency != 2 {
		t.Errorf("frequency = %d, want 2", got[0].Frequency)
	}
	if !almostEqual(got[0].AvgSeconds, 120) {
		t.Errorf("avg = %f, want 120", got[0].AvgSeconds)
	}
	if !got[0].LastOccurrence.Equal(testNow.Add(-2 * time.Hour)) {
		t.Errorf("last occurrence = %v, want %v", got[0].LastOccurrence, testNow.Add(-2*time.Hour))
	}
}

func TestRecurringClusters_SortedByFrequency(t *testing.T) {
	events := []store.WaitEvent{
		wait(testNow.Add(-1*time.Hour), time.Minute, "rare"),
		wait(testNow.Add(-2*time.Hour), time.Minute, "rare"),
		wait(testNow.Add(-3*time.Hour), time.Minute, "often"),
		wait(testNow.Add(-4*time.Hour), time.Minute, "often"),
		wait(testNow.Add(-5*time.Hour), time.Minute, "often"),
	}

	got := recurringClusters(events, nil)

	if len(got) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(got))
	}
	if got[0].CategoryID != "often" || got[1].CategoryID != "rare" {
		t.Errorf("clusters not sorted by frequency: %s, %s", got[0].CategoryID, got[1].CategoryID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frequency > got[i-1].Frequency {
			t.Errorf("frequencies not non-increasing at %d", i)
		}
	}
}

func TestRecurringClusters_TieBreakByCategoryID(t *testing.T) {
	events := []store.WaitEvent{
		wait(testNow.Add(-1*time.Hour), time.Minute, "zeta"),
		wait(testNow.Add(-2*time.Hour), time.Minute, "zeta"),
		wait(testNow.Add(-3*time.Hour), time.Minute, "alpha"),
		wait(testNow.Add(-4*time.Hour), time.Minute, "alpha"),
	}

	got := recurringClusters(events, nil)

	if len(got) != 2 || got[0].CategoryID != "alpha" {
		t.Errorf("equal frequency should order by category id, got %+v", got)
	}
}
