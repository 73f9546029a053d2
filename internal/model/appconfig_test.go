package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	c := DefaultAppConfig()
	if c.DefaultWastePercent != 10 {
		t.Errorf("default waste = %v, want 10", c.DefaultWastePercent)
	}
	if c.DefaultPitch != DefaultPitchLabel {
		t.Errorf("default pitch = %q, want %q", c.DefaultPitch, DefaultPitchLabel)
	}
	if c.RecentEstimates == nil {
		t.Error("recent estimates should be an empty slice, not nil")
	}
}

func TestAddRecentEstimate(t *testing.T) {
	c := DefaultAppConfig()
	c.AddRecentEstimate("a.json")
	c.AddRecentEstimate("b.json")
	c.AddRecentEstimate("a.json") // moves to front, no duplicate

	if len(c.RecentEstimates) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c.RecentEstimates))
	}
	if c.RecentEstimates[0] != "a.json" || c.RecentEstimates[1] != "b.json" {
		t.Errorf("unexpected order: %v", c.RecentEstimates)
	}

	for i := 0; i < 20; i++ {
		c.AddRecentEstimate(string(rune('a'+i)) + "-extra.json")
	}
	if len(c.RecentEstimates) != 10 {
		t.Errorf("recent list should cap at 10, got %d", len(c.RecentEstimates))
	}
}
