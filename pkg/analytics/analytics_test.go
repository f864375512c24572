package analytics

import (
	"path/filepath"
	"testing"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()

	c, err := NewCollector(filepath.Join(t.TempDir(), "analytics.json"))
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}
	return c
}

func TestCountCommand(t *testing.T) {
	c := newTestCollector(t)

	for i := 0; i < 3; i++ {
		if err := c.CountCommand("42", "warn"); err != nil {
			t.Fatalf("CountCommand() error = %v", err)
		}
	}
	if err := c.CountCommand("42", "ping"); err != nil {
		t.Fatal(err)
	}
	if err := c.CountCommand("77", "warn"); err != nil {
		t.Fatal(err)
	}

	rows, err := c.TopCommands("42", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Name != "warn" || rows[0].Count != 3 {
		t.Errorf("TopCommands(42) = %+v", rows)
	}

	global, err := c.TopCommands("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(global) != 1 || global[0].Name != "warn" || global[0].Count != 4 {
		t.Errorf("TopCommands(global, 1) = %+v", global)
	}
}

func TestTotalCommands(t *testing.T) {
	c := newTestCollector(t)

	c.CountCommand("42", "warn")
	c.CountCommand("42", "ping")
	c.CountCommand("77", "warn")

	total, err := c.TotalCommands("")
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("TotalCommands(global) = %d, want 3", total)
	}

	total, err = c.TotalCommands("42")
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("TotalCommands(42) = %d, want 2", total)
	}
}

func TestCountEvent(t *testing.T) {
	c := newTestCollector(t)

	c.CountEvent("", "guild_join")
	c.CountEvent("", "guild_join")
	c.CountEvent("42", "member_join")

	rows, err := c.TopEvents("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Name != "guild_join" || rows[0].Count != 2 {
		t.Errorf("TopEvents(global) = %+v", rows)
	}
}
