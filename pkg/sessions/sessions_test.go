package sessions

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	tr, err := NewTracker(filepath.Join(t.TempDir(), "sessions.json"))
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	return tr
}

func TestStartEndCycle(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := tr.Start("42", "100"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	since, err := tr.ActiveSince("42", "100")
	if err != nil {
		t.Fatal(err)
	}
	if since == nil {
		t.Fatal("ActiveSince() = nil, want start time")
	}

	entry, err := tr.End("42", "100")
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if entry.UserID != "100" || entry.Seconds < 0 {
		t.Errorf("entry = %+v", entry)
	}

	since, err = tr.ActiveSince("42", "100")
	if err != nil {
		t.Fatal(err)
	}
	if since != nil {
		t.Error("session should be inactive after End")
	}
}

func TestDoubleStartRejected(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := tr.Start("42", "100"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Start("42", "100"); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second Start() error = %v, want ErrAlreadyActive", err)
	}
}

func TestEndWithoutStart(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := tr.End("42", "100"); !errors.Is(err, ErrNotActive) {
		t.Errorf("End() error = %v, want ErrNotActive", err)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	tr := newTestTracker(t)

	for _, uid := range []string{"1", "2", "2"} {
		if _, err := tr.Start("42", uid); err != nil && !errors.Is(err, ErrAlreadyActive) {
			t.Fatal(err)
		}
		if _, err := tr.End("42", uid); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := tr.Leaderboard("42", 0)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %v, want 2 users", rows)
	}
	if rows[0].Seconds < rows[1].Seconds {
		t.Error("leaderboard should be sorted longest first")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	tr := newTestTracker(t)

	for i := 0; i < 3; i++ {
		if _, err := tr.Start("42", "100"); err != nil {
			t.Fatal(err)
		}
		if _, err := tr.End("42", "100"); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := tr.History("42", "100", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("History(limit=2) = %d entries, want 2", len(entries))
	}
	if entries[0].EndedAt < entries[1].EndedAt {
		t.Error("history should be newest first")
	}
}
