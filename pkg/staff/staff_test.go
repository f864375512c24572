package staff

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestRoster(t *testing.T) *Roster {
	t.Helper()

	r, err := NewRoster(filepath.Join(t.TempDir(), "staff.json"))
	if err != nil {
		t.Fatalf("NewRoster() error = %v", err)
	}
	return r
}

func TestPromoteAndProfile(t *testing.T) {
	r := newTestRoster(t)

	p, err := r.Promote("42", "100", "Moderator", "owner")
	if err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if p.Rank != "Moderator" || p.PromotedBy != "owner" {
		t.Errorf("profile = %+v", p)
	}

	got, err := r.Profile("42", "100")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Rank != "Moderator" {
		t.Errorf("Profile() = %+v, want Moderator", got)
	}
}

func TestPromoteRejectsUnknownRank(t *testing.T) {
	r := newTestRoster(t)

	if _, err := r.Promote("42", "100", "Jefe", "owner"); !errors.Is(err, ErrUnknownRank) {
		t.Errorf("Promote(Jefe) error = %v, want ErrUnknownRank", err)
	}
}

func TestDemoteSteps(t *testing.T) {
	r := newTestRoster(t)

	if _, err := r.Promote("42", "100", "Senior", "owner"); err != nil {
		t.Fatal(err)
	}

	rank, err := r.Demote("42", "100", "owner")
	if err != nil {
		t.Fatalf("Demote() error = %v", err)
	}
	if rank != "Moderator" {
		t.Errorf("rank after demote = %q, want Moderator", rank)
	}

	// Demoting from the bottom removes the profile.
	if _, err := r.Demote("42", "100", "owner"); err != nil {
		t.Fatal(err)
	}
	rank, err = r.Demote("42", "100", "owner")
	if err != nil {
		t.Fatal(err)
	}
	if rank != "" {
		t.Errorf("rank after bottom demote = %q, want removal", rank)
	}

	p, _ := r.Profile("42", "100")
	if p != nil {
		t.Error("profile should be removed after bottom demote")
	}
}

func TestDemoteNonStaff(t *testing.T) {
	r := newTestRoster(t)

	if _, err := r.Demote("42", "100", "owner"); !errors.Is(err, ErrNotStaff) {
		t.Errorf("Demote() error = %v, want ErrNotStaff", err)
	}
}

func TestInfractions(t *testing.T) {
	r := newTestRoster(t)

	if _, err := r.AddInfraction("42", "100", "inactivo", "owner"); !errors.Is(err, ErrNotStaff) {
		t.Errorf("AddInfraction on non-staff error = %v, want ErrNotStaff", err)
	}

	if _, err := r.Promote("42", "100", "Trial", "owner"); err != nil {
		t.Fatal(err)
	}
	count, err := r.AddInfraction("42", "100", "inactivo", "owner")
	if err != nil {
		t.Fatalf("AddInfraction() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
