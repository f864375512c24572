package appeals

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestBox(t *testing.T) *Box {
	t.Helper()

	b, err := NewBox(filepath.Join(t.TempDir(), "appeals.json"))
	if err != nil {
		t.Fatalf("NewBox() error = %v", err)
	}
	return b
}

func TestSubmitAssignsSequentialIDs(t *testing.T) {
	b := newTestBox(t)

	a1, err := b.Submit("42", "100", "fue un malentendido")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	a2, err := b.Submit("42", "200", "lo siento")
	if err != nil {
		t.Fatal(err)
	}
	if a1.ID != 1 || a2.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a1.ID, a2.ID)
	}
	if a1.Status != StatusOpen {
		t.Errorf("status = %q, want open", a1.Status)
	}
}

func TestOneOpenAppealPerUser(t *testing.T) {
	b := newTestBox(t)

	if _, err := b.Submit("42", "100", "primera"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Submit("42", "100", "segunda"); !errors.Is(err, ErrOpenAppealExists) {
		t.Errorf("second Submit() error = %v, want ErrOpenAppealExists", err)
	}
}

func TestReviewLifecycle(t *testing.T) {
	b := newTestBox(t)

	a, err := b.Submit("42", "100", "fue un malentendido")
	if err != nil {
		t.Fatal(err)
	}

	decided, err := b.Review("42", a.ID, true, "desbaneado", "mod")
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if decided.Status != StatusApproved || decided.DecidedBy != "mod" {
		t.Errorf("decided = %+v", decided)
	}

	// Re-deciding is rejected.
	if _, err := b.Review("42", a.ID, false, "", "mod"); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("second Review() error = %v, want ErrAlreadyDecided", err)
	}

	// A decided appeal frees the user to file again.
	if _, err := b.Submit("42", "100", "otra vez"); err != nil {
		t.Errorf("Submit after decision error = %v", err)
	}
}

func TestReviewUnknownID(t *testing.T) {
	b := newTestBox(t)

	if _, err := b.Review("42", 99, true, "", "mod"); !errors.Is(err, ErrAppealNotFound) {
		t.Errorf("Review(99) error = %v, want ErrAppealNotFound", err)
	}
}

func TestOpenListing(t *testing.T) {
	b := newTestBox(t)

	a1, _ := b.Submit("42", "100", "uno")
	b.Submit("42", "200", "dos")
	b.Review("42", a1.ID, false, "no", "mod")

	open, err := b.Open("42")
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].UserID != "200" {
		t.Errorf("Open() = %+v, want only user 200", open)
	}
}
