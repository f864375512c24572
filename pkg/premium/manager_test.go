package premium

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(filepath.Join(t.TempDir(), "premium.json"))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func mustActive(t *testing.T, m *Manager, guildID string) bool {
	t.Helper()

	active, err := m.IsActive(guildID)
	if err != nil {
		t.Fatalf("IsActive(%s) error = %v", guildID, err)
	}
	return active
}

func TestGetUnknownGuildReturnsDefault(t *testing.T) {
	m := newTestManager(t)

	rec, err := m.Get("42")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Active || rec.Tier != nil || rec.ExpiresAt != nil {
		t.Errorf("default record = %+v, want inactive with nil tier/expiry", rec)
	}
}

func TestPermanentGrantNeverExpires(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetPremium("42", "Gold", nil, "owner"); err != nil {
		t.Fatalf("SetPremium() error = %v", err)
	}

	if !mustActive(t, m, "42") {
		t.Error("permanent grant should be active")
	}

	expired, err := m.ExpireDue()
	if err != nil {
		t.Fatalf("ExpireDue() error = %v", err)
	}
	if len(expired) != 0 {
		t.Errorf("ExpireDue() = %v, permanent grants must never be swept", expired)
	}
}

func TestPastExpiryIsInactive(t *testing.T) {
	m := newTestManager(t)

	past := time.Now().UTC().Add(-time.Hour)
	if err := m.SetPremium("42", "Gold", &past, "owner"); err != nil {
		t.Fatalf("SetPremium() error = %v", err)
	}

	if mustActive(t, m, "42") {
		t.Error("grant with past expiry should report inactive")
	}

	// The stored flag stays true until the sweep runs.
	rec, err := m.Get("42")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Active {
		t.Error("stored Active flag should remain true before the sweep")
	}
}

func TestFutureExpiryIsActive(t *testing.T) {
	m := newTestManager(t)

	future := time.Now().UTC().Add(time.Hour)
	if err := m.SetPremium("42", "Platinum", &future, "owner"); err != nil {
		t.Fatalf("SetPremium() error = %v", err)
	}

	if !mustActive(t, m, "42") {
		t.Error("grant with future expiry should be active")
	}
}

func TestSetPremiumRejectsUnknownTier(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetPremium("42", "Diamond", nil, "owner"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("SetPremium() error = %v, want ErrUnknownTier", err)
	}
	if mustActive(t, m, "42") {
		t.Error("rejected tier must not mutate the ledger")
	}
}

func TestRemovePremiumResetsRecord(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetPremium("42", "Gold", nil, "owner"); err != nil {
		t.Fatal(err)
	}
	if err := m.RemovePremium("42"); err != nil {
		t.Fatalf("RemovePremium() error = %v", err)
	}

	rec, err := m.Get("42")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Active || rec.Tier != nil || rec.ExpiresAt != nil {
		t.Errorf("record after remove = %+v, want the inactive default shape", rec)
	}
	if mustActive(t, m, "42") {
		t.Error("removed guild should be inactive")
	}
}

func TestExpireDueIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	past := time.Now().UTC().Add(-time.Minute)
	future := time.Now().UTC().Add(time.Hour)
	if err := m.SetPremium("1", "Gold", &past, "owner"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPremium("2", "Gold", &future, "owner"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPremium("3", "Gold", nil, "owner"); err != nil {
		t.Fatal(err)
	}

	expired, err := m.ExpireDue()
	if err != nil {
		t.Fatalf("ExpireDue() error = %v", err)
	}
	if len(expired) != 1 || expired[0] != "1" {
		t.Fatalf("ExpireDue() = %v, want [1]", expired)
	}

	again, err := m.ExpireDue()
	if err != nil {
		t.Fatalf("second ExpireDue() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second ExpireDue() = %v, want empty (idempotent)", again)
	}

	if mustActive(t, m, "2") != true || mustActive(t, m, "3") != true {
		t.Error("sweep must not touch non-expired grants")
	}
}

func TestRedeemCapacityBound(t *testing.T) {
	m := newTestManager(t)

	if err := m.CreateLicense("ABC123", "Gold", "30d", 2); err != nil {
		t.Fatalf("CreateLicense() error = %v", err)
	}

	var ok int
	for i, guild := range []string{"42", "99", "7"} {
		res, err := m.Redeem("ABC123", guild, "user")
		if err != nil {
			t.Fatalf("Redeem #%d error = %v", i+1, err)
		}
		if res != nil {
			ok++
		}
	}
	if ok != 2 {
		t.Errorf("non-nil redemptions = %d, want exactly the license capacity (2)", ok)
	}

	// Exhausted keys keep returning nil for any guild.
	res, err := m.Redeem("ABC123", "1000", "user")
	if err != nil || res != nil {
		t.Errorf("Redeem on exhausted key = (%v, %v), want (nil, nil)", res, err)
	}
}

func TestRedeemUnknownKey(t *testing.T) {
	m := newTestManager(t)

	res, err := m.Redeem("nope", "42", "user")
	if err != nil {
		t.Fatalf("Redeem() error = %v", err)
	}
	if res != nil {
		t.Errorf("Redeem unknown key = %+v, want nil", res)
	}
}

func TestRedeemGrantsAtomically(t *testing.T) {
	m := newTestManager(t)

	if err := m.CreateLicense("ABC123", "Gold", "30d", 1); err != nil {
		t.Fatal(err)
	}

	res, err := m.Redeem("ABC123", "42", "user")
	if err != nil {
		t.Fatalf("Redeem() error = %v", err)
	}
	if res == nil {
		t.Fatal("Redeem() = nil, want result")
	}
	if res.Tier != "Gold" || res.License.Redeemed != 1 || res.License.Uses != 1 {
		t.Errorf("result = %+v, want Gold with redeemed=1 uses=1", res)
	}
	if res.ExpiresAt == nil || !res.ExpiresAt.After(time.Now().UTC().Add(29*24*time.Hour)) {
		t.Errorf("ExpiresAt = %v, want ~30 days out", res.ExpiresAt)
	}

	// Grant and charge land in the same document update.
	if !mustActive(t, m, "42") {
		t.Error("redeeming guild should be active")
	}
	if mustActive(t, m, "99") {
		t.Error("unrelated guild should stay inactive")
	}

	licenses, err := m.ListLicenses()
	if err != nil {
		t.Fatal(err)
	}
	if licenses["ABC123"].Redeemed != 1 {
		t.Errorf("persisted redeemed = %d, want 1", licenses["ABC123"].Redeemed)
	}
}

func TestControllerSetSemantics(t *testing.T) {
	m := newTestManager(t)

	set, err := m.AddController("42", "100")
	if err != nil {
		t.Fatalf("AddController() error = %v", err)
	}
	if len(set) != 1 || set[0] != "100" {
		t.Fatalf("set = %v, want [100]", set)
	}

	// Re-adding is a no-op.
	set, err = m.AddController("42", "100")
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 1 {
		t.Errorf("set after duplicate add = %v, want single member", set)
	}

	// Removing an absent member is a no-op.
	set, err = m.RemoveController("42", "200")
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 1 || set[0] != "100" {
		t.Errorf("set after absent remove = %v, want [100]", set)
	}

	set, err = m.RemoveController("42", "100")
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 0 {
		t.Errorf("set after remove = %v, want empty", set)
	}
}

func TestCanControl(t *testing.T) {
	m := newTestManager(t)
	owners := []string{"1", "2"}

	if _, err := m.AddController("42", "300"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		userID string
		want   bool
	}{
		{"1", true},    // owner, not a controller
		{"2", true},    // owner
		{"300", true},  // controller
		{"400", false}, // neither
	}
	for _, tt := range tests {
		got, err := m.CanControl("42", tt.userID, owners)
		if err != nil {
			t.Fatalf("CanControl(%s) error = %v", tt.userID, err)
		}
		if got != tt.want {
			t.Errorf("CanControl(%s) = %v, want %v", tt.userID, got, tt.want)
		}
	}
}

func TestGenerateKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := GenerateKey()
		if len(key) < 16 {
			t.Fatalf("key %q too short", key)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %q", key)
		}
		seen[key] = true
	}
}
