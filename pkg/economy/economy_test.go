package economy

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestBank(t *testing.T) *Bank {
	t.Helper()

	b, err := NewBank(filepath.Join(t.TempDir(), "economy.json"))
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	return b
}

func TestDailyCooldown(t *testing.T) {
	b := newTestBank(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	balance, _, err := b.Daily("42", "100")
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if balance != DailyAmount {
		t.Errorf("balance = %d, want %d", balance, DailyAmount)
	}

	_, wait, err := b.Daily("42", "100")
	if !errors.Is(err, ErrOnCooldown) {
		t.Fatalf("second Daily() error = %v, want ErrOnCooldown", err)
	}
	if wait <= 0 || wait > DailyCooldown {
		t.Errorf("wait = %v", wait)
	}

	// After the cooldown the payout is available again.
	now = now.Add(DailyCooldown + time.Minute)
	balance, _, err = b.Daily("42", "100")
	if err != nil {
		t.Fatalf("Daily() after cooldown error = %v", err)
	}
	if balance != 2*DailyAmount {
		t.Errorf("balance = %d, want %d", balance, 2*DailyAmount)
	}
}

func TestWork(t *testing.T) {
	b := newTestBank(t)
	b.roll = func(min, max int64) int64 { return 120 }

	earned, balance, _, err := b.Work("42", "100")
	if err != nil {
		t.Fatalf("Work() error = %v", err)
	}
	if earned != 120 || balance != 120 {
		t.Errorf("earned = %d, balance = %d, want 120, 120", earned, balance)
	}

	if _, _, _, err := b.Work("42", "100"); !errors.Is(err, ErrOnCooldown) {
		t.Errorf("second Work() error = %v, want ErrOnCooldown", err)
	}
}

func TestTransfer(t *testing.T) {
	b := newTestBank(t)
	b.roll = func(min, max int64) int64 { return 100 }
	if _, _, _, err := b.Work("42", "100"); err != nil {
		t.Fatal(err)
	}

	if err := b.Transfer("42", "100", "200", 40); err != nil {
		t.Fatalf("Transfer() error = %v", err)
	}
	from, _ := b.Balance("42", "100")
	to, _ := b.Balance("42", "200")
	if from != 60 || to != 40 {
		t.Errorf("balances = %d, %d, want 60, 40", from, to)
	}

	if err := b.Transfer("42", "100", "200", 1000); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("over-transfer error = %v, want ErrInsufficientFunds", err)
	}
	if err := b.Transfer("42", "100", "200", 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero transfer error = %v, want ErrInvalidAmount", err)
	}

	// A self-transfer must not change the balance.
	if err := b.Transfer("42", "100", "100", 10); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("self-transfer error = %v, want ErrInvalidAmount", err)
	}
	if balance, _ := b.Balance("42", "100"); balance != 60 {
		t.Errorf("balance after self-transfer = %d, want 60", balance)
	}
}

func TestTop(t *testing.T) {
	b := newTestBank(t)
	amounts := map[string]int64{"100": 50, "200": 300, "300": 300}
	for userID, amount := range amounts {
		amount := amount
		b.roll = func(min, max int64) int64 { return amount }
		if _, _, _, err := b.Work("42", userID); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := b.Top("42", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].UserID != "200" || rows[1].UserID != "300" {
		t.Errorf("Top() = %+v", rows)
	}
}
