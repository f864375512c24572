// Package economy implements a small per-guild currency: balances with
// daily and work payouts on cooldown, stored in a locked JSON document.
package economy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

var (
	// ErrOnCooldown is returned when a payout is claimed too early.
	ErrOnCooldown = errors.New("recompensa en cooldown")
	// ErrInsufficientFunds is returned when a transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("fondos insuficientes")
	// ErrInvalidAmount is returned for zero or negative transfer amounts.
	ErrInvalidAmount = errors.New("cantidad inválida")
)

const (
	DailyAmount   = 500
	DailyCooldown = 24 * time.Hour
	WorkCooldown  = time.Hour
	workMin       = 50
	workMax       = 250
)

// Account is the stored state of one member's wallet.
type Account struct {
	Balance   int64  `json:"balance"`
	LastDaily string `json:"last_daily,omitempty"`
	LastWork  string `json:"last_work,omitempty"`
}

type document struct {
	Guilds map[string]map[string]Account `json:"guilds"`
}

// Bank owns the economy document.
type Bank struct {
	store *storage.Store[document]
	now   func() time.Time
	roll  func(min, max int64) int64
}

// NewBank opens (or creates) the economy document at path.
func NewBank(path string) (*Bank, error) {
	store, err := storage.New(path, document{Guilds: map[string]map[string]Account{}})
	if err != nil {
		return nil, fmt.Errorf("abriendo economía: %w", err)
	}
	return &Bank{
		store: store,
		now:   time.Now,
		roll: func(min, max int64) int64 {
			return min + rand.Int63n(max-min+1)
		},
	}, nil
}

// Balance returns the member's balance, zero for unknown members.
func (b *Bank) Balance(guildID, userID string) (int64, error) {
	doc, err := b.store.Read()
	if err != nil {
		return 0, err
	}
	return doc.Guilds[guildID][userID].Balance, nil
}

func remainingCooldown(last string, cooldown time.Duration, now time.Time) time.Duration {
	if last == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, last)
	if err != nil {
		return 0
	}
	if rest := cooldown - now.Sub(t); rest > 0 {
		return rest
	}
	return 0
}

func (b *Bank) payout(guildID, userID string, amount int64, cooldown time.Duration, last func(Account) string, stamp func(*Account, string)) (int64, time.Duration, error) {
	var balance int64
	var wait time.Duration

	_, err := b.store.Update(func(doc document) (document, error) {
		guild, ok := doc.Guilds[guildID]
		if !ok {
			guild = map[string]Account{}
		}
		acc := guild[userID]

		now := b.now().UTC()
		if wait = remainingCooldown(last(acc), cooldown, now); wait > 0 {
			return doc, ErrOnCooldown
		}

		acc.Balance += amount
		stamp(&acc, now.Format(time.RFC3339))
		guild[userID] = acc
		if doc.Guilds == nil {
			doc.Guilds = map[string]map[string]Account{}
		}
		doc.Guilds[guildID] = guild
		balance = acc.Balance
		return doc, nil
	})
	if err != nil {
		return 0, wait, err
	}
	return balance, 0, nil
}

// Daily grants the daily payout once per 24h. On cooldown it returns
// ErrOnCooldown together with the remaining wait.
func (b *Bank) Daily(guildID, userID string) (int64, time.Duration, error) {
	return b.payout(guildID, userID, DailyAmount, DailyCooldown,
		func(a Account) string { return a.LastDaily },
		func(a *Account, ts string) { a.LastDaily = ts })
}

// Work grants a random payout once per hour. Returns the earned amount,
// the new balance, and the remaining wait when on cooldown.
func (b *Bank) Work(guildID, userID string) (int64, int64, time.Duration, error) {
	earned := b.roll(workMin, workMax)
	balance, wait, err := b.payout(guildID, userID, earned, WorkCooldown,
		func(a Account) string { return a.LastWork },
		func(a *Account, ts string) { a.LastWork = ts })
	if err != nil {
		return 0, 0, wait, err
	}
	return earned, balance, 0, nil
}

// Transfer moves coins between two members of the same guild. Transfers to
// oneself are rejected.
func (b *Bank) Transfer(guildID, fromID, toID string, amount int64) error {
	if amount <= 0 || fromID == toID {
		return ErrInvalidAmount
	}

	_, err := b.store.Update(func(doc document) (document, error) {
		guild, ok := doc.Guilds[guildID]
		if !ok {
			guild = map[string]Account{}
		}
		from := guild[fromID]
		if from.Balance < amount {
			return doc, ErrInsufficientFunds
		}
		to := guild[toID]

		from.Balance -= amount
		to.Balance += amount
		guild[fromID] = from
		guild[toID] = to
		if doc.Guilds == nil {
			doc.Guilds = map[string]map[string]Account{}
		}
		doc.Guilds[guildID] = guild
		return doc, nil
	})
	return err
}

// TopRow is one leaderboard entry.
type TopRow struct {
	UserID  string
	Balance int64
}

// Top returns the richest members of a guild, ties broken by user id.
func (b *Bank) Top(guildID string, limit int) ([]TopRow, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}

	rows := make([]TopRow, 0, len(doc.Guilds[guildID]))
	for userID, acc := range doc.Guilds[guildID] {
		rows = append(rows, TopRow{UserID: userID, Balance: acc.Balance})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Balance != rows[j].Balance {
			return rows[i].Balance > rows[j].Balance
		}
		return rows[i].UserID < rows[j].UserID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
