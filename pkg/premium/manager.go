// Package premium implements the per-guild entitlement ledger: premium
// records, redeemable license keys and the controller allow-list, all stored
// in a single locked JSON document.
package premium

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

// ErrUnknownTier is returned when a tier name is not one of Tiers.
var ErrUnknownTier = errors.New("tier desconocido")

// Record is the stored premium state of one guild.
//
// Activity is double-bookkept: IsActive always derives from ExpiresAt, while
// the stored Active flag only flips on the next ExpireDue sweep or an
// explicit deactivate. Readers of the raw record can therefore observe
// Active=true for an already-expired grant until the sweep runs.
type Record struct {
	Active    bool    `json:"active"`
	Tier      *string `json:"tier"`
	ExpiresAt *string `json:"expires_at"`
	UpdatedBy string  `json:"updated_by,omitempty"`
}

// License is a redeemable, capacity-limited key.
type License struct {
	Tier     string `json:"tier"`
	Duration string `json:"duration"`
	Uses     int    `json:"uses"`
	Redeemed int    `json:"redeemed"`
}

// RedeemResult reports a successful redemption.
type RedeemResult struct {
	License   License
	Tier      string
	ExpiresAt *time.Time
}

// ledgerDocument is the single JSON document backing the manager.
// Guild and user ids are decimal-string keys (snowflakes exceed float
// precision, never treat them as numbers).
type ledgerDocument struct {
	Guilds      map[string]Record   `json:"guilds"`
	Licenses    map[string]License  `json:"licenses"`
	Controllers map[string][]string `json:"controllers"`
}

// Manager owns the premium ledger document.
type Manager struct {
	store *storage.Store[ledgerDocument]
}

// NewManager opens (or creates) the ledger at path.
func NewManager(path string) (*Manager, error) {
	store, err := storage.New(path, ledgerDocument{
		Guilds:      map[string]Record{},
		Licenses:    map[string]License{},
		Controllers: map[string][]string{},
	})
	if err != nil {
		return nil, fmt.Errorf("abriendo ledger premium: %w", err)
	}
	return &Manager{store: store}, nil
}

// defaultRecord is the shape returned for guilds without premium state.
func defaultRecord() Record {
	return Record{Active: false, Tier: nil, ExpiresAt: nil}
}

// Get returns the stored record for a guild, or the inactive default if the
// guild has never had premium state.
func (m *Manager) Get(guildID string) (Record, error) {
	doc, err := m.store.Read()
	if err != nil {
		return Record{}, err
	}
	rec, ok := doc.Guilds[guildID]
	if !ok {
		return defaultRecord(), nil
	}
	return rec, nil
}

// SetPremium unconditionally overwrites the guild record as active with the
// given tier and expiry. A nil expiry means the grant never expires. No check
// that the expiry is in the future: setting a past instant is the supported
// way to force-expire a guild.
func (m *Manager) SetPremium(guildID, tier string, expiresAt *time.Time, actorID string) error {
	if !ValidTier(tier) {
		return fmt.Errorf("%w: %s", ErrUnknownTier, tier)
	}

	_, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		doc.Guilds[guildID] = Record{
			Active:    true,
			Tier:      &tier,
			ExpiresAt: isoOf(expiresAt),
			UpdatedBy: actorID,
		}
		return doc, nil
	})
	return err
}

// RemovePremium resets the guild record to the inactive default. The record
// stays in the document; Get keeps returning a well-formed shape.
func (m *Manager) RemovePremium(guildID string) error {
	_, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		doc.Guilds[guildID] = defaultRecord()
		return doc, nil
	})
	return err
}

// IsActive derives whether a guild currently holds a valid entitlement. It
// never mutates stored state: an expired record keeps Active=true on disk
// until the next ExpireDue sweep.
func (m *Manager) IsActive(guildID string) (bool, error) {
	rec, err := m.Get(guildID)
	if err != nil {
		return false, err
	}
	if !rec.Active {
		return false, nil
	}
	if rec.ExpiresAt == nil {
		return true, nil
	}
	expiry, err := time.Parse(time.RFC3339, *rec.ExpiresAt)
	if err != nil {
		return false, fmt.Errorf("expires_at ilegible para guild %s: %w", guildID, err)
	}
	return expiry.After(time.Now().UTC()), nil
}

// ExpireDue flips Active=false on every record whose expiry has passed and
// returns the newly expired guild ids. The whole scan-and-write happens in
// one locked update so a concurrent SetPremium cannot be clobbered by a stale
// sweep; a sweep that finds nothing performs no write.
func (m *Manager) ExpireDue() ([]string, error) {
	var expired []string

	_, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		now := time.Now().UTC()
		for gid, rec := range doc.Guilds {
			if !rec.Active || rec.ExpiresAt == nil {
				continue
			}
			expiry, err := time.Parse(time.RFC3339, *rec.ExpiresAt)
			if err != nil || expiry.After(now) {
				continue
			}
			rec.Active = false
			doc.Guilds[gid] = rec
			expired = append(expired, gid)
		}
		if len(expired) == 0 {
			return doc, storage.ErrNoChange
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(expired)
	return expired, nil
}

// CreateLicense inserts a new key into the pool. The duration spec is stored
// verbatim and re-parsed at redemption time. Keys come from GenerateKey, so
// collisions are not checked.
func (m *Manager) CreateLicense(key, tier, duration string, uses int) error {
	if !ValidTier(tier) {
		return fmt.Errorf("%w: %s", ErrUnknownTier, tier)
	}
	if _, err := ParseDuration(duration); err != nil {
		return err
	}
	if uses < 1 {
		uses = 1
	}

	_, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		doc.Licenses[key] = License{
			Tier:     tier,
			Duration: duration,
			Uses:     uses,
			Redeemed: 0,
		}
		return doc, nil
	})
	return err
}

// ListLicenses returns a copy of the license pool.
func (m *Manager) ListLicenses() (map[string]License, error) {
	doc, err := m.store.Read()
	if err != nil {
		return nil, err
	}
	out := make(map[string]License, len(doc.Licenses))
	for k, v := range doc.Licenses {
		out[k] = v
	}
	return out, nil
}

// DeleteLicense removes a key from the pool. Removing an absent key is a
// no-op.
func (m *Manager) DeleteLicense(key string) error {
	_, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		if _, ok := doc.Licenses[key]; !ok {
			return doc, storage.ErrNoChange
		}
		delete(doc.Licenses, key)
		return doc, nil
	})
	return err
}

// Redeem consumes one use of a key and grants the resulting entitlement to
// the guild in the same locked update, so a crash can never charge a use
// without granting. Returns (nil, nil) when the key is unknown or exhausted —
// callers must treat that as "invalid key", not as a failure.
func (m *Manager) Redeem(key, guildID, actorID string) (*RedeemResult, error) {
	var result *RedeemResult

	_, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		lic, ok := doc.Licenses[key]
		if !ok || lic.Redeemed >= lic.Uses {
			return doc, storage.ErrNoChange
		}

		// Parsed now, not at creation: shelf time is free.
		expiresAt, err := ParseDuration(lic.Duration)
		if err != nil {
			return doc, err
		}

		lic.Redeemed++
		doc.Licenses[key] = lic
		tier := lic.Tier
		doc.Guilds[guildID] = Record{
			Active:    true,
			Tier:      &tier,
			ExpiresAt: isoOf(expiresAt),
			UpdatedBy: actorID,
		}

		result = &RedeemResult{License: lic, Tier: lic.Tier, ExpiresAt: expiresAt}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddController grants a user delegated premium management for one guild.
// Set semantics: re-adding an existing member is a no-op. Returns the sorted
// resulting set.
func (m *Manager) AddController(guildID, userID string) ([]string, error) {
	doc, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		current := doc.Controllers[guildID]
		for _, id := range current {
			if id == userID {
				return doc, storage.ErrNoChange
			}
		}
		current = append(current, userID)
		sort.Strings(current)
		doc.Controllers[guildID] = current
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]string(nil), doc.Controllers[guildID]...), nil
}

// RemoveController removes a user from the guild controller set; removing an
// absent user is a no-op. Returns the sorted resulting set.
func (m *Manager) RemoveController(guildID, userID string) ([]string, error) {
	doc, err := m.store.Update(func(doc ledgerDocument) (ledgerDocument, error) {
		current := doc.Controllers[guildID]
		kept := current[:0:0]
		for _, id := range current {
			if id != userID {
				kept = append(kept, id)
			}
		}
		if len(kept) == len(current) {
			return doc, storage.ErrNoChange
		}
		doc.Controllers[guildID] = kept
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]string(nil), doc.Controllers[guildID]...), nil
}

// ListControllers returns the controller set for a guild, empty if none.
func (m *Manager) ListControllers(guildID string) ([]string, error) {
	doc, err := m.store.Read()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), doc.Controllers[guildID]...), nil
}

// CanControl reports whether userID may manage premium for guildID: global
// owners always can, otherwise membership in the guild controller set
// decides.
func (m *Manager) CanControl(guildID, userID string, ownerIDs []string) (bool, error) {
	for _, id := range ownerIDs {
		if id == userID {
			return true, nil
		}
	}
	controllers, err := m.ListControllers(guildID)
	if err != nil {
		return false, err
	}
	for _, id := range controllers {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

// GenerateKey returns a cryptographically unpredictable, URL-safe license
// key (18 random bytes, 24 characters encoded).
func GenerateKey() string {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		// Extremely unlikely; a time-based key keeps the command usable.
		return fmt.Sprintf("SBGO-%d", time.Now().UnixNano())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
