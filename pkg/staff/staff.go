// Package staff keeps per-guild staff profiles: rank, promotion history and
// internal infractions, stored in a locked JSON document.
package staff

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

var (
	// ErrUnknownRank is returned for ranks outside the ladder.
	ErrUnknownRank = errors.New("rango desconocido")
	// ErrNotStaff is returned when demoting a user without a profile.
	ErrNotStaff = errors.New("el usuario no es staff")
)

// Ranks is the promotion ladder, lowest first.
var Ranks = []string{"Trial", "Moderator", "Senior", "Admin", "Manager"}

// Infraction is an internal staff sanction, separate from member warns.
type Infraction struct {
	Reason   string `json:"reason"`
	IssuedBy string `json:"issued_by"`
	IssuedAt string `json:"issued_at"`
}

// Profile is the stored state of one staff member.
type Profile struct {
	Rank        string       `json:"rank"`
	PromotedAt  string       `json:"promoted_at"`
	PromotedBy  string       `json:"promoted_by"`
	Infractions []Infraction `json:"infractions,omitempty"`
}

type document struct {
	Guilds map[string]map[string]Profile `json:"guilds"`
}

// Roster owns the staff document.
type Roster struct {
	store *storage.Store[document]
}

// NewRoster opens (or creates) the staff document at path.
func NewRoster(path string) (*Roster, error) {
	store, err := storage.New(path, document{Guilds: map[string]map[string]Profile{}})
	if err != nil {
		return nil, fmt.Errorf("abriendo roster de staff: %w", err)
	}
	return &Roster{store: store}, nil
}

// ValidRank reports whether rank is on the ladder.
func ValidRank(rank string) bool {
	return rankIndex(rank) >= 0
}

func rankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

// Promote sets the member's rank. Works both for first promotions (joining
// the roster) and later ones; the rank must be on the ladder.
func (r *Roster) Promote(guildID, userID, rank, actorID string) (*Profile, error) {
	if !ValidRank(rank) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRank, rank)
	}

	var result Profile
	_, err := r.store.Update(func(doc document) (document, error) {
		guild, ok := doc.Guilds[guildID]
		if !ok {
			guild = map[string]Profile{}
		}
		p := guild[userID]
		p.Rank = rank
		p.PromotedAt = time.Now().UTC().Format(time.RFC3339)
		p.PromotedBy = actorID
		guild[userID] = p
		doc.Guilds[guildID] = guild
		result = p
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Demote moves the member one rank down, or removes them from the roster
// when already at the bottom. Returns the new rank, empty when removed.
func (r *Roster) Demote(guildID, userID, actorID string) (string, error) {
	var newRank string

	_, err := r.store.Update(func(doc document) (document, error) {
		guild, ok := doc.Guilds[guildID]
		if !ok {
			return doc, ErrNotStaff
		}
		p, ok := guild[userID]
		if !ok {
			return doc, ErrNotStaff
		}

		idx := rankIndex(p.Rank)
		if idx <= 0 {
			delete(guild, userID)
			doc.Guilds[guildID] = guild
			newRank = ""
			return doc, nil
		}

		p.Rank = Ranks[idx-1]
		p.PromotedAt = time.Now().UTC().Format(time.RFC3339)
		p.PromotedBy = actorID
		guild[userID] = p
		doc.Guilds[guildID] = guild
		newRank = p.Rank
		return doc, nil
	})
	if err != nil {
		return "", err
	}
	return newRank, nil
}

// AddInfraction records an internal sanction on the member's profile.
func (r *Roster) AddInfraction(guildID, userID, reason, actorID string) (int, error) {
	var count int

	_, err := r.store.Update(func(doc document) (document, error) {
		guild, ok := doc.Guilds[guildID]
		if !ok {
			return doc, ErrNotStaff
		}
		p, ok := guild[userID]
		if !ok {
			return doc, ErrNotStaff
		}

		p.Infractions = append(p.Infractions, Infraction{
			Reason:   reason,
			IssuedBy: actorID,
			IssuedAt: time.Now().UTC().Format(time.RFC3339),
		})
		guild[userID] = p
		doc.Guilds[guildID] = guild
		count = len(p.Infractions)
		return doc, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Profile returns the member's profile, nil when not on the roster.
func (r *Roster) Profile(guildID, userID string) (*Profile, error) {
	doc, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	guild, ok := doc.Guilds[guildID]
	if !ok {
		return nil, nil
	}
	p, ok := guild[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
