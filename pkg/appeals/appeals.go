// Package appeals stores ban/sanction appeals per guild with sequential ids
// and a simple open/approved/denied lifecycle.
package appeals

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

var (
	// ErrAppealNotFound is returned for ids that do not exist in the guild.
	ErrAppealNotFound = errors.New("apelación no encontrada")
	// ErrAlreadyDecided is returned when reviewing a closed appeal.
	ErrAlreadyDecided = errors.New("la apelación ya fue decidida")
	// ErrOpenAppealExists is returned when a user submits a second open appeal.
	ErrOpenAppealExists = errors.New("ya tienes una apelación abierta")
)

// Status of an appeal.
type Status string

const (
	StatusOpen     Status = "open"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Appeal is one submitted appeal.
type Appeal struct {
	ID          int    `json:"id"`
	UserID      string `json:"user_id"`
	Reason      string `json:"reason"`
	Status      Status `json:"status"`
	SubmittedAt string `json:"submitted_at"`
	DecidedBy   string `json:"decided_by,omitempty"`
	DecidedAt   string `json:"decided_at,omitempty"`
	Verdict     string `json:"verdict,omitempty"`
}

type guildState struct {
	NextID  int      `json:"next_id"`
	Appeals []Appeal `json:"appeals"`
}

type document struct {
	Guilds map[string]guildState `json:"guilds"`
}

// Box owns the appeals document.
type Box struct {
	store *storage.Store[document]
}

// NewBox opens (or creates) the appeals document at path.
func NewBox(path string) (*Box, error) {
	store, err := storage.New(path, document{Guilds: map[string]guildState{}})
	if err != nil {
		return nil, fmt.Errorf("abriendo apelaciones: %w", err)
	}
	return &Box{store: store}, nil
}

// Submit files a new appeal for the user. One open appeal per user per guild.
func (b *Box) Submit(guildID, userID, reason string) (*Appeal, error) {
	var result Appeal

	_, err := b.store.Update(func(doc document) (document, error) {
		g := doc.Guilds[guildID]
		for _, a := range g.Appeals {
			if a.UserID == userID && a.Status == StatusOpen {
				return doc, ErrOpenAppealExists
			}
		}

		g.NextID++
		result = Appeal{
			ID:          g.NextID,
			UserID:      userID,
			Reason:      reason,
			Status:      StatusOpen,
			SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		}
		g.Appeals = append(g.Appeals, result)
		if doc.Guilds == nil {
			doc.Guilds = map[string]guildState{}
		}
		doc.Guilds[guildID] = g
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns one appeal by id.
func (b *Box) Get(guildID string, id int) (*Appeal, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	for _, a := range doc.Guilds[guildID].Appeals {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, ErrAppealNotFound
}

// Latest returns the user's most recent appeal, nil when they never filed one.
func (b *Box) Latest(guildID, userID string) (*Appeal, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	appeals := doc.Guilds[guildID].Appeals
	for i := len(appeals) - 1; i >= 0; i-- {
		if appeals[i].UserID == userID {
			return &appeals[i], nil
		}
	}
	return nil, nil
}

// Review decides an open appeal. approve=true marks it approved, otherwise
// denied. A closed appeal cannot be re-decided.
func (b *Box) Review(guildID string, id int, approve bool, verdict, actorID string) (*Appeal, error) {
	var result Appeal

	_, err := b.store.Update(func(doc document) (document, error) {
		g := doc.Guilds[guildID]
		for i, a := range g.Appeals {
			if a.ID != id {
				continue
			}
			if a.Status != StatusOpen {
				return doc, ErrAlreadyDecided
			}
			if approve {
				a.Status = StatusApproved
			} else {
				a.Status = StatusDenied
			}
			a.DecidedBy = actorID
			a.DecidedAt = time.Now().UTC().Format(time.RFC3339)
			a.Verdict = verdict
			g.Appeals[i] = a
			doc.Guilds[guildID] = g
			result = a
			return doc, nil
		}
		return doc, ErrAppealNotFound
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Open returns all open appeals of a guild, oldest first.
func (b *Box) Open(guildID string) ([]Appeal, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	var open []Appeal
	for _, a := range doc.Guilds[guildID].Appeals {
		if a.Status == StatusOpen {
			open = append(open, a)
		}
	}
	return open, nil
}
