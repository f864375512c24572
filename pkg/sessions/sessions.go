// Package sessions tracks staff duty sessions per guild: who is on duty,
// for how long, and the accumulated history used by the leaderboard.
package sessions

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

var (
	// ErrAlreadyActive is returned when a staff member starts a second session.
	ErrAlreadyActive = errors.New("ya tienes una sesión activa")
	// ErrNotActive is returned when ending a session that was never started.
	ErrNotActive = errors.New("no tienes una sesión activa")
)

// Entry is one finished duty session.
type Entry struct {
	UserID    string `json:"user_id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
	Seconds   int64  `json:"seconds"`
}

// guildState holds the live and historical sessions of one guild.
type guildState struct {
	Active  map[string]string `json:"active"` // userID -> RFC3339 start
	History []Entry           `json:"history"`
}

type document struct {
	Guilds map[string]guildState `json:"guilds"`
}

// Tracker owns the sessions document.
type Tracker struct {
	store *storage.Store[document]
}

// NewTracker opens (or creates) the sessions document at path.
func NewTracker(path string) (*Tracker, error) {
	store, err := storage.New(path, document{Guilds: map[string]guildState{}})
	if err != nil {
		return nil, fmt.Errorf("abriendo sesiones de staff: %w", err)
	}
	return &Tracker{store: store}, nil
}

// Start opens a duty session for the user. A user has at most one active
// session per guild.
func (t *Tracker) Start(guildID, userID string) (time.Time, error) {
	now := time.Now().UTC()

	_, err := t.store.Update(func(doc document) (document, error) {
		g, ok := doc.Guilds[guildID]
		if !ok {
			g = guildState{Active: map[string]string{}}
		}
		if _, active := g.Active[userID]; active {
			return doc, ErrAlreadyActive
		}
		g.Active[userID] = now.Format(time.RFC3339)
		doc.Guilds[guildID] = g
		return doc, nil
	})
	if err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// End closes the user's active session and appends it to the history.
// Returns the finished entry.
func (t *Tracker) End(guildID, userID string) (*Entry, error) {
	var entry *Entry

	_, err := t.store.Update(func(doc document) (document, error) {
		g, ok := doc.Guilds[guildID]
		if !ok {
			return doc, ErrNotActive
		}
		startISO, active := g.Active[userID]
		if !active {
			return doc, ErrNotActive
		}

		start, err := time.Parse(time.RFC3339, startISO)
		if err != nil {
			return doc, fmt.Errorf("sesión con inicio ilegible: %w", err)
		}

		now := time.Now().UTC()
		e := Entry{
			UserID:    userID,
			StartedAt: startISO,
			EndedAt:   now.Format(time.RFC3339),
			Seconds:   int64(now.Sub(start).Seconds()),
		}

		delete(g.Active, userID)
		g.History = append(g.History, e)
		doc.Guilds[guildID] = g
		entry = &e
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ActiveSince returns the start time of the user's session, or nil when off
// duty.
func (t *Tracker) ActiveSince(guildID, userID string) (*time.Time, error) {
	doc, err := t.store.Read()
	if err != nil {
		return nil, err
	}
	g, ok := doc.Guilds[guildID]
	if !ok {
		return nil, nil
	}
	startISO, active := g.Active[userID]
	if !active {
		return nil, nil
	}
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return nil, fmt.Errorf("sesión con inicio ilegible: %w", err)
	}
	return &start, nil
}

// ActiveCount returns how many staff are currently on duty in the guild.
func (t *Tracker) ActiveCount(guildID string) (int, error) {
	doc, err := t.store.Read()
	if err != nil {
		return 0, err
	}
	return len(doc.Guilds[guildID].Active), nil
}

// LeaderboardRow is a user's accumulated duty time.
type LeaderboardRow struct {
	UserID  string
	Seconds int64
}

// Leaderboard returns accumulated duty time per user, longest first, capped
// at limit rows (0 means all).
func (t *Tracker) Leaderboard(guildID string, limit int) ([]LeaderboardRow, error) {
	doc, err := t.store.Read()
	if err != nil {
		return nil, err
	}

	totals := map[string]int64{}
	for _, e := range doc.Guilds[guildID].History {
		totals[e.UserID] += e.Seconds
	}

	rows := make([]LeaderboardRow, 0, len(totals))
	for uid, secs := range totals {
		rows = append(rows, LeaderboardRow{UserID: uid, Seconds: secs})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Seconds != rows[j].Seconds {
			return rows[i].Seconds > rows[j].Seconds
		}
		return rows[i].UserID < rows[j].UserID
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// History returns the most recent finished sessions of a user, newest first,
// capped at limit entries (0 means all).
func (t *Tracker) History(guildID, userID string, limit int) ([]Entry, error) {
	doc, err := t.store.Read()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	history := doc.Guilds[guildID].History
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].UserID == userID {
			entries = append(entries, history[i])
			if limit > 0 && len(entries) >= limit {
				break
			}
		}
	}
	return entries, nil
}
