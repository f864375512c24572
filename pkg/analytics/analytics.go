// Package analytics accumulates usage counters (commands, events, premium
// checks) in a locked JSON document and can publish snapshots over MQTT.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/mqtt"
	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

// guildCounters holds the per-guild usage numbers.
type guildCounters struct {
	Commands map[string]int64 `json:"commands"`
	Events   map[string]int64 `json:"events"`
}

type document struct {
	Guilds    map[string]guildCounters `json:"guilds"`
	Global    guildCounters            `json:"global"`
	StartedAt string                   `json:"started_at"`
}

// Collector owns the analytics document.
type Collector struct {
	store *storage.Store[document]
}

// NewCollector opens (or creates) the analytics document at path.
func NewCollector(path string) (*Collector, error) {
	store, err := storage.New(path, document{
		Guilds:    map[string]guildCounters{},
		Global:    guildCounters{Commands: map[string]int64{}, Events: map[string]int64{}},
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("abriendo analíticas: %w", err)
	}
	return &Collector{store: store}, nil
}

func ensureCounters(g guildCounters) guildCounters {
	if g.Commands == nil {
		g.Commands = map[string]int64{}
	}
	if g.Events == nil {
		g.Events = map[string]int64{}
	}
	return g
}

// CountCommand increments the usage counter of a command, globally and for
// the guild it ran in.
func (c *Collector) CountCommand(guildID, command string) error {
	_, err := c.store.Update(func(doc document) (document, error) {
		doc.Global = ensureCounters(doc.Global)
		doc.Global.Commands[command]++

		if guildID != "" {
			g := ensureCounters(doc.Guilds[guildID])
			g.Commands[command]++
			doc.Guilds[guildID] = g
		}
		return doc, nil
	})
	return err
}

// CountEvent increments a named event counter (guild joins, expiry sweeps...).
func (c *Collector) CountEvent(guildID, event string) error {
	_, err := c.store.Update(func(doc document) (document, error) {
		doc.Global = ensureCounters(doc.Global)
		doc.Global.Events[event]++

		if guildID != "" {
			g := ensureCounters(doc.Guilds[guildID])
			g.Events[event]++
			doc.Guilds[guildID] = g
		}
		return doc, nil
	})
	return err
}

// Row is one counter in a snapshot, sorted by count descending.
type Row struct {
	Name  string
	Count int64
}

func sortedRows(m map[string]int64, limit int) []Row {
	rows := make([]Row, 0, len(m))
	for name, count := range m {
		rows = append(rows, Row{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// TopCommands returns the most used commands of a guild ("" for global).
func (c *Collector) TopCommands(guildID string, limit int) ([]Row, error) {
	doc, err := c.store.Read()
	if err != nil {
		return nil, err
	}
	if guildID == "" {
		return sortedRows(doc.Global.Commands, limit), nil
	}
	return sortedRows(doc.Guilds[guildID].Commands, limit), nil
}

// TopEvents returns the most frequent events of a guild ("" for global).
func (c *Collector) TopEvents(guildID string, limit int) ([]Row, error) {
	doc, err := c.store.Read()
	if err != nil {
		return nil, err
	}
	if guildID == "" {
		return sortedRows(doc.Global.Events, limit), nil
	}
	return sortedRows(doc.Guilds[guildID].Events, limit), nil
}

// TotalCommands returns the total command count of a guild ("" for global).
func (c *Collector) TotalCommands(guildID string) (int64, error) {
	doc, err := c.store.Read()
	if err != nil {
		return 0, err
	}
	counters := doc.Global.Commands
	if guildID != "" {
		counters = doc.Guilds[guildID].Commands
	}
	var total int64
	for _, n := range counters {
		total += n
	}
	return total, nil
}

// StartedAt returns when the collector first started counting.
func (c *Collector) StartedAt() (time.Time, error) {
	doc, err := c.store.Read()
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, doc.StartedAt)
}

// PublishSnapshot sends the global counters over MQTT for external dashboards.
// A missing or disconnected broker is not an error.
func (c *Collector) PublishSnapshot() error {
	doc, err := c.store.Read()
	if err != nil {
		return err
	}

	mc := mqtt.Get()
	if mc == nil || !mc.IsConnected() {
		return nil
	}

	return mc.Publish("staffbot/analytics/snapshot", map[string]interface{}{
		"commands":   doc.Global.Commands,
		"events":     doc.Global.Events,
		"started_at": doc.StartedAt,
	})
}
