package premium

import (
	"fmt"

	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/PancyStudios/StaffBotGo/pkg/mqtt"
	"github.com/robfig/cron/v3"
)

// Sweeper runs the periodic expiry sweep over the premium ledger.
type Sweeper struct {
	manager *Manager
	cron    *cron.Cron
}

// NewSweeper creates a sweeper for the given manager.
func NewSweeper(manager *Manager) *Sweeper {
	return &Sweeper{
		manager: manager,
		cron:    cron.New(),
	}
}

// Start schedules the sweep every minute. Idempotent sweeps perform no write,
// so an idle ledger costs nothing.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("@every 1m", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	logger.System("Barrido de expiración premium programado (cada 1m).", "PremiumSweep")
	return nil
}

// Stop cancels the scheduled sweep.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Sweep runs one expiry pass immediately and returns the newly expired guild
// ids. Used by the scheduler and by /dev expire-sweep.
func (s *Sweeper) Sweep() ([]string, error) {
	return s.manager.ExpireDue()
}

func (s *Sweeper) sweep() {
	expired, err := s.manager.ExpireDue()
	if err != nil {
		logger.Error(fmt.Sprintf("Error en barrido de expiración: %v", err), "PremiumSweep")
		return
	}
	if len(expired) == 0 {
		return
	}

	logger.Info(fmt.Sprintf("Premium expirado para %d servidores: %v", len(expired), expired), "PremiumSweep")

	if mc := mqtt.Get(); mc != nil && mc.IsConnected() {
		if err := mc.Publish("staffbot/premium/expired", map[string]interface{}{
			"guilds": expired,
		}); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo publicar expiraciones en MQTT: %v", err), "PremiumSweep")
		}
	}
}
