// Package analytics provides the /analytics command group: usage counters
// per guild and globally, plus service health. The per-guild reports are a
// premium feature.
package analytics

import (
	counters "github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
)

var (
	collector *counters.Collector
	manager   *ledger.Manager
)

// Register registers all analytics commands as /analytics subcommands
func Register(client *discord.ExtendedClient, ac *counters.Collector, m *ledger.Manager) {
	collector = ac
	manager = m

	guildCmd := createGuildCommand()
	premiumCmd := createPremiumCommand()
	healthCmd := createHealthCommand()
	globalCmd := createGlobalCommand()

	analyticsGroup := client.CommandHandler.BuildCommandGroup(
		"analytics",
		"Analíticas de uso del bot",
		guildCmd,
		premiumCmd,
		healthCmd,
		globalCmd,
	)

	client.CommandHandler.AddGlobalCommand(analyticsGroup)
}
