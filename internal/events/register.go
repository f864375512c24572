// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, interaction, etc.)
package events

import (
	"github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
)

var (
	collector *analytics.Collector
	guilds    *guildconfig.Manager
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, ac *analytics.Collector, g *guildconfig.Manager) {
	collector = ac
	guilds = g

	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Interaction events (command usage counters)
	RegisterInteractionEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
