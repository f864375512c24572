// Package config provides the /config command group for per-guild settings:
// log channels, module toggles and free-form variables.
package config

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
)

var guilds *guildconfig.Manager

// Register registers all configuration commands as /config subcommands
func Register(client *discord.ExtendedClient, g *guildconfig.Manager) {
	guilds = g

	channelCmd := createChannelCommand()
	moduleCmd := createModuleCommand()
	variableCmd := createVariableCommand()
	viewCmd := createViewCommand()

	configGroup := client.CommandHandler.BuildCommandGroup(
		"config",
		"Configuración del servidor",
		channelCmd,
		moduleCmd,
		variableCmd,
		viewCmd,
	)

	client.CommandHandler.AddGlobalCommand(configGroup)
}
