// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
)

var guilds *guildconfig.Manager

// Register registers all moderation commands as /mod subcommands
func Register(client *discord.ExtendedClient, guildManager *guildconfig.Manager) {
	guilds = guildManager

	// Create individual subcommands (each can be in its own file)
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	removeWarnCmd := createRemoveWarnCommand()
	kickCmd := createKickCommand()
	banCmd := createBanCommand()
	timeoutCmd := createTimeoutCommand()
	casesCmd := createCasesCommand()
	caseCmd := createCaseCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		warnCmd,
		warningsCmd,
		removeWarnCmd,
		kickCmd,
		banCmd,
		timeoutCmd,
		casesCmd,
		caseCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
