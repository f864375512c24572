// Package appeals provides the /appeal command group: submitting sanction
// appeals and reviewing them.
package appeals

import (
	box "github.com/PancyStudios/StaffBotGo/pkg/appeals"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
)

var (
	appealBox *box.Box
	guilds    *guildconfig.Manager
)

// Register registers all appeal commands as /appeal subcommands
func Register(client *discord.ExtendedClient, b *box.Box, g *guildconfig.Manager) {
	appealBox = b
	guilds = g

	submitCmd := createSubmitCommand()
	statusCmd := createStatusCommand()
	listCmd := createListCommand()
	reviewCmd := createReviewCommand()

	appealGroup := client.CommandHandler.BuildCommandGroup(
		"appeal",
		"Apelaciones de sanciones",
		submitCmd,
		statusCmd,
		listCmd,
		reviewCmd,
	)

	client.CommandHandler.AddGlobalCommand(appealGroup)
}
