// Package sessions provides the /duty command group for tracking staff
// service sessions: clock in, clock out and leaderboards.
package sessions

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	tracker "github.com/PancyStudios/StaffBotGo/pkg/sessions"
)

var (
	dutyTracker *tracker.Tracker
	guilds      *guildconfig.Manager
)

// Register registers all duty session commands as /duty subcommands
func Register(client *discord.ExtendedClient, t *tracker.Tracker, g *guildconfig.Manager) {
	dutyTracker = t
	guilds = g

	startCmd := createStartCommand()
	endCmd := createEndCommand()
	statusCmd := createStatusCommand()
	topCmd := createTopCommand()
	historyCmd := createHistoryCommand()

	dutyGroup := client.CommandHandler.BuildCommandGroup(
		"duty",
		"Sesiones de servicio del staff",
		startCmd,
		endCmd,
		statusCmd,
		topCmd,
		historyCmd,
	)

	client.CommandHandler.AddGlobalCommand(dutyGroup)
}
