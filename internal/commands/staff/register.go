// Package staff provides the /staff command group for managing the guild
// staff roster: promotions, demotions, infractions and profiles.
package staff

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	roster "github.com/PancyStudios/StaffBotGo/pkg/staff"
)

var staffRoster *roster.Roster

// Register registers all staff commands as /staff subcommands
func Register(client *discord.ExtendedClient, r *roster.Roster) {
	staffRoster = r

	promoteCmd := createPromoteCommand()
	demoteCmd := createDemoteCommand()
	profileCmd := createProfileCommand()
	infractionCmd := createInfractionCommand()

	staffGroup := client.CommandHandler.BuildCommandGroup(
		"staff",
		"Gestión del roster de staff",
		promoteCmd,
		demoteCmd,
		profileCmd,
		infractionCmd,
	)

	client.CommandHandler.AddGlobalCommand(staffGroup)
}
