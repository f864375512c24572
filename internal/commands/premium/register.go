// Package premium provides the /premium command group for managing guild
// entitlements: status, redemption, activation and controller delegation.
package premium

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
)

var manager *ledger.Manager

// Register registers all premium commands as /premium subcommands
func Register(client *discord.ExtendedClient, m *ledger.Manager) {
	manager = m

	// Create individual subcommands
	statusCmd := createStatusCommand()
	redeemCmd := createRedeemCommand()
	featuresCmd := createFeaturesCommand()
	activateCmd := createActivateCommand()
	deactivateCmd := createDeactivateCommand()

	// Controller subcommands live under /premium controller
	controllerGroup := client.CommandHandler.BuildSubcommandGroup(
		"premium",
		"controller",
		"Gestión de controladores premium",
		createControllerAddCommand(),
		createControllerRemoveCommand(),
		createControllerListCommand(),
	)

	// Build the /premium command group with all subcommands
	premiumGroup := client.CommandHandler.BuildCommandGroup(
		"premium",
		"Comandos premium",
		statusCmd,
		redeemCmd,
		featuresCmd,
		activateCmd,
		deactivateCmd,
	)
	premiumGroup.Options = append(premiumGroup.Options, controllerGroup)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(premiumGroup)
}
