// Package economy provides the /eco command group: balances, daily and
// work payouts, transfers and the richest leaderboard.
package economy

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	bank "github.com/PancyStudios/StaffBotGo/pkg/economy"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
)

var (
	guildBank *bank.Bank
	guilds    *guildconfig.Manager
)

// Register registers all economy commands as /eco subcommands
func Register(client *discord.ExtendedClient, b *bank.Bank, g *guildconfig.Manager) {
	guildBank = b
	guilds = g

	balanceCmd := createBalanceCommand()
	dailyCmd := createDailyCommand()
	workCmd := createWorkCommand()
	transferCmd := createTransferCommand()
	topCmd := createTopCommand()

	ecoGroup := client.CommandHandler.BuildCommandGroup(
		"eco",
		"Economía del servidor",
		balanceCmd,
		dailyCmd,
		workCmd,
		transferCmd,
		topCmd,
	)

	client.CommandHandler.AddGlobalCommand(ecoGroup)
}
