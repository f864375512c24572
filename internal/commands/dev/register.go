// Package dev provides owner-only commands: the Go evaluator, blacklist
// management, license administration and the manual premium sweep.
package dev

import (
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/bwmarrin/discordgo"
)

var (
	manager *ledger.Manager
	sweeper *ledger.Sweeper
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient, m *ledger.Manager, s *ledger.Sweeper) {
	manager = m
	sweeper = s

	evalCmd := CreateEvalCommand()
	sweepCmd := CreateSweepCommand()

	blacklistAddCmd := CreateBlacklistAddCommand()
	blacklistRemoveCmd := CreateBlacklistRemoveCommand()

	licenseGenerateCmd := CreateLicenseGenerateCommand()
	licenseListCmd := CreateLicenseListCommand()
	licenseDeleteCmd := CreateLicenseDeleteCommand()

	blacklistGroup := client.CommandHandler.BuildSubcommandGroup(
		"dev",
		"blacklist",
		"Comandos de blacklist",
		blacklistAddCmd,
		blacklistRemoveCmd,
	)

	licenseGroup := client.CommandHandler.BuildSubcommandGroup(
		"dev",
		"license",
		"Gestión de licencias premium",
		licenseGenerateCmd,
		licenseListCmd,
		licenseDeleteCmd,
	)

	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Comandos de desarrollo",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        sweepCmd.Name,
				Description: sweepCmd.Description,
				Options:     sweepCmd.Options,
			},
			blacklistGroup,
			licenseGroup,
		},
	}

	client.Commands.Set("dev.eval", evalCmd)
	client.Commands.Set("dev.sweep", sweepCmd)

	client.CommandHandler.AddDevCommand(devGroup)
}
