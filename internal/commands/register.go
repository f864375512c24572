// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, premium, staff...)
package commands

import (
	analyticscmd "github.com/PancyStudios/StaffBotGo/internal/commands/analytics"
	appealscmd "github.com/PancyStudios/StaffBotGo/internal/commands/appeals"
	configcmd "github.com/PancyStudios/StaffBotGo/internal/commands/config"
	devcmd "github.com/PancyStudios/StaffBotGo/internal/commands/dev"
	economycmd "github.com/PancyStudios/StaffBotGo/internal/commands/economy"
	modcmd "github.com/PancyStudios/StaffBotGo/internal/commands/mod"
	premiumcmd "github.com/PancyStudios/StaffBotGo/internal/commands/premium"
	sessionscmd "github.com/PancyStudios/StaffBotGo/internal/commands/sessions"
	staffcmd "github.com/PancyStudios/StaffBotGo/internal/commands/staff"
	"github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/appeals"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/economy"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/PancyStudios/StaffBotGo/pkg/sessions"
	"github.com/PancyStudios/StaffBotGo/pkg/staff"
)

// Deps bundles the stores the command packages operate on.
type Deps struct {
	Premium   *premium.Manager
	Sweeper   *premium.Sweeper
	Guilds    *guildconfig.Manager
	Sessions  *sessions.Tracker
	Staff     *staff.Roster
	Appeals   *appeals.Box
	Analytics *analytics.Collector
	Economy   *economy.Bank
}

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, deps *Deps) {
	// Utility commands (/ping, /status, /help, /stats)
	RegisterUtilCommands(client, deps.Analytics)

	// Moderation commands (/mod warn, kick, ban, timeout, cases...)
	modcmd.Register(client, deps.Guilds)

	// Premium commands (/premium status, redeem, controllers...)
	premiumcmd.Register(client, deps.Premium)

	// Staff roster commands (/staff promote, demote, profile...)
	staffcmd.Register(client, deps.Staff)

	// Duty session commands (/duty start, end, top...)
	sessionscmd.Register(client, deps.Sessions, deps.Guilds)

	// Appeal commands (/appeal submit, review, list...)
	appealscmd.Register(client, deps.Appeals, deps.Guilds)

	// Economy commands (/eco balance, daily, work, top...)
	economycmd.Register(client, deps.Economy, deps.Guilds)

	// Guild configuration commands (/config ...)
	configcmd.Register(client, deps.Guilds)

	// Analytics commands (/analytics guild, premium, health, global)
	analyticscmd.Register(client, deps.Analytics, deps.Premium)

	// Dev-only commands (/dev eval, blacklist, sweep, license)
	devcmd.Register(client, deps.Premium, deps.Sweeper)
}
