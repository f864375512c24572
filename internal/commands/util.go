// Package commands provides utility commands for the bot.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/config"
	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
)

// RegisterUtilCommands registers all utility commands
func RegisterUtilCommands(client *discord.ExtendedClient, collector *analytics.Collector) {
	// Ping command
	pingCmd := discord.NewCommand(
		"ping",
		"Comprueba la latencia del bot",
		"util",
		func(ctx *discord.CommandContext) error {
			latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
			return ctx.Reply(fmt.Sprintf("🏓 Pong! Latencia: %dms", latency))
		},
	)
	client.CommandHandler.RegisterCommand(pingCmd)

	// Status command
	statusCmd := discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"util",
		func(ctx *discord.CommandContext) error {
			db := database.Get()
			dbStatus, _ := db.GetStatus()
			uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

			return ctx.Reply(fmt.Sprintf(
				"📊 **Estado de StaffBot**\n"+
					"• Bot: 🟢 Online (v%s)\n"+
					"• Base de datos: %s\n"+
					"• Servidores: %d\n"+
					"• Uptime: %s",
				config.Version,
				dbStatus,
				ctx.Client.GuildCount(),
				uptime,
			))
		},
	)
	client.CommandHandler.RegisterCommand(statusCmd)

	// Stats command (usage analytics)
	statsCmd := discord.NewCommand(
		"stats",
		"Muestra los comandos más usados en este servidor",
		"util",
		func(ctx *discord.CommandContext) error {
			if collector == nil {
				return ctx.ReplyEphemeral("❌ Las analíticas no están disponibles.")
			}

			rows, err := collector.TopCommands(ctx.Interaction.GuildID, 10)
			if err != nil {
				return ctx.ReplyEphemeral("❌ Error leyendo las estadísticas.")
			}
			if len(rows) == 0 {
				return ctx.Reply("📈 Todavía no hay estadísticas para este servidor.")
			}

			var sb strings.Builder
			sb.WriteString("📈 **Comandos más usados**\n")
			for i, row := range rows {
				sb.WriteString(fmt.Sprintf("%d. `/%s` — %d usos\n", i+1, row.Name, row.Count))
			}
			return ctx.Reply(sb.String())
		},
	)
	client.CommandHandler.RegisterCommand(statsCmd)

	// Help command
	helpCmd := discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"util",
		func(ctx *discord.CommandContext) error {
			return ctx.Reply(
				"📖 **Ayuda de StaffBot Go**\n\n" +
					"**Comandos disponibles:**\n" +
					"• `/ping` - Comprueba la latencia\n" +
					"• `/status` - Estado del bot\n" +
					"• `/stats` - Estadísticas de uso\n" +
					"• `/mod` - Moderación (warn, kick, ban, timeout, cases)\n" +
					"• `/staff` - Roster del staff (promote, demote, profile)\n" +
					"• `/duty` - Sesiones de servicio del staff\n" +
					"• `/appeal` - Apelaciones de sanciones\n" +
					"• `/eco` - Economía del servidor\n" +
					"• `/premium` - Gestión premium del servidor\n" +
					"• `/analytics` - Analíticas de uso\n" +
					"• `/config` - Configuración del servidor",
			)
		},
	)
	client.CommandHandler.RegisterCommand(helpCmd)
}
