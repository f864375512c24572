// Package analytics - /analytics guild, premium, health and global commands
package analytics

import (
	"fmt"
	"strings"
	"time"

	counters "github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/config"
	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	premiumgate "github.com/PancyStudios/StaffBotGo/pkg/discord/premium"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/PancyStudios/StaffBotGo/pkg/mqtt"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/PancyStudios/StaffBotGo/pkg/web"
	"github.com/bwmarrin/discordgo"
)

// createGuildCommand creates the /analytics guild subcommand
func createGuildCommand() *discord.Command {
	return discord.NewCommand(
		"guild",
		"Comandos y eventos más frecuentes de este servidor",
		"analytics",
		guildHandler,
	).WithPremium(premiumgate.RequirementGuild)
}

// createPremiumCommand creates the /analytics premium subcommand
func createPremiumCommand() *discord.Command {
	return discord.NewCommand(
		"premium",
		"Resumen del estado premium de este servidor",
		"analytics",
		premiumHandler,
	)
}

// createHealthCommand creates the /analytics health subcommand
func createHealthCommand() *discord.Command {
	return discord.NewCommand(
		"health",
		"Estado de los servicios del bot",
		"analytics",
		healthHandler,
	)
}

// createGlobalCommand creates the /analytics global subcommand
func createGlobalCommand() *discord.Command {
	return discord.NewCommand(
		"global",
		"Contadores globales del bot (solo dueños)",
		"analytics",
		globalHandler,
	)
}

func rowsText(rows []counters.Row, prefix string) string {
	if len(rows) == 0 {
		return "Sin datos todavía."
	}
	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s%s — %d\n", i+1, prefix, row.Name, row.Count))
	}
	return sb.String()
}

func guildHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		commands, err := collector.TopCommands(guildID, 10)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo contadores: %v", err), "Analytics")
			ctx.ReplyEphemeral("❌ Hubo un error al leer las analíticas.")
			return
		}
		events, err := collector.TopEvents(guildID, 10)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo contadores: %v", err), "Analytics")
			ctx.ReplyEphemeral("❌ Hubo un error al leer las analíticas.")
			return
		}
		total, _ := collector.TotalCommands(guildID)

		embed := &discordgo.MessageEmbed{
			Title: "📈 Analíticas del servidor",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Comandos totales", Value: fmt.Sprintf("%d", total), Inline: true},
				{Name: "Comandos más usados", Value: rowsText(commands, "/")},
				{Name: "Eventos más frecuentes", Value: rowsText(events, "")},
			},
			Footer:    &discordgo.MessageEmbedFooter{Text: "StaffBot Analytics"},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEmbed(embed)
	}()
	return nil
}

func premiumHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		if guildID == "" {
			ctx.ReplyEphemeral("❌ Este comando solo puede usarse en un servidor.")
			return
		}

		rec, err := manager.Get(guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo premium: %v", err), "Analytics")
			ctx.ReplyEphemeral("❌ Hubo un error al leer el estado premium.")
			return
		}
		active, _ := manager.IsActive(guildID)

		state := "❌ Inactivo"
		tier := "—"
		if active {
			state = "⭐ Activo"
			if rec.Tier != nil {
				tier = *rec.Tier
			}
		}

		embed := &discordgo.MessageEmbed{
			Title: "⭐ Estado Premium",
			Color: 0xFFD700,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Estado", Value: state, Inline: true},
				{Name: "Tier", Value: tier, Inline: true},
				{Name: "Expira", Value: ledger.FormatExpiry(rec.ExpiresAt), Inline: true},
			},
			Footer:    &discordgo.MessageEmbedFooter{Text: "StaffBot Premium"},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func healthHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		dbStatus, _ := database.Get().GetStatus()

		mqttStatus := "🔴 Desconectado"
		if mc := mqtt.Get(); mc != nil && mc.IsConnected() {
			mqttStatus = "🟢 Conectado"
		}

		uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

		embed := &discordgo.MessageEmbed{
			Title: "🩺 Salud de StaffBot",
			Color: 0x00FF00,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Base de datos", Value: dbStatus, Inline: true},
				{Name: "MQTT", Value: mqttStatus, Inline: true},
				{Name: "Feed en vivo", Value: fmt.Sprintf("%d clientes", web.Hub().ClientCount()), Inline: true},
				{Name: "Servidores", Value: fmt.Sprintf("%d", ctx.Client.GuildCount()), Inline: true},
				{Name: "Uptime", Value: uptime.String(), Inline: true},
				{Name: "Versión", Value: config.Version, Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func globalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !config.Get().IsOwner(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		commands, err := collector.TopCommands("", 10)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo contadores globales: %v", err), "Analytics")
			ctx.ReplyEphemeral("❌ Hubo un error al leer las analíticas.")
			return
		}
		events, _ := collector.TopEvents("", 10)
		total, _ := collector.TotalCommands("")

		since := "desconocido"
		if startedAt, err := collector.StartedAt(); err == nil {
			since = fmt.Sprintf("<t:%d:F>", startedAt.Unix())
		}

		embed := &discordgo.MessageEmbed{
			Title: "🌐 Analíticas globales",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Comandos totales", Value: fmt.Sprintf("%d", total), Inline: true},
				{Name: "Contando desde", Value: since, Inline: true},
				{Name: "Comandos más usados", Value: rowsText(commands, "/")},
				{Name: "Eventos más frecuentes", Value: rowsText(events, "")},
			},
			Footer:    &discordgo.MessageEmbedFooter{Text: "StaffBot Analytics"},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
