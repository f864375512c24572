// Package sessions - /duty start, end, status, top and history commands
package sessions

import (
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	tracker "github.com/PancyStudios/StaffBotGo/pkg/sessions"
	"github.com/bwmarrin/discordgo"
)

// createStartCommand creates the /duty start subcommand
func createStartCommand() *discord.Command {
	return discord.NewCommand(
		"start",
		"Inicia tu sesión de servicio",
		"sessions",
		startHandler,
	)
}

// createEndCommand creates the /duty end subcommand
func createEndCommand() *discord.Command {
	return discord.NewCommand(
		"end",
		"Finaliza tu sesión de servicio",
		"sessions",
		endHandler,
	)
}

// createStatusCommand creates the /duty status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra tu estado de servicio actual",
		"sessions",
		statusHandler,
	)
}

// createTopCommand creates the /duty top subcommand
func createTopCommand() *discord.Command {
	return discord.NewCommand(
		"top",
		"Muestra el ranking de horas de servicio",
		"sessions",
		topHandler,
	)
}

// createHistoryCommand creates the /duty history subcommand
func createHistoryCommand() *discord.Command {
	return discord.NewCommand(
		"history",
		"Muestra tus últimas sesiones de servicio",
		"sessions",
		historyHandler,
	)
}

func sessionsEnabled(guildID string) bool {
	if guilds == nil || guildID == "" {
		return true
	}
	enabled, err := guilds.ModuleEnabled(guildID, "sessions")
	if err != nil {
		return true
	}
	return enabled
}

func formatSeconds(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func startHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		if !sessionsEnabled(guildID) {
			ctx.ReplyEphemeral("❌ El módulo de sesiones está desactivado en este servidor.")
			return
		}

		startedAt, err := dutyTracker.Start(guildID, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, tracker.ErrAlreadyActive) {
				ctx.ReplyEphemeral("❌ Ya tienes una sesión de servicio activa. Usa `/duty end` para finalizarla.")
				return
			}
			logger.Error(fmt.Sprintf("Error iniciando sesión: %v", err), "Duty")
			ctx.ReplyEphemeral("❌ Hubo un error al iniciar tu sesión.")
			return
		}

		ctx.Reply(fmt.Sprintf("🟢 **%s** está ahora en servicio (desde <t:%d:t>).",
			ctx.User().Username, startedAt.Unix()))
	}()
	return nil
}

func endHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		entry, err := dutyTracker.End(ctx.Interaction.GuildID, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, tracker.ErrNotActive) {
				ctx.ReplyEphemeral("❌ No tienes una sesión de servicio activa.")
				return
			}
			logger.Error(fmt.Sprintf("Error finalizando sesión: %v", err), "Duty")
			ctx.ReplyEphemeral("❌ Hubo un error al finalizar tu sesión.")
			return
		}

		ctx.Reply(fmt.Sprintf("🔴 **%s** terminó su servicio. Duración: **%s**.",
			ctx.User().Username, formatSeconds(entry.Seconds)))
	}()
	return nil
}

func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		since, err := dutyTracker.ActiveSince(ctx.Interaction.GuildID, ctx.User().ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error consultando sesión: %v", err), "Duty")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar tu estado.")
			return
		}
		if since == nil {
			ctx.ReplyEphemeral("🔴 No estás en servicio.")
			return
		}

		count, _ := dutyTracker.ActiveCount(ctx.Interaction.GuildID)
		ctx.ReplyEphemeral(fmt.Sprintf("🟢 En servicio desde <t:%d:t> (<t:%d:R>). Staff activo: %d",
			since.Unix(), since.Unix(), count))
	}()
	return nil
}

func topHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		rows, err := dutyTracker.Leaderboard(ctx.Interaction.GuildID, 10)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo ranking: %v", err), "Duty")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar el ranking.")
			return
		}
		if len(rows) == 0 {
			ctx.Reply("📊 Todavía no hay sesiones registradas en este servidor.")
			return
		}

		var sb strings.Builder
		for i, row := range rows {
			sb.WriteString(fmt.Sprintf("%d. <@%s> — %s\n", i+1, row.UserID, formatSeconds(row.Seconds)))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🏆 Ranking de Servicio",
			Description: sb.String(),
			Color:       0xFFD700,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEmbed(embed)
	}()
	return nil
}

func historyHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		entries, err := dutyTracker.History(ctx.Interaction.GuildID, ctx.User().ID, 10)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo historial: %v", err), "Duty")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar tu historial.")
			return
		}
		if len(entries) == 0 {
			ctx.ReplyEphemeral("📜 No tienes sesiones registradas.")
			return
		}

		var sb strings.Builder
		for _, entry := range entries {
			start, err := time.Parse(time.RFC3339, entry.StartedAt)
			if err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("• <t:%d:d> — %s\n", start.Unix(), formatSeconds(entry.Seconds)))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "📜 Tus últimas sesiones",
			Description: sb.String(),
			Color:       0x5865F2,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
