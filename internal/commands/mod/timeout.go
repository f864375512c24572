// Package mod - /mod timeout command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/PancyStudios/StaffBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// Discord caps communication timeouts at 28 days.
const maxTimeout = 28 * 24 * time.Hour

// createTimeoutCommand creates the /mod timeout subcommand
func createTimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"timeout",
		"Silencia temporalmente a un usuario",
		"mod",
		timeoutHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a silenciar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración (ej: 10m, 2h, 1d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del silencio",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// parseTimeoutDuration accepts 10m / 2h / 1d style specs
func parseTimeoutDuration(spec string) (time.Duration, error) {
	if len(spec) > 1 && spec[len(spec)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(spec, "%dd", &days); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	d, err := time.ParseDuration(spec)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("duración inválida: %s", spec)
	}
	return d, nil
}

// timeoutHandler handles the /mod timeout command
func timeoutHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		durationSpec := ctx.GetStringOption("duracion")
		reason := ctx.GetStringOption("razon")
		if user == nil || durationSpec == "" || reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar usuario, duración y razón.")
			return
		}

		duration, err := parseTimeoutDuration(durationSpec)
		if err != nil {
			ctx.ReplyEphemeral("❌ Duración inválida. Usa formatos como `10m`, `2h` o `1d`.")
			return
		}
		if duration > maxTimeout {
			duration = maxTimeout
		}

		guildID := ctx.Interaction.GuildID
		if !moduleEnabled(guildID) {
			ctx.ReplyEphemeral("❌ El módulo de moderación está desactivado en este servidor.")
			return
		}

		until := time.Now().Add(duration)
		if err := ctx.Session.GuildMemberTimeout(guildID, user.ID, &until); err != nil {
			logger.Error(fmt.Sprintf("Error silenciando usuario %s: %v", user.ID, err), "Mod")
			sendErrorEmbed(ctx, "Error", "No se pudo silenciar al usuario. Verifica mis permisos.")
			return
		}

		c, err := database.CreateCase(guildID, models.CaseTypeTimeout, user.ID, getUserID(ctx), reason, durationSpec)
		if err != nil {
			logger.Error(fmt.Sprintf("Error creando caso: %v", err), "Mod")
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🔇 Usuario Silenciado",
			Description: fmt.Sprintf("**%s** ha sido silenciado.", user.Username),
			Color:       0x808080,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Razón", Value: reason},
				{Name: "Duración", Value: durationSpec, Inline: true},
				{Name: "Hasta", Value: fmt.Sprintf("<t:%d:F>", until.Unix()), Inline: true},
				{Name: "Moderador", Value: getUserName(ctx), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		sendSuccessEmbed(ctx, embed)

		if c != nil {
			logAction(ctx, c)
		}
	}()
	return nil
}
