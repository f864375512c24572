// Package mod - /mod warn command
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

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}
		reason := ctx.GetStringOption("razon")
		if reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar una razón.")
			return
		}

		guildID := ctx.Interaction.GuildID
		if !moduleEnabled(guildID) {
			ctx.ReplyEphemeral("❌ El módulo de moderación está desactivado en este servidor.")
			return
		}

		warn, total, err := database.AddWarn(guildID, user.ID, reason, getUserID(ctx))
		if err != nil {
			logger.Error(fmt.Sprintf("Error guardando advertencia: %v", err), "Mod")
			sendErrorEmbed(ctx, "Error", "Hubo un error al guardar la advertencia.")
			return
		}

		c, err := database.CreateCase(guildID, models.CaseTypeWarn, user.ID, getUserID(ctx), reason, "")
		if err != nil {
			logger.Error(fmt.Sprintf("Error creando caso: %v", err), "Mod")
		}

		embed := &discordgo.MessageEmbed{
			Title:       "⚠️ Usuario Advertido",
			Description: fmt.Sprintf("**%s** ha sido advertido.", user.Username),
			Color:       0xFFA500,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Razón", Value: reason},
				{Name: "Advertencias totales", Value: fmt.Sprintf("%d", total), Inline: true},
				{Name: "Moderador", Value: getUserName(ctx), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "ID de advertencia: " + warn.ID,
			},
		}
		sendSuccessEmbed(ctx, embed)

		if c != nil {
			logAction(ctx, c)
		}
	}()
	return nil
}
