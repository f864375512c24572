// Package mod - /mod ban command
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

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del baneo",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Días de mensajes a eliminar (0-7)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		RequiresDatabase()
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		reason := ctx.GetStringOption("razon")
		if user == nil || reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario y una razón.")
			return
		}

		days := int(ctx.GetIntOption("dias"))
		if days < 0 {
			days = 0
		}
		if days > 7 {
			days = 7
		}

		guildID := ctx.Interaction.GuildID
		if !moduleEnabled(guildID) {
			ctx.ReplyEphemeral("❌ El módulo de moderación está desactivado en este servidor.")
			return
		}

		if err := ctx.Session.GuildBanCreateWithReason(guildID, user.ID, reason, days); err != nil {
			logger.Error(fmt.Sprintf("Error baneando usuario %s: %v", user.ID, err), "Mod")
			sendErrorEmbed(ctx, "Error", "No se pudo banear al usuario. Verifica mis permisos.")
			return
		}

		c, err := database.CreateCase(guildID, models.CaseTypeBan, user.ID, getUserID(ctx), reason, "")
		if err != nil {
			logger.Error(fmt.Sprintf("Error creando caso: %v", err), "Mod")
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🔨 Usuario Baneado",
			Description: fmt.Sprintf("**%s** ha sido baneado del servidor.", user.Username),
			Color:       0xFF0000,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Razón", Value: reason},
				{Name: "Moderador", Value: getUserName(ctx), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Puedes apelar con /appeal submit",
			},
		}
		sendSuccessEmbed(ctx, embed)

		if c != nil {
			logAction(ctx, c)
		}
	}()
	return nil
}
