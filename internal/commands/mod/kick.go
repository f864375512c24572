// Package mod - /mod kick command
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

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a expulsar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la expulsión",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers).
		RequiresDatabase()
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		reason := ctx.GetStringOption("razon")
		if user == nil || reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario y una razón.")
			return
		}

		guildID := ctx.Interaction.GuildID
		if !moduleEnabled(guildID) {
			ctx.ReplyEphemeral("❌ El módulo de moderación está desactivado en este servidor.")
			return
		}

		if err := ctx.Session.GuildMemberDeleteWithReason(guildID, user.ID, reason); err != nil {
			logger.Error(fmt.Sprintf("Error expulsando usuario %s: %v", user.ID, err), "Mod")
			sendErrorEmbed(ctx, "Error", "No se pudo expulsar al usuario. Verifica mis permisos.")
			return
		}

		c, err := database.CreateCase(guildID, models.CaseTypeKick, user.ID, getUserID(ctx), reason, "")
		if err != nil {
			logger.Error(fmt.Sprintf("Error creando caso: %v", err), "Mod")
		}

		embed := &discordgo.MessageEmbed{
			Title:       "👢 Usuario Expulsado",
			Description: fmt.Sprintf("**%s** ha sido expulsado del servidor.", user.Username),
			Color:       0xFF4500,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Razón", Value: reason},
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
