// Package mod - /mod removewarn command
package mod

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createRemoveWarnCommand creates the /mod removewarn subcommand
func createRemoveWarnCommand() *discord.Command {
	return discord.NewCommand(
		"removewarn",
		"Elimina una advertencia de un usuario",
		"mod",
		removeWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que eliminar la advertencia",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID de la advertencia a eliminar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// removeWarnHandler handles the /mod removewarn command
func removeWarnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		warnID := ctx.GetStringOption("id")
		if user == nil || warnID == "" {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario y el ID de la advertencia.")
			return
		}

		removed, err := database.RemoveWarn(ctx.Interaction.GuildID, user.ID, warnID)
		if err != nil {
			if goerrors.Is(err, database.ErrWarnNotFound) {
				sendErrorEmbed(ctx, "No encontrada", "No existe una advertencia con ese ID para este usuario.")
				return
			}
			logger.Error(fmt.Sprintf("Error eliminando advertencia: %v", err), "Mod")
			sendErrorEmbed(ctx, "Error", "Hubo un error al eliminar la advertencia.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🗑️ Advertencia Eliminada",
			Description: fmt.Sprintf("Se eliminó una advertencia de **%s**.", user.Username),
			Color:       0x00FF00,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Razón original", Value: removed.Reason},
				{Name: "Moderador", Value: getUserName(ctx), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		sendSuccessEmbed(ctx, embed)
	}()
	return nil
}
