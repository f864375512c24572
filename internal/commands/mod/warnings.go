// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Muestra las advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		doc, err := database.GetWarns(ctx.Interaction.GuildID, user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo advertencias: %v", err), "Mod")
			sendErrorEmbed(ctx, "Error", "Hubo un error al consultar las advertencias.")
			return
		}

		if doc == nil || len(doc.Warns) == 0 {
			ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** no tiene advertencias.", user.Username))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:     fmt.Sprintf("⚠️ Advertencias de %s (%d)", user.Username, len(doc.Warns)),
			Color:     0xFFA500,
			Timestamp: time.Now().Format(time.RFC3339),
		}
		for i, warn := range doc.Warns {
			if i >= 25 {
				break
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: fmt.Sprintf("#%d — <t:%d:d>", i+1, warn.Timestamp),
				Value: fmt.Sprintf("**Razón:** %s\n**Moderador:** <@%s>\n**ID:** `%s`",
					warn.Reason, warn.Moderator, warn.ID),
			})
		}

		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
