// Package premium - /premium redeem command
package premium

import (
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createRedeemCommand creates the /premium redeem subcommand
func createRedeemCommand() *discord.Command {
	return discord.NewCommand(
		"redeem",
		"Canjea una licencia premium para este servidor",
		"premium",
		redeemHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "licencia",
			Description: "La licencia premium a canjear",
			Required:    true,
		},
	)
}

func redeemHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}

		key := ctx.GetStringOption("licencia")
		if key == "" {
			ctx.ReplyEphemeral("❌ Debes especificar una licencia.")
			return
		}

		// Solo administradores pueden canjear licencias para el servidor
		member := ctx.Member()
		guild, err := ctx.Session.Guild(guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error obteniendo guild: %v", err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al verificar el servidor.")
			return
		}

		hasPermission := member != nil && member.Permissions&discordgo.PermissionAdministrator != 0
		if !hasPermission && getUserID(ctx) != guild.OwnerID {
			sendErrorEmbed(ctx, "Sin permisos", "Solo los administradores pueden canjear licencias para el servidor.")
			return
		}

		result, err := manager.Redeem(key, guildID, getUserID(ctx))
		if err != nil {
			logger.Error(fmt.Sprintf("Error canjeando licencia: %v", err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al canjear la licencia.")
			return
		}
		if result == nil {
			sendErrorEmbed(ctx, "Licencia inválida", "La licencia no existe o ya fue agotada.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "✨ Premium Activado",
			Description: fmt.Sprintf("¡El servidor **%s** ahora tiene premium activo!", guild.Name),
			Color:       0xFFD700,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Tier", Value: result.Tier, Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "StaffBot Premium",
			},
		}
		if result.ExpiresAt == nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Duración", Value: "⭐ Permanente", Inline: true,
			})
		} else {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Expira", Value: fmt.Sprintf("<t:%d:F>", result.ExpiresAt.Unix()), Inline: true,
			})
		}

		sendSuccessEmbed(ctx, embed)

		logger.Info(fmt.Sprintf("Usuario %s (%s) canjeó licencia premium para guild %s (%s)",
			getUserName(ctx), getUserID(ctx), guild.Name, guildID), "Premium")
	}()
	return nil
}
