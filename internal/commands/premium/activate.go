// Package premium - /premium activate and /premium deactivate commands
package premium

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/bwmarrin/discordgo"
)

func tierChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(ledger.Tiers))
	for _, tier := range ledger.Tiers {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  tier,
			Value: tier,
		})
	}
	return choices
}

// createActivateCommand creates the /premium activate subcommand
func createActivateCommand() *discord.Command {
	return discord.NewCommand(
		"activate",
		"Activa premium en este servidor (solo controladores)",
		"premium",
		activateHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tier",
			Description: "Tier a activar",
			Required:    true,
			Choices:     tierChoices(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración (ej: 30d, 12h, permanent)",
			Required:    true,
		},
	)
}

// createDeactivateCommand creates the /premium deactivate subcommand
func createDeactivateCommand() *discord.Command {
	return discord.NewCommand(
		"deactivate",
		"Desactiva el premium de este servidor (solo controladores)",
		"premium",
		deactivateHandler,
	)
}

func activateHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}
		if !canControl(ctx, guildID) {
			sendErrorEmbed(ctx, "Sin permisos", "Solo los controladores premium pueden usar este comando.")
			return
		}

		tier := ctx.GetStringOption("tier")
		durationSpec := ctx.GetStringOption("duracion")

		expiresAt, err := ledger.ParseDuration(durationSpec)
		if err != nil {
			sendErrorEmbed(ctx, "Duración inválida", "Usa formatos como `30d`, `12h` o `permanent`.")
			return
		}

		if err := manager.SetPremium(guildID, tier, expiresAt, getUserID(ctx)); err != nil {
			if goerrors.Is(err, ledger.ErrUnknownTier) {
				sendErrorEmbed(ctx, "Tier inválido", "El tier especificado no existe.")
				return
			}
			logger.Error(fmt.Sprintf("Error activando premium en %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al activar el premium.")
			return
		}

		expiry := "⭐ Permanente"
		if expiresAt != nil {
			expiry = fmt.Sprintf("<t:%d:F>", expiresAt.Unix())
		}

		embed := &discordgo.MessageEmbed{
			Title:       "✨ Premium Activado",
			Description: "El premium del servidor ha sido activado manualmente.",
			Color:       0xFFD700,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Tier", Value: tier, Inline: true},
				{Name: "Expira", Value: expiry, Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		sendSuccessEmbed(ctx, embed)

		logger.Info(fmt.Sprintf("Premium %s activado en guild %s por %s", tier, guildID, getUserID(ctx)), "Premium")
	}()
	return nil
}

func deactivateHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}
		if !canControl(ctx, guildID) {
			sendErrorEmbed(ctx, "Sin permisos", "Solo los controladores premium pueden usar este comando.")
			return
		}

		if err := manager.RemovePremium(guildID); err != nil {
			logger.Error(fmt.Sprintf("Error desactivando premium en %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al desactivar el premium.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "💤 Premium Desactivado",
			Description: "El premium del servidor ha sido desactivado.",
			Color:       0x808080,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		sendSuccessEmbed(ctx, embed)

		logger.Info(fmt.Sprintf("Premium desactivado en guild %s por %s", guildID, getUserID(ctx)), "Premium")
	}()
	return nil
}
