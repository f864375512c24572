// Package premium - /premium status and /premium features commands
package premium

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/bwmarrin/discordgo"
)

// createStatusCommand creates the /premium status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado premium del servidor",
		"premium",
		statusHandler,
	)
}

// createFeaturesCommand creates the /premium features subcommand
func createFeaturesCommand() *discord.Command {
	return discord.NewCommand(
		"features",
		"Muestra las funciones de cada tier premium",
		"premium",
		featuresHandler,
	)
}

func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}

		rec, err := manager.Get(guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo registro premium de %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al consultar el estado premium.")
			return
		}
		active, err := manager.IsActive(guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error verificando premium de %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al consultar el estado premium.")
			return
		}

		if !active {
			embed := &discordgo.MessageEmbed{
				Title:       "💎 Estado Premium",
				Description: "Este servidor **no** tiene premium activo.\nUsa `/premium redeem` con una licencia válida.",
				Color:       0x808080,
				Timestamp:   time.Now().Format(time.RFC3339),
			}
			ctx.ReplyEphemeralEmbed(embed)
			return
		}

		tier := "?"
		if rec.Tier != nil {
			tier = *rec.Tier
		}

		embed := &discordgo.MessageEmbed{
			Title:       "💎 Estado Premium",
			Description: "Este servidor tiene premium **activo**.",
			Color:       0xFFD700,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Tier", Value: tier, Inline: true},
				{Name: "Expira", Value: expiryText(rec.ExpiresAt), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "StaffBot Premium",
			},
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func featuresHandler(ctx *discord.CommandContext) error {
	var sb strings.Builder
	sb.WriteString("💎 **Tiers premium de StaffBot**\n\n")
	for _, tier := range ledger.Tiers {
		sb.WriteString(fmt.Sprintf("**%s** — %s\n", tier, ledger.TierFeatures[tier]))
	}
	return ctx.Reply(sb.String())
}
