// Package premium - shared helpers for the premium subcommands
package premium

import (
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/config"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func sendErrorEmbed(ctx *discord.CommandContext, title, description string) {
	embed := &discordgo.MessageEmbed{
		Title:       "❌ " + title,
		Description: description,
		Color:       0xFF0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if err := ctx.ReplyEphemeralEmbed(embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando embed de error: %v", err), "Premium")
	}
}

func sendSuccessEmbed(ctx *discord.CommandContext, embed *discordgo.MessageEmbed) {
	if err := ctx.ReplyEmbed(embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando embed de éxito: %v", err), "Premium")
	}
}

func getUserID(ctx *discord.CommandContext) string {
	if ctx.Interaction.Member != nil && ctx.Interaction.Member.User != nil {
		return ctx.Interaction.Member.User.ID
	}
	if ctx.Interaction.User != nil {
		return ctx.Interaction.User.ID
	}
	return ""
}

func getUserName(ctx *discord.CommandContext) string {
	if ctx.Interaction.Member != nil && ctx.Interaction.Member.User != nil {
		return ctx.Interaction.Member.User.Username
	}
	if ctx.Interaction.User != nil {
		return ctx.Interaction.User.Username
	}
	return "Unknown"
}

// requireGuild aborts with an ephemeral error outside of guilds
func requireGuild(ctx *discord.CommandContext) (string, bool) {
	guildID := ctx.Interaction.GuildID
	if guildID == "" {
		ctx.ReplyEphemeral("❌ Este comando solo puede usarse en un servidor.")
		return "", false
	}
	return guildID, true
}

// canControl reports whether the invoking user may manage the guild's premium
// state (bot owner or delegated controller).
func canControl(ctx *discord.CommandContext, guildID string) bool {
	ok, err := manager.CanControl(guildID, getUserID(ctx), config.Get().OwnerIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("Error verificando controladores de %s: %v", guildID, err), "Premium")
		return false
	}
	return ok
}

// expiryText renders an expiry pointer for embeds
func expiryText(iso *string) string {
	if iso == nil {
		return "⭐ Permanente"
	}
	t, err := time.Parse(time.RFC3339, *iso)
	if err != nil {
		return *iso
	}
	return fmt.Sprintf("<t:%d:F> (<t:%d:R>)", t.Unix(), t.Unix())
}
