// Package mod - shared helpers for the moderation subcommands
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/PancyStudios/StaffBotGo/pkg/models"
	"github.com/PancyStudios/StaffBotGo/pkg/web"
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
		logger.Error(fmt.Sprintf("Error enviando embed de error: %v", err), "Mod")
	}
}

func sendSuccessEmbed(ctx *discord.CommandContext, embed *discordgo.MessageEmbed) {
	if err := ctx.ReplyEmbed(embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando embed de éxito: %v", err), "Mod")
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

// moduleEnabled checks whether the mod module is active for the guild. Fails
// open when the config store is unavailable.
func moduleEnabled(guildID string) bool {
	if guilds == nil || guildID == "" {
		return true
	}
	enabled, err := guilds.ModuleEnabled(guildID, "mod")
	if err != nil {
		logger.Error(fmt.Sprintf("Error leyendo configuración del servidor %s: %v", guildID, err), "Mod")
		return true
	}
	return enabled
}

// logAction posts the recorded case to the configured logs channel and the
// live dashboard feed.
func logAction(ctx *discord.CommandContext, c *models.Case) {
	web.PublishLive("case", c.GuildID, c)

	if guilds == nil {
		return
	}
	settings, err := guilds.Get(c.GuildID)
	if err != nil {
		return
	}
	channelID := settings.Channels[guildconfig.ChannelLogs]
	if channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📋 Caso #%d | %s", c.CaseID, c.Type),
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usuario", Value: fmt.Sprintf("<@%s>", c.UserID), Inline: true},
			{Name: "Moderador", Value: fmt.Sprintf("<@%s>", c.Moderator), Inline: true},
			{Name: "Razón", Value: c.Reason},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "StaffBot Go",
		},
	}
	if c.Duration != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Duración", Value: c.Duration, Inline: true,
		})
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando log de caso al canal %s: %v", channelID, err), "Mod")
	}
}
