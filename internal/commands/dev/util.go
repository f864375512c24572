// Package dev - shared helpers for dev commands
package dev

import (
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/config"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// isOwner checks whether the invoking user is one of the configured bot owners
func isOwner(ctx *discord.CommandContext) bool {
	return config.Get().IsOwner(getUserID(ctx))
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
	return "Desconocido"
}

// sendErrorEmbed sends an ephemeral error embed
func sendErrorEmbed(ctx *discord.CommandContext, title, description string) {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0xFF0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	ctx.ReplyEphemeralEmbed(embed)
}
