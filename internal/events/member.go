// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// welcomeChannel resolves the configured welcome channel, falling back to
// the guild's system channel.
func welcomeChannel(guild *discordgo.Guild) string {
	if guilds != nil {
		settings, err := guilds.Get(guild.ID)
		if err == nil && settings.Channels[guildconfig.ChannelWelcome] != "" {
			return settings.Channels[guildconfig.ChannelWelcome]
		}
	}
	return guild.SystemChannelID
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s#%s en servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	if collector != nil {
		if err := collector.CountEvent(m.GuildID, "member_join"); err != nil {
			logger.Warn(fmt.Sprintf("Error contando evento: %v", err), "Member")
		}
	}

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
		return
	}

	channelID := welcomeChannel(guild)
	if channelID == "" {
		return
	}

	welcomeEmbed := &discordgo.MessageEmbed{
		Title:       "¡Bienvenido/a! 🎉",
		Description: fmt.Sprintf("Dale la bienvenida a <@%s>\nAhora somos **%d** miembros.", m.User.ID, guild.MemberCount),
		Color:       0x00ff00,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("128"),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    guild.Name,
			IconURL: guild.IconURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, welcomeEmbed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Member")
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s#%s salió del servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	if collector != nil {
		if err := collector.CountEvent(m.GuildID, "member_leave"); err != nil {
			logger.Warn(fmt.Sprintf("Error contando evento: %v", err), "Member")
		}
	}

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		return
	}

	channelID := welcomeChannel(guild)
	if channelID == "" {
		return
	}

	farewellEmbed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("👋 **%s#%s** ha salido del servidor.\nAhora somos **%d** miembros.",
			m.User.Username, m.User.Discriminator, guild.MemberCount),
		Color: 0xe74c3c,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, sendErr := s.ChannelMessageSendEmbed(channelID, farewellEmbed); sendErr != nil {
		logger.Error(fmt.Sprintf("Error enviando mensaje de despedida: %v", sendErr), "Member")
	}
}
