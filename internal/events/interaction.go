// Package events provides event handlers for interaction events
package events

import (
	"fmt"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterInteractionEvents registers the command usage counter
func RegisterInteractionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onInteractionCreate)
}

// fullCommandName resolves "group sub" style names for usage counters
func fullCommandName(data discordgo.ApplicationCommandInteractionData) string {
	name := data.Name
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand:
			return name + "." + opt.Name
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			for _, sub := range opt.Options {
				if sub.Type == discordgo.ApplicationCommandOptionSubCommand {
					return name + "." + opt.Name + "." + sub.Name
				}
			}
		}
	}
	return name
}

func onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if collector == nil {
		return
	}
	if err := collector.CountCommand(i.GuildID, fullCommandName(i.ApplicationCommandData())); err != nil {
		logger.Warn(fmt.Sprintf("Error contando comando: %v", err), "Interaction")
	}
}
