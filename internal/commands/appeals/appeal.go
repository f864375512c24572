// Package appeals - /appeal submit, status, list and review commands
package appeals

import (
	goerrors "errors"
	"fmt"
	"time"

	box "github.com/PancyStudios/StaffBotGo/pkg/appeals"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createSubmitCommand creates the /appeal submit subcommand
func createSubmitCommand() *discord.Command {
	return discord.NewCommand(
		"submit",
		"Envía una apelación de sanción",
		"appeals",
		submitHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Por qué debería revisarse tu sanción",
			Required:    true,
		},
	)
}

// createStatusCommand creates the /appeal status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Consulta el estado de tu última apelación",
		"appeals",
		statusHandler,
	)
}

// createListCommand creates the /appeal list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista las apelaciones abiertas del servidor",
		"appeals",
		listHandler,
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// createReviewCommand creates the /appeal review subcommand
func createReviewCommand() *discord.Command {
	return discord.NewCommand(
		"review",
		"Decide una apelación abierta",
		"appeals",
		reviewHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "numero",
			Description: "Número de la apelación",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "decision",
			Description: "Decisión sobre la apelación",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Aprobar", Value: "approve"},
				{Name: "Denegar", Value: "deny"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "veredicto",
			Description: "Comentario para el usuario",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func appealsEnabled(guildID string) bool {
	if guilds == nil || guildID == "" {
		return true
	}
	enabled, err := guilds.ModuleEnabled(guildID, "appeals")
	if err != nil {
		return true
	}
	return enabled
}

// notifyAppealsChannel posts new appeals to the configured channel
func notifyAppealsChannel(ctx *discord.CommandContext, a *box.Appeal) {
	if guilds == nil {
		return
	}
	settings, err := guilds.Get(ctx.Interaction.GuildID)
	if err != nil {
		return
	}
	channelID := settings.Channels[guildconfig.ChannelAppeals]
	if channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📨 Nueva apelación #%d", a.ID),
		Description: a.Reason,
		Color:       0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usuario", Value: fmt.Sprintf("<@%s>", a.UserID), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Error notificando apelación: %v", err), "Appeals")
	}
}

func submitHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		if guildID == "" {
			ctx.ReplyEphemeral("❌ Este comando solo puede usarse en un servidor.")
			return
		}
		if !appealsEnabled(guildID) {
			ctx.ReplyEphemeral("❌ El módulo de apelaciones está desactivado en este servidor.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			ctx.ReplyEphemeral("❌ Debes explicar tu apelación.")
			return
		}

		appeal, err := appealBox.Submit(guildID, ctx.User().ID, reason)
		if err != nil {
			if goerrors.Is(err, box.ErrOpenAppealExists) {
				ctx.ReplyEphemeral("❌ Ya tienes una apelación abierta. Espera a que sea revisada.")
				return
			}
			logger.Error(fmt.Sprintf("Error guardando apelación: %v", err), "Appeals")
			ctx.ReplyEphemeral("❌ Hubo un error al enviar tu apelación.")
			return
		}

		ctx.ReplyEphemeral(fmt.Sprintf("📨 Tu apelación **#%d** fue enviada. Te avisaremos cuando sea revisada.", appeal.ID))
		notifyAppealsChannel(ctx, appeal)
	}()
	return nil
}

func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		appeal, err := appealBox.Latest(ctx.Interaction.GuildID, ctx.User().ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo apelación: %v", err), "Appeals")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar tu apelación.")
			return
		}
		if appeal == nil {
			ctx.ReplyEphemeral("ℹ️ No has enviado ninguna apelación en este servidor.")
			return
		}

		var statusText string
		switch appeal.Status {
		case box.StatusOpen:
			statusText = "🕐 Pendiente de revisión"
		case box.StatusApproved:
			statusText = "✅ Aprobada"
		case box.StatusDenied:
			statusText = "❌ Denegada"
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("📨 Apelación #%d", appeal.ID),
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Estado", Value: statusText, Inline: true},
				{Name: "Razón", Value: appeal.Reason},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if appeal.Verdict != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Veredicto", Value: appeal.Verdict,
			})
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func listHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		open, err := appealBox.Open(ctx.Interaction.GuildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error listando apelaciones: %v", err), "Appeals")
			ctx.ReplyEphemeral("❌ Hubo un error al listar las apelaciones.")
			return
		}
		if len(open) == 0 {
			ctx.ReplyEphemeral("✅ No hay apelaciones abiertas.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:     fmt.Sprintf("📨 Apelaciones abiertas (%d)", len(open)),
			Color:     0x5865F2,
			Timestamp: time.Now().Format(time.RFC3339),
		}
		for i, a := range open {
			if i >= 25 {
				break
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("#%d — <@%s>", a.ID, a.UserID),
				Value: a.Reason,
			})
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func reviewHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		id := int(ctx.GetIntOption("numero"))
		decision := ctx.GetStringOption("decision")
		verdict := ctx.GetStringOption("veredicto")

		appeal, err := appealBox.Review(ctx.Interaction.GuildID, id, decision == "approve", verdict, ctx.User().ID)
		if err != nil {
			switch {
			case goerrors.Is(err, box.ErrAppealNotFound):
				ctx.ReplyEphemeral(fmt.Sprintf("❌ No existe la apelación #%d.", id))
			case goerrors.Is(err, box.ErrAlreadyDecided):
				ctx.ReplyEphemeral(fmt.Sprintf("❌ La apelación #%d ya fue decidida.", id))
			default:
				logger.Error(fmt.Sprintf("Error revisando apelación: %v", err), "Appeals")
				ctx.ReplyEphemeral("❌ Hubo un error al revisar la apelación.")
			}
			return
		}

		resultText := "❌ denegada"
		if appeal.Status == box.StatusApproved {
			resultText = "✅ aprobada"
		}
		ctx.Reply(fmt.Sprintf("📨 La apelación **#%d** de <@%s> fue %s.", appeal.ID, appeal.UserID, resultText))
	}()
	return nil
}
