// Package staff - /staff promote, demote, profile and infraction commands
package staff

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	roster "github.com/PancyStudios/StaffBotGo/pkg/staff"
	"github.com/bwmarrin/discordgo"
)

func rankChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(roster.Ranks))
	for _, rank := range roster.Ranks {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  rank,
			Value: rank,
		})
	}
	return choices
}

// createPromoteCommand creates the /staff promote subcommand
func createPromoteCommand() *discord.Command {
	return discord.NewCommand(
		"promote",
		"Promueve a un miembro del staff",
		"staff",
		promoteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a promover",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "rango",
			Description: "Nuevo rango",
			Required:    true,
			Choices:     rankChoices(),
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createDemoteCommand creates the /staff demote subcommand
func createDemoteCommand() *discord.Command {
	return discord.NewCommand(
		"demote",
		"Degrada a un miembro del staff un rango",
		"staff",
		demoteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a degradar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createProfileCommand creates the /staff profile subcommand
func createProfileCommand() *discord.Command {
	return discord.NewCommand(
		"profile",
		"Muestra el perfil de staff de un miembro",
		"staff",
		profileHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a consultar",
			Required:    true,
		},
	)
}

// createInfractionCommand creates the /staff infraction subcommand
func createInfractionCommand() *discord.Command {
	return discord.NewCommand(
		"infraction",
		"Registra una sanción interna a un miembro del staff",
		"staff",
		infractionHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro del staff",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la sanción",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

func promoteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		rank := ctx.GetStringOption("rango")
		if user == nil || rank == "" {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario y un rango.")
			return
		}

		profile, err := staffRoster.Promote(ctx.Interaction.GuildID, user.ID, rank, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, roster.ErrUnknownRank) {
				ctx.ReplyEphemeral("❌ El rango especificado no existe.")
				return
			}
			logger.Error(fmt.Sprintf("Error promoviendo a %s: %v", user.ID, err), "Staff")
			ctx.ReplyEphemeral("❌ Hubo un error al promover al miembro.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "📈 Promoción de Staff",
			Description: fmt.Sprintf("**%s** ahora es **%s**.", user.Username, profile.Rank),
			Color:       0x00FF00,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Promovido por", Value: ctx.User().Username, Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEmbed(embed)
	}()
	return nil
}

func demoteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		newRank, err := staffRoster.Demote(ctx.Interaction.GuildID, user.ID, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, roster.ErrNotStaff) {
				ctx.ReplyEphemeral("❌ Ese usuario no está en el roster de staff.")
				return
			}
			logger.Error(fmt.Sprintf("Error degradando a %s: %v", user.ID, err), "Staff")
			ctx.ReplyEphemeral("❌ Hubo un error al degradar al miembro.")
			return
		}

		if newRank == "" {
			ctx.Reply(fmt.Sprintf("📉 **%s** ha sido retirado del roster de staff.", user.Username))
			return
		}
		ctx.Reply(fmt.Sprintf("📉 **%s** ha sido degradado a **%s**.", user.Username, newRank))
	}()
	return nil
}

func profileHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		profile, err := staffRoster.Profile(ctx.Interaction.GuildID, user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo perfil de %s: %v", user.ID, err), "Staff")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar el perfil.")
			return
		}
		if profile == nil {
			ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ **%s** no está en el roster de staff.", user.Username))
			return
		}

		promotedAt := profile.PromotedAt
		if t, err := time.Parse(time.RFC3339, profile.PromotedAt); err == nil {
			promotedAt = fmt.Sprintf("<t:%d:F>", t.Unix())
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("👤 Perfil de Staff: %s", user.Username),
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Rango", Value: profile.Rank, Inline: true},
				{Name: "Último ascenso", Value: promotedAt, Inline: true},
				{Name: "Sanciones internas", Value: fmt.Sprintf("%d", len(profile.Infractions)), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func infractionHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		reason := ctx.GetStringOption("razon")
		if user == nil || reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario y una razón.")
			return
		}

		count, err := staffRoster.AddInfraction(ctx.Interaction.GuildID, user.ID, reason, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, roster.ErrNotStaff) {
				ctx.ReplyEphemeral("❌ Ese usuario no está en el roster de staff.")
				return
			}
			logger.Error(fmt.Sprintf("Error registrando sanción a %s: %v", user.ID, err), "Staff")
			ctx.ReplyEphemeral("❌ Hubo un error al registrar la sanción.")
			return
		}

		ctx.Reply(fmt.Sprintf("⚠️ Sanción interna registrada para **%s** (total: %d).\n**Razón:** %s",
			user.Username, count, reason))
	}()
	return nil
}
