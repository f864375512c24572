// Package mod - /mod cases and /mod case commands
package mod

import (
	goerrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createCasesCommand creates the /mod cases subcommand
func createCasesCommand() *discord.Command {
	return discord.NewCommand(
		"cases",
		"Muestra el historial de moderación de un usuario",
		"mod",
		casesHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// createCaseCommand creates the /mod case subcommand
func createCaseCommand() *discord.Command {
	return discord.NewCommand(
		"case",
		"Muestra un caso de moderación por su número",
		"mod",
		caseHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "numero",
			Description: "Número del caso",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// casesHandler handles the /mod cases command
func casesHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		cases, err := database.GetUserCases(ctx.Interaction.GuildID, user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo casos: %v", err), "Mod")
			sendErrorEmbed(ctx, "Error", "Hubo un error al consultar los casos.")
			return
		}
		if len(cases) == 0 {
			ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** no tiene casos registrados.", user.Username))
			return
		}

		sort.Slice(cases, func(i, j int) bool { return cases[i].CaseID > cases[j].CaseID })

		embed := &discordgo.MessageEmbed{
			Title:     fmt.Sprintf("📋 Casos de %s (%d)", user.Username, len(cases)),
			Color:     0x5865F2,
			Timestamp: time.Now().Format(time.RFC3339),
		}
		for i, c := range cases {
			if i >= 25 {
				break
			}
			value := fmt.Sprintf("**Razón:** %s\n**Moderador:** <@%s>", c.Reason, c.Moderator)
			if c.Duration != "" {
				value += fmt.Sprintf("\n**Duración:** %s", c.Duration)
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("Caso #%d — %s — <t:%d:d>", c.CaseID, c.Type, c.Timestamp),
				Value: value,
			})
		}

		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

// caseHandler handles the /mod case command
func caseHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		caseID := int(ctx.GetIntOption("numero"))
		if caseID <= 0 {
			ctx.ReplyEphemeral("❌ Debes especificar un número de caso válido.")
			return
		}

		c, err := database.GetCase(ctx.Interaction.GuildID, caseID)
		if err != nil {
			if goerrors.Is(err, database.ErrCaseNotFound) {
				sendErrorEmbed(ctx, "No encontrado", fmt.Sprintf("No existe el caso #%d en este servidor.", caseID))
				return
			}
			logger.Error(fmt.Sprintf("Error leyendo caso: %v", err), "Mod")
			sendErrorEmbed(ctx, "Error", "Hubo un error al consultar el caso.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("📋 Caso #%d | %s", c.CaseID, c.Type),
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Usuario", Value: fmt.Sprintf("<@%s>", c.UserID), Inline: true},
				{Name: "Moderador", Value: fmt.Sprintf("<@%s>", c.Moderator), Inline: true},
				{Name: "Fecha", Value: fmt.Sprintf("<t:%d:F>", c.Timestamp), Inline: true},
				{Name: "Razón", Value: c.Reason},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if c.Duration != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Duración", Value: c.Duration, Inline: true,
			})
		}

		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
