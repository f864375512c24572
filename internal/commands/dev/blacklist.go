package dev

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/PancyStudios/StaffBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// CreateBlacklistAddCommand creates the /dev blacklist add command
func CreateBlacklistAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Añade un usuario o servidor a la blacklist",
		"dev",
		blacklistAddHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Tipo de entrada a bloquear",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Usuario", Value: "user"},
				{Name: "Servidor", Value: "guild"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del usuario o servidor a bloquear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del bloqueo",
			Required:    false,
		},
	)
}

// CreateBlacklistRemoveCommand creates the /dev blacklist remove command
func CreateBlacklistRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Elimina un usuario o servidor de la blacklist",
		"dev",
		blacklistRemoveHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del usuario o servidor a desbloquear",
			Required:    true,
		},
	)
}

func blacklistAddHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx) {
			sendErrorEmbed(ctx, "Acceso Denegado", "❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		tipo := ctx.GetStringOption("tipo")
		id := ctx.GetStringOption("id")
		razon := ctx.GetStringOption("razon")
		if razon == "" {
			razon = "Sin razón especificada"
		}

		blacklistType := models.BlacklistTypeGuild
		if tipo == "user" {
			blacklistType = models.BlacklistTypeUser
		}

		entry, err := database.AddToBlacklist(id, blacklistType, razon, getUserID(ctx))
		if err != nil {
			if goerrors.Is(err, database.ErrBlacklistEntryExists) {
				sendErrorEmbed(ctx, "Error", fmt.Sprintf("❌ El %s `%s` ya está en la blacklist.", blacklistTypeName(tipo), id))
				return
			}
			logger.Error(fmt.Sprintf("Error añadiendo a blacklist: %v", err), "DevBlacklist")
			sendErrorEmbed(ctx, "Error", "❌ Error al añadir a la blacklist.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🚫 Añadido a la Blacklist",
			Description: fmt.Sprintf("El %s ha sido bloqueado correctamente.", blacklistTypeName(tipo)),
			Color:       0xFF0000,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Tipo", Value: blacklistTypeEmoji(tipo) + " " + blacklistTypeName(tipo), Inline: true},
				{Name: "ID", Value: fmt.Sprintf("`%s`", id), Inline: true},
				{Name: "Razón", Value: entry.Reason},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Bloqueado por %s", getUserName(ctx)),
			},
		}
		ctx.ReplyEphemeralEmbed(embed)

		logger.Info(fmt.Sprintf("Usuario %s añadió %s %s a la blacklist", getUserName(ctx), tipo, id), "DevBlacklist")
	}()
	return nil
}

func blacklistRemoveHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx) {
			sendErrorEmbed(ctx, "Acceso Denegado", "❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		id := ctx.GetStringOption("id")

		entry, err := database.GetBlacklistEntry(id)
		if err != nil {
			if goerrors.Is(err, database.ErrBlacklistEntryNotFound) {
				sendErrorEmbed(ctx, "Error", fmt.Sprintf("❌ `%s` no está en la blacklist.", id))
				return
			}
			logger.Error(fmt.Sprintf("Error obteniendo entrada de blacklist: %v", err), "DevBlacklist")
			sendErrorEmbed(ctx, "Error", "❌ Error al obtener la entrada de la blacklist.")
			return
		}

		if err := database.RemoveFromBlacklist(id); err != nil {
			logger.Error(fmt.Sprintf("Error eliminando de blacklist: %v", err), "DevBlacklist")
			sendErrorEmbed(ctx, "Error", "❌ Error al eliminar de la blacklist.")
			return
		}

		tipo := string(entry.Type)
		embed := &discordgo.MessageEmbed{
			Title:       "✅ Eliminado de la Blacklist",
			Description: fmt.Sprintf("El %s ha sido desbloqueado correctamente.", blacklistTypeName(tipo)),
			Color:       0x00FF00,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Tipo", Value: blacklistTypeEmoji(tipo) + " " + blacklistTypeName(tipo), Inline: true},
				{Name: "ID", Value: fmt.Sprintf("`%s`", id), Inline: true},
				{Name: "Razón Original", Value: entry.Reason},
				{Name: "Bloqueado desde", Value: fmt.Sprintf("<t:%d:R>", entry.CreatedAt.Unix()), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Desbloqueado por %s", getUserName(ctx)),
			},
		}
		ctx.ReplyEphemeralEmbed(embed)

		logger.Info(fmt.Sprintf("Usuario %s eliminó %s de la blacklist", getUserName(ctx), id), "DevBlacklist")
	}()
	return nil
}

func blacklistTypeName(tipo string) string {
	if tipo == "user" {
		return "Usuario"
	}
	return "Servidor"
}

func blacklistTypeEmoji(tipo string) string {
	if tipo == "user" {
		return "👤"
	}
	return "🏰"
}
