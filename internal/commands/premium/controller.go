// Package premium - /premium controller add/remove/list commands
package premium

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createControllerAddCommand creates the /premium controller add subcommand
func createControllerAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Añade un controlador premium al servidor",
		"premium",
		controllerAddHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a añadir como controlador",
			Required:    true,
		},
	)
}

// createControllerRemoveCommand creates the /premium controller remove subcommand
func createControllerRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Elimina un controlador premium del servidor",
		"premium",
		controllerRemoveHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a eliminar de los controladores",
			Required:    true,
		},
	)
}

// createControllerListCommand creates the /premium controller list subcommand
func createControllerListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista los controladores premium del servidor",
		"premium",
		controllerListHandler,
	)
}

func controllerAddHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}
		if !canControl(ctx, guildID) {
			sendErrorEmbed(ctx, "Sin permisos", "Solo los controladores premium pueden usar este comando.")
			return
		}

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		controllers, err := manager.AddController(guildID, user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error añadiendo controlador en %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al añadir el controlador.")
			return
		}

		ctx.Reply(fmt.Sprintf("✅ **%s** ahora es controlador premium. Total: %d", user.Username, len(controllers)))
	}()
	return nil
}

func controllerRemoveHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}
		if !canControl(ctx, guildID) {
			sendErrorEmbed(ctx, "Sin permisos", "Solo los controladores premium pueden usar este comando.")
			return
		}

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		controllers, err := manager.RemoveController(guildID, user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error eliminando controlador en %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al eliminar el controlador.")
			return
		}

		ctx.Reply(fmt.Sprintf("✅ **%s** ya no es controlador premium. Total: %d", user.Username, len(controllers)))
	}()
	return nil
}

func controllerListHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID, ok := requireGuild(ctx)
		if !ok {
			return
		}

		controllers, err := manager.ListControllers(guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error listando controladores de %s: %v", guildID, err), "Premium")
			sendErrorEmbed(ctx, "Error", "Hubo un error al listar los controladores.")
			return
		}

		if len(controllers) == 0 {
			ctx.ReplyEphemeral("ℹ️ Este servidor no tiene controladores premium delegados.")
			return
		}

		mentions := make([]string, 0, len(controllers))
		for _, id := range controllers {
			mentions = append(mentions, fmt.Sprintf("<@%s>", id))
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("👥 Controladores Premium (%d)", len(controllers)),
			Description: strings.Join(mentions, "\n"),
			Color:       0xFFD700,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
