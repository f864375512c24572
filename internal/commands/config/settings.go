// Package config - /config channel, module, variable and view commands
package config

import (
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func channelChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Logs de moderación", Value: guildconfig.ChannelLogs},
		{Name: "Apelaciones", Value: guildconfig.ChannelAppeals},
		{Name: "Sesiones de servicio", Value: guildconfig.ChannelSessions},
		{Name: "Bienvenidas", Value: guildconfig.ChannelWelcome},
	}
}

func moduleChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(guildconfig.Modules))
	for _, m := range guildconfig.Modules {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  m,
			Value: m,
		})
	}
	return choices
}

// createChannelCommand creates the /config channel subcommand
func createChannelCommand() *discord.Command {
	return discord.NewCommand(
		"channel",
		"Asigna un canal a una función del bot",
		"config",
		channelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "funcion",
			Description: "Función a la que asignar el canal",
			Required:    true,
			Choices:     channelChoices(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal a usar (omitir para quitar)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createModuleCommand creates the /config module subcommand
func createModuleCommand() *discord.Command {
	return discord.NewCommand(
		"module",
		"Activa o desactiva un módulo del bot",
		"config",
		moduleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "modulo",
			Description: "Módulo a configurar",
			Required:    true,
			Choices:     moduleChoices(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "activo",
			Description: "Si el módulo debe estar activo",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createVariableCommand creates the /config variable subcommand
func createVariableCommand() *discord.Command {
	return discord.NewCommand(
		"variable",
		"Define una variable personalizada del servidor",
		"config",
		variableHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "clave",
			Description: "Nombre de la variable",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "valor",
			Description: "Valor (omitir para eliminar la variable)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createViewCommand creates the /config view subcommand
func createViewCommand() *discord.Command {
	return discord.NewCommand(
		"view",
		"Muestra la configuración actual del servidor",
		"config",
		viewHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

func channelHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		kind := ctx.GetStringOption("funcion")
		channel := ctx.GetChannelOption("canal")

		channelID := ""
		if channel != nil {
			if channel.Type != discordgo.ChannelTypeGuildText {
				ctx.ReplyEphemeral("❌ El canal debe ser un canal de texto.")
				return
			}
			channelID = channel.ID
		}

		if err := guilds.SetChannel(ctx.Interaction.GuildID, kind, channelID); err != nil {
			if goerrors.Is(err, guildconfig.ErrUnknownChannelKind) {
				ctx.ReplyEphemeral("❌ Esa función de canal no existe.")
				return
			}
			logger.Error(fmt.Sprintf("Error guardando canal: %v", err), "Config")
			ctx.ReplyEphemeral("❌ Hubo un error al guardar la configuración.")
			return
		}

		if channelID == "" {
			ctx.ReplyEphemeral(fmt.Sprintf("✅ El canal de **%s** fue desasignado.", kind))
			return
		}
		ctx.ReplyEphemeral(fmt.Sprintf("✅ El canal de **%s** ahora es <#%s>.", kind, channelID))
	}()
	return nil
}

func moduleHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		module := ctx.GetStringOption("modulo")
		enabled := ctx.GetBoolOption("activo")

		if err := guilds.SetModule(ctx.Interaction.GuildID, module, enabled); err != nil {
			if goerrors.Is(err, guildconfig.ErrUnknownModule) {
				ctx.ReplyEphemeral("❌ Ese módulo no existe.")
				return
			}
			logger.Error(fmt.Sprintf("Error guardando módulo: %v", err), "Config")
			ctx.ReplyEphemeral("❌ Hubo un error al guardar la configuración.")
			return
		}

		state := "desactivado ❌"
		if enabled {
			state = "activado ✅"
		}
		ctx.ReplyEphemeral(fmt.Sprintf("El módulo **%s** fue %s.", module, state))
	}()
	return nil
}

func variableHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		key := ctx.GetStringOption("clave")
		value := ctx.GetStringOption("valor")

		if err := guilds.SetVariable(ctx.Interaction.GuildID, key, value); err != nil {
			logger.Error(fmt.Sprintf("Error guardando variable: %v", err), "Config")
			ctx.ReplyEphemeral("❌ Hubo un error al guardar la variable.")
			return
		}

		if value == "" {
			ctx.ReplyEphemeral(fmt.Sprintf("✅ La variable `%s` fue eliminada.", key))
			return
		}
		ctx.ReplyEphemeral(fmt.Sprintf("✅ La variable `%s` ahora vale `%s`.", key, value))
	}()
	return nil
}

func viewHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		settings, err := guilds.Get(ctx.Interaction.GuildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo configuración: %v", err), "Config")
			ctx.ReplyEphemeral("❌ Hubo un error al leer la configuración.")
			return
		}

		var channels strings.Builder
		for _, choice := range channelChoices() {
			kind := choice.Value.(string)
			if id := settings.Channels[kind]; id != "" {
				channels.WriteString(fmt.Sprintf("**%s:** <#%s>\n", choice.Name, id))
			} else {
				channels.WriteString(fmt.Sprintf("**%s:** sin asignar\n", choice.Name))
			}
		}

		var modules strings.Builder
		for _, m := range guildconfig.Modules {
			state := "❌"
			if settings.Modules[m] {
				state = "✅"
			}
			modules.WriteString(fmt.Sprintf("%s `%s`\n", state, m))
		}

		variables := "Sin variables definidas."
		if len(settings.Variables) > 0 {
			var sb strings.Builder
			keys, _ := guilds.VariableKeys(ctx.Interaction.GuildID)
			for _, k := range keys {
				sb.WriteString(fmt.Sprintf("`%s` = `%s`\n", k, settings.Variables[k]))
			}
			variables = sb.String()
		}

		embed := &discordgo.MessageEmbed{
			Title: "⚙️ Configuración del servidor",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Canales", Value: channels.String()},
				{Name: "Módulos", Value: modules.String()},
				{Name: "Variables", Value: variables},
			},
			Footer:    &discordgo.MessageEmbedFooter{Text: "StaffBot Go"},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
