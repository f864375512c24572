package dev

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// CreateSweepCommand creates the /dev sweep command
func CreateSweepCommand() *discord.Command {
	return discord.NewCommand(
		"sweep",
		"Ejecuta el barrido de premium expirado manualmente",
		"dev",
		sweepHandler,
	)
}

func sweepHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx) {
			sendErrorEmbed(ctx, "Acceso Denegado", "❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		expired, err := sweeper.Sweep()
		if err != nil {
			logger.Error(fmt.Sprintf("Error en barrido manual: %v", err), "DevSweep")
			sendErrorEmbed(ctx, "Error", "❌ Hubo un error al ejecutar el barrido.")
			return
		}

		description := "No había suscripciones expiradas."
		if len(expired) > 0 {
			var sb strings.Builder
			for _, guildID := range expired {
				sb.WriteString(fmt.Sprintf("• `%s`\n", guildID))
			}
			description = sb.String()
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🧹 Barrido completado (%d expirados)", len(expired)),
			Description: description,
			Color:       0x00FF00,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}
