// Package economy - /eco balance, daily, work, transfer and top commands
package economy

import (
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	bank "github.com/PancyStudios/StaffBotGo/pkg/economy"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createBalanceCommand creates the /eco balance subcommand
func createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"balance",
		"Muestra tu saldo o el de otro miembro",
		"economy",
		balanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a consultar",
			Required:    false,
		},
	)
}

// createDailyCommand creates the /eco daily subcommand
func createDailyCommand() *discord.Command {
	return discord.NewCommand(
		"daily",
		"Reclama tu recompensa diaria",
		"economy",
		dailyHandler,
	)
}

// createWorkCommand creates the /eco work subcommand
func createWorkCommand() *discord.Command {
	return discord.NewCommand(
		"work",
		"Trabaja para ganar monedas",
		"economy",
		workHandler,
	)
}

// createTransferCommand creates the /eco transfer subcommand
func createTransferCommand() *discord.Command {
	return discord.NewCommand(
		"transfer",
		"Transfiere monedas a otro miembro",
		"economy",
		transferHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro que recibirá las monedas",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad a transferir",
			Required:    true,
		},
	)
}

// createTopCommand creates the /eco top subcommand
func createTopCommand() *discord.Command {
	return discord.NewCommand(
		"top",
		"Muestra los miembros más ricos del servidor",
		"economy",
		topHandler,
	)
}

func economyEnabled(guildID string) bool {
	if guilds == nil || guildID == "" {
		return true
	}
	enabled, err := guilds.ModuleEnabled(guildID, "economy")
	if err != nil {
		return true
	}
	return enabled
}

func formatWait(wait time.Duration) string {
	wait = wait.Round(time.Minute)
	h := int(wait.Hours())
	m := int(wait.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func balanceHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !economyEnabled(ctx.Interaction.GuildID) {
			ctx.ReplyEphemeral("❌ El módulo de economía está desactivado en este servidor.")
			return
		}

		target := ctx.GetUserOption("usuario")
		userID := ctx.User().ID
		name := ctx.User().Username
		if target != nil {
			userID = target.ID
			name = target.Username
		}

		balance, err := guildBank.Balance(ctx.Interaction.GuildID, userID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo saldo: %v", err), "Economy")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar el saldo.")
			return
		}

		ctx.Reply(fmt.Sprintf("💰 **%s** tiene **%d** monedas.", name, balance))
	}()
	return nil
}

func dailyHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !economyEnabled(ctx.Interaction.GuildID) {
			ctx.ReplyEphemeral("❌ El módulo de economía está desactivado en este servidor.")
			return
		}

		balance, wait, err := guildBank.Daily(ctx.Interaction.GuildID, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, bank.ErrOnCooldown) {
				ctx.ReplyEphemeral(fmt.Sprintf("🕐 Ya reclamaste tu recompensa diaria. Vuelve en **%s**.", formatWait(wait)))
				return
			}
			logger.Error(fmt.Sprintf("Error en recompensa diaria: %v", err), "Economy")
			ctx.ReplyEphemeral("❌ Hubo un error al reclamar tu recompensa.")
			return
		}

		ctx.Reply(fmt.Sprintf("🎁 Reclamaste **%d** monedas. Saldo actual: **%d**.", bank.DailyAmount, balance))
	}()
	return nil
}

func workHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !economyEnabled(ctx.Interaction.GuildID) {
			ctx.ReplyEphemeral("❌ El módulo de economía está desactivado en este servidor.")
			return
		}

		earned, balance, wait, err := guildBank.Work(ctx.Interaction.GuildID, ctx.User().ID)
		if err != nil {
			if goerrors.Is(err, bank.ErrOnCooldown) {
				ctx.ReplyEphemeral(fmt.Sprintf("🕐 Estás cansado. Podrás volver a trabajar en **%s**.", formatWait(wait)))
				return
			}
			logger.Error(fmt.Sprintf("Error trabajando: %v", err), "Economy")
			ctx.ReplyEphemeral("❌ Hubo un error al trabajar.")
			return
		}

		ctx.Reply(fmt.Sprintf("💼 Trabajaste y ganaste **%d** monedas. Saldo actual: **%d**.", earned, balance))
	}()
	return nil
}

func transferHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !economyEnabled(ctx.Interaction.GuildID) {
			ctx.ReplyEphemeral("❌ El módulo de economía está desactivado en este servidor.")
			return
		}

		target := ctx.GetUserOption("usuario")
		amount := ctx.GetIntOption("cantidad")
		if target == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}
		if target.ID == ctx.User().ID {
			ctx.ReplyEphemeral("❌ No puedes transferirte monedas a ti mismo.")
			return
		}
		if target.Bot {
			ctx.ReplyEphemeral("❌ No puedes transferir monedas a un bot.")
			return
		}

		err := guildBank.Transfer(ctx.Interaction.GuildID, ctx.User().ID, target.ID, amount)
		if err != nil {
			switch {
			case goerrors.Is(err, bank.ErrInvalidAmount):
				ctx.ReplyEphemeral("❌ La cantidad debe ser mayor que cero.")
			case goerrors.Is(err, bank.ErrInsufficientFunds):
				ctx.ReplyEphemeral("❌ No tienes monedas suficientes.")
			default:
				logger.Error(fmt.Sprintf("Error en transferencia: %v", err), "Economy")
				ctx.ReplyEphemeral("❌ Hubo un error al transferir las monedas.")
			}
			return
		}

		ctx.Reply(fmt.Sprintf("💸 **%s** transfirió **%d** monedas a **%s**.",
			ctx.User().Username, amount, target.Username))
	}()
	return nil
}

func topHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !economyEnabled(ctx.Interaction.GuildID) {
			ctx.ReplyEphemeral("❌ El módulo de economía está desactivado en este servidor.")
			return
		}

		rows, err := guildBank.Top(ctx.Interaction.GuildID, 10)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo ranking: %v", err), "Economy")
			ctx.ReplyEphemeral("❌ Hubo un error al consultar el ranking.")
			return
		}
		if len(rows) == 0 {
			ctx.Reply("📊 Todavía no hay cuentas en este servidor.")
			return
		}

		var sb strings.Builder
		for i, row := range rows {
			sb.WriteString(fmt.Sprintf("%d. <@%s> — **%d** monedas\n", i+1, row.UserID, row.Balance))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🏆 Miembros más ricos",
			Description: sb.String(),
			Color:       0xFFD700,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEmbed(embed)
	}()
	return nil
}
