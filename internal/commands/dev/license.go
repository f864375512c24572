package dev

import (
	goerrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/bwmarrin/discordgo"
)

func licenseTierChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(ledger.Tiers))
	for _, tier := range ledger.Tiers {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  tier,
			Value: tier,
		})
	}
	return choices
}

// CreateLicenseGenerateCommand creates the /dev license generate command
func CreateLicenseGenerateCommand() *discord.Command {
	return discord.NewCommand(
		"generate",
		"Genera una licencia premium nueva",
		"dev",
		licenseGenerateHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tier",
			Description: "Tier que otorga la licencia",
			Required:    true,
			Choices:     licenseTierChoices(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración del premium (30d, 12h, 1y, unlimited)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "usos",
			Description: "Cuántos servidores pueden canjearla (por defecto 1)",
			Required:    false,
		},
	)
}

// CreateLicenseListCommand creates the /dev license list command
func CreateLicenseListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista las licencias premium existentes",
		"dev",
		licenseListHandler,
	)
}

// CreateLicenseDeleteCommand creates the /dev license delete command
func CreateLicenseDeleteCommand() *discord.Command {
	return discord.NewCommand(
		"delete",
		"Elimina una licencia premium",
		"dev",
		licenseDeleteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "licencia",
			Description: "Clave de la licencia a eliminar",
			Required:    true,
		},
	)
}

func licenseGenerateHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx) {
			sendErrorEmbed(ctx, "Acceso Denegado", "❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		tier := ctx.GetStringOption("tier")
		duration := ctx.GetStringOption("duracion")
		uses := int(ctx.GetIntOption("usos"))
		if uses < 1 {
			uses = 1
		}

		key := ledger.GenerateKey()
		if err := manager.CreateLicense(key, tier, duration, uses); err != nil {
			switch {
			case goerrors.Is(err, ledger.ErrUnknownTier):
				sendErrorEmbed(ctx, "Error", "❌ Ese tier no existe.")
			case goerrors.Is(err, ledger.ErrInvalidDuration):
				sendErrorEmbed(ctx, "Error", "❌ Duración inválida. Usa formatos como `30d`, `12h`, `1y` o `unlimited`.")
			default:
				logger.Error(fmt.Sprintf("Error creando licencia: %v", err), "DevLicense")
				sendErrorEmbed(ctx, "Error", "❌ Hubo un error al crear la licencia.")
			}
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "🔑 Licencia generada",
			Color: 0xFFD700,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Clave", Value: fmt.Sprintf("||`%s`||", key)},
				{Name: "Tier", Value: tier, Inline: true},
				{Name: "Duración", Value: duration, Inline: true},
				{Name: "Usos", Value: fmt.Sprintf("%d", uses), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Generada por %s", getUserName(ctx)),
			},
		}
		ctx.ReplyEphemeralEmbed(embed)

		logger.Info(fmt.Sprintf("Usuario %s generó una licencia %s (%s, %d usos)", getUserName(ctx), tier, duration, uses), "DevLicense")
	}()
	return nil
}

func licenseListHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx) {
			sendErrorEmbed(ctx, "Acceso Denegado", "❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		licenses, err := manager.ListLicenses()
		if err != nil {
			logger.Error(fmt.Sprintf("Error listando licencias: %v", err), "DevLicense")
			sendErrorEmbed(ctx, "Error", "❌ Hubo un error al listar las licencias.")
			return
		}
		if len(licenses) == 0 {
			ctx.ReplyEphemeral("ℹ️ No hay licencias sin canjear.")
			return
		}

		keys := make([]string, 0, len(licenses))
		for k := range licenses {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		for _, k := range keys {
			lic := licenses[k]
			sb.WriteString(fmt.Sprintf("||`%s`|| — %s, %s, %d/%d usos\n",
				k, lic.Tier, lic.Duration, lic.Redeemed, lic.Uses))
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔑 Licencias (%d)", len(licenses)),
			Description: sb.String(),
			Color:       0xFFD700,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)
	}()
	return nil
}

func licenseDeleteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx) {
			sendErrorEmbed(ctx, "Acceso Denegado", "❌ Este comando solo está disponible para los dueños del bot.")
			return
		}

		key := ctx.GetStringOption("licencia")
		if err := manager.DeleteLicense(key); err != nil {
			logger.Error(fmt.Sprintf("Error eliminando licencia: %v", err), "DevLicense")
			sendErrorEmbed(ctx, "Error", "❌ Hubo un error al eliminar la licencia.")
			return
		}

		ctx.ReplyEphemeral("🗑️ La licencia fue eliminada (si existía).")

		logger.Info(fmt.Sprintf("Usuario %s eliminó una licencia", getUserName(ctx)), "DevLicense")
	}()
	return nil
}
