// Package main is the entry point for the StaffBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/PancyStudios/StaffBotGo/internal/commands"
	"github.com/PancyStudios/StaffBotGo/internal/events"
	"github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/appeals"
	"github.com/PancyStudios/StaffBotGo/pkg/config"
	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	discordpremium "github.com/PancyStudios/StaffBotGo/pkg/discord/premium"
	"github.com/PancyStudios/StaffBotGo/pkg/economy"
	"github.com/PancyStudios/StaffBotGo/pkg/errors"
	"github.com/PancyStudios/StaffBotGo/pkg/guildconfig"
	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/PancyStudios/StaffBotGo/pkg/mqtt"
	"github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/PancyStudios/StaffBotGo/pkg/sessions"
	"github.com/PancyStudios/StaffBotGo/pkg/staff"
	"github.com/PancyStudios/StaffBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando StaffBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database - it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			err := db.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	// Initialize global DataManagers
	if db != nil {
		database.InitGlobalDataManagers(db)

		// Initialize blacklist cache at startup and start auto-refresh
		if err := database.InitBlacklistCache(); err != nil {
			logger.Warn(fmt.Sprintf("Error inicializando caché de blacklist: %v", err), "Main")
		}
		database.StartBlacklistCacheRefresh()
		defer database.StopBlacklistCacheRefresh()
	}

	// Initialize MQTT
	mqttClientID := "staffbot"
	if !cfg.IsProd() {
		mqttClientID = "staffbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Build the local document stores
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Critical(fmt.Sprintf("Error creando directorio de datos: %v", err), "Main")
		os.Exit(1)
	}

	premiumManager, err := premium.NewManager(filepath.Join(cfg.DataDir, "premium.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo registro premium: %v", err), "Main")
		os.Exit(1)
	}
	guildManager, err := guildconfig.NewManager(filepath.Join(cfg.DataDir, "guilds.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo configuración de servidores: %v", err), "Main")
		os.Exit(1)
	}
	dutyTracker, err := sessions.NewTracker(filepath.Join(cfg.DataDir, "sessions.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo registro de sesiones: %v", err), "Main")
		os.Exit(1)
	}
	staffRoster, err := staff.NewRoster(filepath.Join(cfg.DataDir, "staff.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo roster de staff: %v", err), "Main")
		os.Exit(1)
	}
	appealBox, err := appeals.NewBox(filepath.Join(cfg.DataDir, "appeals.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo buzón de apelaciones: %v", err), "Main")
		os.Exit(1)
	}
	collector, err := analytics.NewCollector(filepath.Join(cfg.DataDir, "analytics.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo contadores de uso: %v", err), "Main")
		os.Exit(1)
	}
	guildBank, err := economy.NewBank(filepath.Join(cfg.DataDir, "economy.json"))
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo banco de economía: %v", err), "Main")
		os.Exit(1)
	}

	// Wire the premium ledger into the command gate
	discordpremium.Setup(premiumManager)

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer, premiumManager, collector)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	sweeper := premium.NewSweeper(premiumManager)

	// Register commands using the commands package
	commands.RegisterAll(discordClient, &commands.Deps{
		Premium:   premiumManager,
		Sweeper:   sweeper,
		Guilds:    guildManager,
		Sessions:  dutyTracker,
		Staff:     staffRoster,
		Appeals:   appealBox,
		Analytics: collector,
		Economy:   guildBank,
	})

	// Register events using the events package
	events.RegisterAll(discordClient, collector, guildManager)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	// Start the premium expiry sweeper once the bot is online
	if err := sweeper.Start(); err != nil {
		logger.Error(fmt.Sprintf("Error iniciando barrido de premium: %v", err), "Main")
	}
	defer sweeper.Stop()

	logger.Success("StaffBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando StaffBot Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
