// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/StaffBotGo/pkg/analytics"
	"github.com/PancyStudios/StaffBotGo/pkg/database"
	"github.com/PancyStudios/StaffBotGo/pkg/discord"
	"github.com/PancyStudios/StaffBotGo/pkg/premium"
	"github.com/gin-gonic/gin"
)

var (
	premiumManager *premium.Manager
	collector      *analytics.Collector
)

// SetupAPIRoutes sets up the API routes. The premium manager and analytics
// collector back the /api/premium and /api/analytics endpoints.
func SetupAPIRoutes(s *Server, pm *premium.Manager, ac *analytics.Collector) {
	premiumManager = pm
	collector = ac

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/premium/:guildId", premiumStatusHandler)
		api.GET("/analytics", analyticsHandler)
		api.GET("/live", handleLive)
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
		"liveClients": Hub().ClientCount(),
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "StaffBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// premiumStatusHandler returns the premium record of a guild
func premiumStatusHandler(c *gin.Context) {
	if premiumManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "El sistema premium no está disponible.",
		})
		return
	}

	guildID := c.Param("guildId")
	rec, err := premiumManager.Get(guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error leyendo el registro premium.",
		})
		return
	}

	active, err := premiumManager.IsActive(guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error verificando el estado premium.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId":   guildID,
		"active":    active,
		"tier":      rec.Tier,
		"expiresAt": rec.ExpiresAt,
	})
}

// analyticsHandler returns the global usage counters
func analyticsHandler(c *gin.Context) {
	if collector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Las analíticas no están disponibles.",
		})
		return
	}

	commands, err := collector.TopCommands("", 25)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error leyendo analíticas.",
		})
		return
	}
	events, err := collector.TopEvents("", 25)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error leyendo analíticas.",
		})
		return
	}
	total, _ := collector.TotalCommands("")

	c.JSON(http.StatusOK, gin.H{
		"totalCommands": total,
		"topCommands":   commands,
		"topEvents":     events,
	})
}
