// Package database provides warn operations on top of the warns DataManager.
package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrWarnManagerNotInitialized = errors.New("warn data manager not initialized")
	ErrWarnNotFound              = errors.New("advertencia no encontrada")
)

func getWarnManager() (*DataManager[models.WarnsDocument], error) {
	if GlobalWarnDM == nil {
		return nil, ErrWarnManagerNotInitialized
	}
	return GlobalWarnDM, nil
}

// AddWarn appends a warn to the user's document and returns the stored warn
func AddWarn(guildID, userID, reason, moderatorID string) (*models.Warn, int, error) {
	dm, err := getWarnManager()
	if err != nil {
		return nil, 0, err
	}

	query := bson.M{"guildId": guildID, "userId": userID}

	doc, err := dm.Get(query)
	if err != nil {
		return nil, 0, err
	}
	if doc == nil {
		doc = &models.WarnsDocument{GuildID: guildID, UserID: userID}
	}

	warn := models.Warn{
		Reason:    reason,
		Moderator: moderatorID,
		ID:        uuid.New().String(),
		Timestamp: time.Now().Unix(),
	}
	doc.Warns = append(doc.Warns, warn)

	if _, err := dm.Set(query, doc); err != nil {
		return nil, 0, err
	}

	return &warn, len(doc.Warns), nil
}

// GetWarns returns the warns document of a user, nil if none exists
func GetWarns(guildID, userID string) (*models.WarnsDocument, error) {
	dm, err := getWarnManager()
	if err != nil {
		return nil, err
	}
	return dm.Get(bson.M{"guildId": guildID, "userId": userID})
}

// RemoveWarn removes one warn by id and returns the removed warn
func RemoveWarn(guildID, userID, warnID string) (*models.Warn, error) {
	dm, err := getWarnManager()
	if err != nil {
		return nil, err
	}

	query := bson.M{"guildId": guildID, "userId": userID}

	doc, err := dm.Get(query)
	if err != nil {
		return nil, err
	}
	if doc == nil || len(doc.Warns) == 0 {
		return nil, ErrWarnNotFound
	}

	var removed *models.Warn
	kept := make([]models.Warn, 0, len(doc.Warns))
	for _, warn := range doc.Warns {
		if warn.ID == warnID {
			w := warn
			removed = &w
			continue
		}
		kept = append(kept, warn)
	}
	if removed == nil {
		return nil, ErrWarnNotFound
	}

	doc.Warns = kept
	if _, err := dm.Set(query, doc); err != nil {
		return nil, fmt.Errorf("guardando advertencias: %w", err)
	}

	return removed, nil
}
