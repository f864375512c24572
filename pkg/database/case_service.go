// Package database provides moderation case operations with sequential ids.
package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrCaseManagerNotInitialized = errors.New("case data manager not initialized")
	ErrCaseNotFound              = errors.New("caso no encontrado")
)

func getCaseManager() (*DataManager[models.Case], error) {
	if GlobalCaseDM == nil {
		return nil, ErrCaseManagerNotInitialized
	}
	return GlobalCaseDM, nil
}

// CreateCase records a moderation action with the next sequential id for the
// guild. Ids come from the "cases:<guildId>" counter so they never collide
// even across restarts.
func CreateCase(guildID string, caseType models.CaseType, userID, moderatorID, reason, duration string) (*models.Case, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}

	db := Get()
	if db == nil {
		return nil, ErrCaseManagerNotInitialized
	}

	seq, err := db.NextSequence("cases:" + guildID)
	if err != nil {
		return nil, fmt.Errorf("obteniendo id de caso: %w", err)
	}

	c := models.Case{
		CaseID:    seq,
		GuildID:   guildID,
		Type:      caseType,
		UserID:    userID,
		Moderator: moderatorID,
		Reason:    reason,
		Duration:  duration,
		Timestamp: time.Now().Unix(),
	}

	if _, err := dm.Set(bson.M{"guildId": guildID, "caseId": seq}, c); err != nil {
		return nil, err
	}

	return &c, nil
}

// GetCase returns one case by its sequential id
func GetCase(guildID string, caseID int) (*models.Case, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}

	c, err := dm.Get(bson.M{"guildId": guildID, "caseId": caseID})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

// GetGuildCases returns every case recorded for a guild
func GetGuildCases(guildID string) ([]*models.Case, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"guildId": guildID})
}

// GetUserCases returns every case recorded against a user in a guild
func GetUserCases(guildID, userID string) ([]*models.Case, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"guildId": guildID, "userId": userID})
}
