// Package database provides blacklist operations backed by the cache and DB.
package database

import (
	"errors"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrBlacklistManagerNotInitialized = errors.New("blacklist data manager not initialized")
	ErrBlacklistEntryNotFound         = errors.New("entrada de blacklist no encontrada")
	ErrBlacklistEntryExists           = errors.New("la entrada ya existe en la blacklist")
)

func getBlacklistManager() (*DataManager[models.Blacklist], error) {
	if GlobalBlacklistDM == nil {
		return nil, ErrBlacklistManagerNotInitialized
	}
	return GlobalBlacklistDM, nil
}

// AddToBlacklist adds a user or guild to the blacklist
func AddToBlacklist(id string, blacklistType models.BlacklistType, reason string, createdBy string) (*models.Blacklist, error) {
	cache := GetBlacklistCache()

	// Check cache first for duplicates (fast check)
	if _, exists := cache.Get(id); exists {
		return nil, ErrBlacklistEntryExists
	}

	dm, err := getBlacklistManager()
	if err != nil {
		return nil, err
	}

	entry := models.Blacklist{
		ID:        id,
		Type:      blacklistType,
		Reason:    reason,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	result, err := dm.Set(bson.M{"_id": id}, entry)
	if err != nil {
		return nil, err
	}

	// Update cache immediately
	if result != nil {
		cache.Add(result)
	} else {
		cache.Add(&entry)
		result = &entry
	}

	return result, nil
}

// RemoveFromBlacklist removes a user or guild from the blacklist
func RemoveFromBlacklist(id string) error {
	cache := GetBlacklistCache()

	// Check cache first
	if _, exists := cache.Get(id); !exists {
		return ErrBlacklistEntryNotFound
	}

	dm, err := getBlacklistManager()
	if err != nil {
		return err
	}

	if err := dm.Delete(bson.M{"_id": id}); err != nil {
		return err
	}

	// Update cache immediately
	cache.Remove(id)

	return nil
}

// GetBlacklistEntry gets a specific blacklist entry from cache
func GetBlacklistEntry(id string) (*models.Blacklist, error) {
	entry, exists := GetBlacklistCache().Get(id)
	if !exists {
		return nil, ErrBlacklistEntryNotFound
	}
	return entry, nil
}

// IsUserBlacklisted checks if a user is blacklisted (from cache - no DB delay)
func IsUserBlacklisted(userID string) (bool, *models.Blacklist) {
	return GetBlacklistCache().IsUserBlacklisted(userID)
}

// IsGuildBlacklisted checks if a guild is blacklisted (from cache - no DB delay)
func IsGuildBlacklisted(guildID string) (bool, *models.Blacklist) {
	return GetBlacklistCache().IsGuildBlacklisted(guildID)
}

// GetAllBlacklistEntries gets all blacklist entries from cache
func GetAllBlacklistEntries() []*models.Blacklist {
	return GetBlacklistCache().GetAll()
}

// GetBlacklistEntriesByType gets all blacklist entries of a specific type from cache
func GetBlacklistEntriesByType(blacklistType models.BlacklistType) []*models.Blacklist {
	return GetBlacklistCache().GetByType(blacklistType)
}
