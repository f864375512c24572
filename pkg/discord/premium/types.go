package premium

import (
	"github.com/PancyStudios/StaffBotGo/pkg/config"
	ledger "github.com/PancyStudios/StaffBotGo/pkg/premium"
)

// Requirement defines the premium requirements for a command.
type Requirement struct {
	Guild bool
}

// IsNone returns true if no premium requirement is set.
func (r Requirement) IsNone() bool {
	return !r.Guild
}

// Predefined premium requirement helpers.
var (
	RequirementNone  = Requirement{}
	RequirementGuild = Requirement{Guild: true}
)

var manager *ledger.Manager

// Setup injects the entitlement ledger used by Check. Must be called before
// any premium-gated command can run.
func Setup(m *ledger.Manager) {
	manager = m
}

// Check verifies the premium status based on the requirement. Bot owners
// bypass the check.
func Check(req Requirement, userID, guildID string) (bool, string) {
	if req.IsNone() {
		return true, ""
	}
	if config.Get().IsOwner(userID) {
		return true, ""
	}

	if guildID == "" {
		return false, "Este comando solo puede usarse en un servidor."
	}
	if manager == nil {
		return false, "El sistema premium no está disponible en este momento."
	}

	ok, err := manager.IsActive(guildID)
	if err != nil {
		return false, "Error al verificar el premium del servidor."
	}
	if !ok {
		return false, "Este servidor necesita premium para usar este comando. Usa `/premium redeem` con una licencia válida."
	}
	return true, ""
}
