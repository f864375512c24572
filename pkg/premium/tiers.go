package premium

// Tiers lists the premium tiers in ascending order.
var Tiers = []string{"Gold", "Platinum", "Enterprise"}

// TierFeatures maps each tier to the features it unlocks, used by the
// /premium features command and the web API.
var TierFeatures = map[string]string{
	"Gold":       "Embeds avanzados",
	"Platinum":   "Widgets de dashboard + analíticas",
	"Enterprise": "Analíticas completas + marca blanca",
}

// ValidTier reports whether name is a known premium tier.
func ValidTier(name string) bool {
	for _, t := range Tiers {
		if t == name {
			return true
		}
	}
	return false
}
