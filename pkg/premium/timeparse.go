package premium

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for duration specs that cannot be parsed.
var ErrInvalidDuration = errors.New("duración inválida, usa formatos como 30d, 12h, 1y o unlimited")

// unlimitedSpecs are the aliases for a permanent grant.
var unlimitedSpecs = map[string]bool{
	"unlimited": true,
	"forever":   true,
	"perm":      true,
	"permanent": true,
}

// ParseDuration converts a duration spec ("30d", "12h", "45m", "1y",
// "unlimited") into an absolute expiry instant. A nil time with nil error
// means the grant never expires. The spec is re-parsed at redemption time so
// shelf time of a license is never charged to the redeeming guild.
func ParseDuration(spec string) (*time.Time, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if unlimitedSpecs[spec] {
		return nil, nil
	}
	if len(spec) < 2 {
		return nil, ErrInvalidDuration
	}

	amount, err := strconv.Atoi(spec[:len(spec)-1])
	if err != nil || amount <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now().UTC()
	var expiry time.Time
	switch spec[len(spec)-1] {
	case 'm':
		expiry = now.Add(time.Duration(amount) * time.Minute)
	case 'h':
		expiry = now.Add(time.Duration(amount) * time.Hour)
	case 'd':
		expiry = now.AddDate(0, 0, amount)
	case 'y':
		expiry = now.AddDate(amount, 0, 0)
	default:
		return nil, ErrInvalidDuration
	}
	return &expiry, nil
}

// FormatExpiry renders a stored expiry timestamp for user-facing messages.
func FormatExpiry(iso *string) string {
	if iso == nil {
		return "Ilimitado"
	}
	t, err := time.Parse(time.RFC3339, *iso)
	if err != nil {
		return *iso
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

func isoOf(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
