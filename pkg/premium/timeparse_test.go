package premium

import (
	"testing"
	"time"
)

func TestParseDurationUnlimited(t *testing.T) {
	for _, spec := range []string{"unlimited", "forever", "perm", "permanent", " PERMANENT "} {
		t.Run(spec, func(t *testing.T) {
			expiry, err := ParseDuration(spec)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", spec, err)
			}
			if expiry != nil {
				t.Errorf("ParseDuration(%q) = %v, want nil (never expires)", spec, expiry)
			}
		})
	}
}

func TestParseDurationUnits(t *testing.T) {
	tests := []struct {
		spec string
		min  time.Duration
		max  time.Duration
	}{
		{"45m", 44 * time.Minute, 46 * time.Minute},
		{"12h", 11 * time.Hour, 13 * time.Hour},
		{"30d", 29 * 24 * time.Hour, 31 * 24 * time.Hour},
		{"1y", 360 * 24 * time.Hour, 370 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			expiry, err := ParseDuration(tt.spec)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", tt.spec, err)
			}
			if expiry == nil {
				t.Fatalf("ParseDuration(%q) = nil, want expiry", tt.spec)
			}
			delta := time.Until(*expiry)
			if delta < tt.min || delta > tt.max {
				t.Errorf("ParseDuration(%q) expires in %v, want between %v and %v", tt.spec, delta, tt.min, tt.max)
			}
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, spec := range []string{"", "d", "30", "abc", "-5d", "0h", "10w"} {
		t.Run("invalid_"+spec, func(t *testing.T) {
			if _, err := ParseDuration(spec); err == nil {
				t.Errorf("ParseDuration(%q) = nil error, want ErrInvalidDuration", spec)
			}
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	if got := FormatExpiry(nil); got != "Ilimitado" {
		t.Errorf("FormatExpiry(nil) = %q", got)
	}

	iso := "2026-03-01T12:30:00Z"
	if got := FormatExpiry(&iso); got != "2026-03-01 12:30 UTC" {
		t.Errorf("FormatExpiry(%q) = %q", iso, got)
	}
}
