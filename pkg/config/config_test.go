package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	resetForTesting()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "data")
	}
	if cfg.DBName != "StaffBot" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "StaffBot")
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3000")
	}
	if cfg.IsProd() {
		t.Error("IsProd() = true, want false for the dev default")
	}
}

func TestOwnerIDs(t *testing.T) {
	resetForTesting()
	t.Setenv("ownerIds", "111, 222,,333 ")

	cfg := Get()
	want := []string{"111", "222", "333"}
	if len(cfg.OwnerIDs) != len(want) {
		t.Fatalf("OwnerIDs = %v, want %v", cfg.OwnerIDs, want)
	}
	for i, id := range want {
		if cfg.OwnerIDs[i] != id {
			t.Errorf("OwnerIDs[%d] = %q, want %q", i, cfg.OwnerIDs[i], id)
		}
	}

	if !cfg.IsOwner("222") {
		t.Error("IsOwner(222) = false, want true")
	}
	if cfg.IsOwner("999") {
		t.Error("IsOwner(999) = true, want false")
	}
}

func TestGetMatchesLoad(t *testing.T) {
	resetForTesting()

	loaded, _ := Load()
	if got := Get(); got != loaded {
		t.Error("Get() should return the same instance as Load()")
	}
}
