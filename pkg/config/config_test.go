package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if config.Ship.LinearSpeed != 0.5 {
		t.Errorf("Expected ship LinearSpeed 0.5, got %f", config.Ship.LinearSpeed)
	}
	if config.Ship.RefillTime != 10 {
		t.Errorf("Expected ship RefillTime 10, got %f", config.Ship.RefillTime)
	}
	if config.Aircraft.LinearSpeed != 2.5 {
		t.Errorf("Expected aircraft LinearSpeed 2.5, got %f", config.Aircraft.LinearSpeed)
	}
	if config.Aircraft.TakeoffTime != 3 {
		t.Errorf("Expected aircraft TakeoffTime 3, got %f", config.Aircraft.TakeoffTime)
	}
	if config.Aircraft.LiveTime != 50 {
		t.Errorf("Expected aircraft LiveTime 50, got %f", config.Aircraft.LiveTime)
	}
	if config.MaxFleetSize != 5 {
		t.Errorf("Expected MaxFleetSize 5, got %d", config.MaxFleetSize)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig failed validation: %v", err)
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	original := DefaultConfig()
	original.Aircraft.LiveTime = 25
	original.MaxFleetSize = 3

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Aircraft.LiveTime != 25 {
		t.Errorf("Expected aircraft LiveTime 25, got %f", loaded.Aircraft.LiveTime)
	}
	if loaded.MaxFleetSize != 3 {
		t.Errorf("Expected MaxFleetSize 3, got %d", loaded.MaxFleetSize)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for invalid JSON, got nil")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{
			name:    "valid_default",
			mutate:  func(c *GameConfig) {},
			wantErr: "",
		},
		{
			name:    "zero_ship_speed",
			mutate:  func(c *GameConfig) { c.Ship.LinearSpeed = 0 },
			wantErr: "linearSpeed",
		},
		{
			name:    "negative_refill",
			mutate:  func(c *GameConfig) { c.Ship.RefillTime = -1 },
			wantErr: "refillTime",
		},
		{
			name:    "zero_acceleration",
			mutate:  func(c *GameConfig) { c.Aircraft.LinearAcceleration = 0 },
			wantErr: "linearAcceleration",
		},
		{
			name:    "live_time_before_takeoff",
			mutate:  func(c *GameConfig) { c.Aircraft.LiveTime = 2; c.Aircraft.TakeoffTime = 3 },
			wantErr: "liveTime",
		},
		{
			name:    "zero_fleet",
			mutate:  func(c *GameConfig) { c.MaxFleetSize = 0 },
			wantErr: "maxFleetSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tt.wantErr)
			}
		})
	}
}
