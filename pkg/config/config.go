// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-carrier/pkg/entity"
)

// GameConfig contains the full configuration for a carrier scene
type GameConfig struct {
	Ship     entity.ShipStats   `json:"ship"`
	Aircraft entity.FlightStats `json:"aircraft"`

	// MaxFleetSize bounds active aircraft plus refill cooldowns.
	MaxFleetSize int `json:"maxFleetSize"`

	Display DisplayConfig `json:"display"`
}

// DisplayConfig contains window settings for the graphical client
type DisplayConfig struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Title      string  `json:"title"`
	Fullscreen bool    `json:"fullscreen"`
	WorldScale float64 `json:"worldScale"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the simulation cannot run
// with. It returns the first problem found.
func (c *GameConfig) Validate() error {
	if c.Ship.LinearSpeed <= 0 {
		return fmt.Errorf("ship linearSpeed must be positive, got %v", c.Ship.LinearSpeed)
	}
	if c.Ship.AngularSpeed <= 0 {
		return fmt.Errorf("ship angularSpeed must be positive, got %v", c.Ship.AngularSpeed)
	}
	if c.Ship.Size <= 0 {
		return fmt.Errorf("ship size must be positive, got %v", c.Ship.Size)
	}
	if c.Ship.RefillTime < 0 {
		return fmt.Errorf("ship refillTime must not be negative, got %v", c.Ship.RefillTime)
	}
	if c.Aircraft.TargetRadius <= 0 {
		return fmt.Errorf("aircraft targetRadius must be positive, got %v", c.Aircraft.TargetRadius)
	}
	if c.Aircraft.LinearAcceleration <= 0 {
		return fmt.Errorf("aircraft linearAcceleration must be positive, got %v", c.Aircraft.LinearAcceleration)
	}
	if c.Aircraft.LinearSpeed <= 0 {
		return fmt.Errorf("aircraft linearSpeed must be positive, got %v", c.Aircraft.LinearSpeed)
	}
	if c.Aircraft.AngularSpeed <= 0 {
		return fmt.Errorf("aircraft angularSpeed must be positive, got %v", c.Aircraft.AngularSpeed)
	}
	if c.Aircraft.TakeoffTime < 0 {
		return fmt.Errorf("aircraft takeoffTime must not be negative, got %v", c.Aircraft.TakeoffTime)
	}
	if c.Aircraft.LiveTime <= c.Aircraft.TakeoffTime {
		return fmt.Errorf("aircraft liveTime (%v) must exceed takeoffTime (%v)",
			c.Aircraft.LiveTime, c.Aircraft.TakeoffTime)
	}
	if c.MaxFleetSize < 1 {
		return fmt.Errorf("maxFleetSize must be at least 1, got %d", c.MaxFleetSize)
	}
	return nil
}

// DefaultConfig returns the default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Ship: entity.ShipStats{
			LinearSpeed:  0.5,
			AngularSpeed: 0.5,
			Size:         0.2,
			RefillTime:   10,
		},
		Aircraft: entity.FlightStats{
			TargetRadius:       1.5,
			LinearAcceleration: 0.3,
			LinearSpeed:        2.5,
			AngularSpeed:       2.5,
			TakeoffTime:        3,
			LiveTime:           50,
		},
		MaxFleetSize: 5,
		Display: DisplayConfig{
			Width:      1024,
			Height:     768,
			Title:      "Carrier",
			Fullscreen: false,
			WorldScale: 64,
		},
	}
}
