// cmd/client/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/logging"
	engorender "github.com/opd-ai/go-carrier/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	flag.Parse()

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		gameConfig = config.DefaultConfig()
	} else {
		var err error
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(logging.WrapError(err, "failed to load configuration from %s", *configPath))
		}
	}

	if *width > 0 {
		gameConfig.Display.Width = *width
	}
	if *height > 0 {
		gameConfig.Display.Height = *height
	}
	if *fullscreen {
		gameConfig.Display.Fullscreen = true
	}

	// Create event bus
	eventBus := event.NewEventBus()

	eventBus.Subscribe(event.AircraftLaunched, func(e event.Event) {
		if fleet, ok := e.(*event.FleetEvent); ok {
			log.Printf("Aircraft %d launched (%d in flight, %d refitting)",
				fleet.AircraftID, fleet.ActiveCount, fleet.CooldownCount)
		}
	})
	eventBus.Subscribe(event.AircraftRecovered, func(e event.Event) {
		if fleet, ok := e.(*event.FleetEvent); ok {
			log.Printf("Aircraft %d recovered (%d in flight, %d refitting)",
				fleet.AircraftID, fleet.ActiveCount, fleet.CooldownCount)
		}
	})
	eventBus.Subscribe(event.GoalChanged, func(e event.Event) {
		if goal, ok := e.(*event.GoalEvent); ok {
			log.Printf("Goal moved to (%.1f, %.1f)", goal.Position.X, goal.Position.Y)
		}
	})

	// Create the game scene and hand control to Engo
	scene := engorender.NewGameScene(gameConfig, eventBus)

	opts := engo.RunOptions{
		Title:      gameConfig.Display.Title,
		Width:      gameConfig.Display.Width,
		Height:     gameConfig.Display.Height,
		Fullscreen: gameConfig.Display.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
