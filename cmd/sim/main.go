// cmd/sim/main.go
// Headless carrier simulation: runs a scripted sortie against the
// terminal scene and dumps the sea picture once a second.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
	"github.com/opd-ai/go-carrier/pkg/render"
)

func main() {
	configPath, duration, tickRate := parseCommandLineFlags()

	log.Println("Starting headless carrier simulation...")

	gameConfig := loadConfiguration(configPath)
	eventBus := event.NewEventBus()
	subscribeFleetEvents(eventBus)

	scene := render.NewTerminalScene(72, 24, 0.5)
	game := engine.NewGame(gameConfig, scene, eventBus)
	if err := game.Init(); err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer func() {
		if err := game.Deinit(); err != nil {
			log.Printf("Teardown failed: %v", err)
		}
	}()

	runSortie(game, scene, duration, tickRate)
}

// parseCommandLineFlags parses and returns the simulation parameters
func parseCommandLineFlags() (string, time.Duration, int) {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	duration := flag.Duration("duration", 75*time.Second, "Simulated time to run")
	tickRate := flag.Int("tick-rate", 30, "Simulation ticks per second")
	flag.Parse()
	return *configPath, *duration, *tickRate
}

// loadConfiguration loads the config file, falling back to defaults
func loadConfiguration(configPath string) *config.GameConfig {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		return config.DefaultConfig()
	}

	gameConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal(logging.WrapError(err, "failed to load configuration from %s", configPath))
	}
	return gameConfig
}

// subscribeFleetEvents logs the fleet lifecycle as it happens
func subscribeFleetEvents(eventBus *event.Bus) {
	eventBus.Subscribe(event.AircraftLaunched, func(e event.Event) {
		if fleet, ok := e.(*event.FleetEvent); ok {
			log.Printf("Aircraft %d launched (%d in flight)", fleet.AircraftID, fleet.ActiveCount)
		}
	})
	eventBus.Subscribe(event.AircraftRecovered, func(e event.Event) {
		if fleet, ok := e.(*event.FleetEvent); ok {
			log.Printf("Aircraft %d recovered (%d refitting)", fleet.AircraftID, fleet.CooldownCount)
		}
	})
	eventBus.Subscribe(event.LaunchDenied, func(e event.Event) {
		log.Printf("Launch denied: fleet exhausted")
	})
}

// sortieAction is one scripted input at a simulated time
type sortieAction struct {
	at     time.Duration
	action func(game *engine.Game, scene *render.TerminalScene)
}

// sortieScript steers the carrier, plants a goal and launches a small
// strike package, then moves the goal mid-flight.
var sortieScript = []sortieAction{
	{1 * time.Second, func(g *engine.Game, s *render.TerminalScene) {
		clickWorld(g, s, physics.Vector2D{X: 8, Y: 5}, engine.MouseButtonPrimary)
	}},
	{2 * time.Second, func(g *engine.Game, s *render.TerminalScene) {
		clickWorld(g, s, physics.Vector2D{}, engine.MouseButtonSecondary)
	}},
	{4 * time.Second, func(g *engine.Game, s *render.TerminalScene) {
		clickWorld(g, s, physics.Vector2D{}, engine.MouseButtonSecondary)
	}},
	{5 * time.Second, func(g *engine.Game, s *render.TerminalScene) {
		if err := g.KeyPressed(entity.KeyForward); err != nil {
			log.Printf("Input failed: %v", err)
		}
	}},
	{20 * time.Second, func(g *engine.Game, s *render.TerminalScene) {
		if err := g.KeyReleased(entity.KeyForward); err != nil {
			log.Printf("Input failed: %v", err)
		}
	}},
	{30 * time.Second, func(g *engine.Game, s *render.TerminalScene) {
		clickWorld(g, s, physics.Vector2D{X: -6, Y: -4}, engine.MouseButtonPrimary)
	}},
}

// clickWorld aims a mouse click at a world position through the
// terminal scene's projection.
func clickWorld(game *engine.Game, scene *render.TerminalScene, worldPos physics.Vector2D, button engine.MouseButton) {
	game.MouseClicked(scene.WorldToScreen(worldPos), button)
}

// runSortie drives the fixed-step loop until the simulated duration has
// elapsed or the process is interrupted.
func runSortie(game *engine.Game, scene *render.TerminalScene, duration time.Duration, tickRate int) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	dt := 1.0 / float64(tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	nextAction := 0
	lastFrame := time.Duration(0)

	for {
		select {
		case <-sigChan:
			log.Println("Interrupted, shutting down...")
			return
		case <-ticker.C:
			simTime := time.Duration(game.Lifetime() * float64(time.Second))
			if simTime >= duration {
				log.Printf("Sortie complete after %.0fs", game.Lifetime())
				return
			}

			for nextAction < len(sortieScript) && simTime >= sortieScript[nextAction].at {
				sortieScript[nextAction].action(game, scene)
				nextAction++
			}

			game.Update(dt)

			if simTime-lastFrame >= time.Second {
				lastFrame = simTime
				scene.SetCenter(game.Ship().Position)
				scene.Render(os.Stdout)
				log.Printf("T+%.0fs  aircraft %d in flight, %d refitting",
					game.Lifetime(), game.ActiveCount(), game.CooldownCount())
			}
		}
	}
}
