// pkg/render/engo/scene.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/event"
)

// GameScene is the Engo scene hosting the carrier simulation. Setup
// builds the render backend, constructs the game against it and wires
// the per-frame systems; from then on the simulation advances inside
// the Engo frame loop.
type GameScene struct {
	config   *config.GameConfig
	eventBus *event.Bus

	world *ecs.World

	renderer *EngoScene
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem

	game *engine.Game
}

// NewGameScene creates a new game scene
func NewGameScene(cfg *config.GameConfig, eventBus *event.Bus) *GameScene {
	return &GameScene{
		config:   cfg,
		eventBus: eventBus,
		world:    &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// All sprites are generated procedurally in Setup.
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}
	scene.world.AddSystem(&common.MouseSystem{})

	scene.camera = NewCameraSystem(scene.config.Display.WorldScale)
	scene.renderer = NewEngoScene(scene.world, scene.camera)
	if err := scene.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	scene.game = engine.NewGame(scene.config, scene.renderer, scene.eventBus)
	if err := scene.game.Init(); err != nil {
		panic("failed to initialize game: " + err.Error())
	}

	scene.world.AddSystem(scene.camera)
	scene.world.AddSystem(&simulationSystem{
		game:     scene.game,
		camera:   scene.camera,
		renderer: scene.renderer,
	})

	scene.input = NewInputSystem(scene.game)
	scene.world.AddSystem(scene.input)

	scene.hud = NewHUDSystem(scene.game, scene.renderer.renderSystem)
	scene.hud.SetFont(scene.renderer.assets.HUDFont())
	scene.world.AddSystem(scene.hud)

	SetupInputBindings()
	SetupCameraControls()

	scene.subscribeToEvents()
}

// subscribeToEvents routes fleet events into HUD notices
func (scene *GameScene) subscribeToEvents() {
	scene.eventBus.Subscribe(event.AircraftLaunched, func(e event.Event) {
		if fleet, ok := e.(*event.FleetEvent); ok {
			scene.hud.AddNotice(fmt.Sprintf("Aircraft %d launched", fleet.AircraftID))
		}
	})
	scene.eventBus.Subscribe(event.AircraftRecovered, func(e event.Event) {
		if fleet, ok := e.(*event.FleetEvent); ok {
			scene.hud.AddNotice(fmt.Sprintf("Aircraft %d recovered", fleet.AircraftID))
		}
	})
	scene.eventBus.Subscribe(event.LaunchDenied, func(e event.Event) {
		scene.hud.AddWarning("Launch denied: no aircraft ready")
	})
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	if scene.game != nil {
		_ = scene.game.Deinit()
	}
}

// simulationSystem drives the game from the Engo frame loop: one
// simulation tick per frame, then the camera re-follows the carrier and
// every sprite is re-projected.
type simulationSystem struct {
	game     *engine.Game
	camera   *CameraSystem
	renderer *EngoScene
}

// Update satisfies the ecs.System interface
func (ss *simulationSystem) Update(dt float32) {
	ss.game.Update(float64(dt))

	if ship := ss.game.Ship(); ship != nil {
		ss.camera.SetTarget(ship.Position)
	}
	ss.renderer.Sync()
}

// Remove satisfies the ecs.System interface
func (ss *simulationSystem) Remove(basic ecs.BasicEntity) {
	// Not used for simulation system
}
