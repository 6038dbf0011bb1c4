// pkg/engine/game.go
package engine

import (
	"context"
	"errors"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// MouseButton identifies a pointer action
type MouseButton int

const (
	// MouseButtonPrimary sets the shared goal position.
	MouseButtonPrimary MouseButton = iota
	// MouseButtonSecondary requests an aircraft launch.
	MouseButtonSecondary
)

var (
	// ErrAlreadyInitialized is returned when Init is called twice.
	ErrAlreadyInitialized = errors.New("game already initialized")
	// ErrNotInitialized is returned when the game is used before Init.
	ErrNotInitialized = errors.New("game not initialized")
)

// Game is the fleet manager: it owns the carrier, the active aircraft,
// the refill cooldowns and the shared goal position, and exposes the
// tick and input entry points the host loop drives.
//
// Game is not safe for concurrent use. The simulation is tick-ordered by
// design: within Update the carrier moves first and every aircraft then
// consumes that tick's carrier deltas. A host on a multi-threaded
// platform must serialize all calls to preserve that ordering.
type Game struct {
	Config *config.GameConfig

	scene    entity.Scene
	eventBus *event.Bus
	logger   *logging.Logger

	// ctx carries the correlation ID shared by every log entry this
	// game instance emits.
	ctx context.Context

	ship         *entity.Ship
	aircraft     []*entity.Aircraft
	refillTimers []float64

	goal     physics.Vector2D
	liveTime float64

	initialized bool
}

// NewGame creates a fleet manager for the given configuration, scene and
// event bus. Call Init before the first Update.
func NewGame(cfg *config.GameConfig, scene entity.Scene, bus *event.Bus) *Game {
	return &Game{
		Config:       cfg,
		scene:        scene,
		eventBus:     bus,
		logger:       logging.NewLogger(),
		ctx:          logging.WithCorrelationID(context.Background(), ""),
		aircraft:     make([]*entity.Aircraft, 0, cfg.MaxFleetSize),
		refillTimers: make([]float64, 0, cfg.MaxFleetSize),
	}
}

// Init creates the carrier and marks the game live. Calling Init on an
// initialized game is a contract violation.
func (g *Game) Init() error {
	if g.initialized {
		return ErrAlreadyInitialized
	}

	g.ship = entity.NewShip(entity.GenerateID(), g.Config.Ship, g.scene)
	g.initialized = true

	g.eventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
	g.logger.Info(g.ctx, "game initialized",
		"ship_id", uint64(g.ship.GetID()),
		"max_fleet", g.Config.MaxFleetSize,
	)
	return nil
}

// Deinit tears the scene state down again. Calling Deinit on an
// uninitialized game is a contract violation.
func (g *Game) Deinit() error {
	if !g.initialized {
		return ErrNotInitialized
	}

	for _, a := range g.aircraft {
		a.Destroy()
	}
	g.aircraft = g.aircraft[:0]
	g.refillTimers = g.refillTimers[:0]

	g.ship.Destroy()
	g.ship = nil
	g.initialized = false

	g.eventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
	return nil
}

// Update advances the simulation by one tick. Order matters and is part
// of the contract: the carrier integrates its own motion first, expired
// refill cooldowns are released, then every aircraft consumes this
// tick's carrier deltas. Aircraft that report completion are removed,
// their handle destroyed and a cooldown started in the same pass.
func (g *Game) Update(dt float64) {
	if !g.initialized {
		return
	}

	g.ship.Update(dt)
	frame := g.ship.Frame()

	g.expireRefillTimers()
	g.updateAircraft(dt, frame)

	g.liveTime += dt
}

// expireRefillTimers frees fleet slots whose cooldown has run out
func (g *Game) expireRefillTimers() {
	kept := g.refillTimers[:0]
	for _, stamp := range g.refillTimers {
		if g.liveTime >= stamp+g.Config.Ship.RefillTime {
			continue
		}
		kept = append(kept, stamp)
	}
	g.refillTimers = kept
}

// updateAircraft ticks every active aircraft and recovers the finished ones
func (g *Game) updateAircraft(dt float64, frame entity.ShipFrame) {
	kept := g.aircraft[:0]
	for _, a := range g.aircraft {
		if a.Update(dt, frame, g.goal) {
			kept = append(kept, a)
			continue
		}

		id := a.GetID()
		flightTime := a.Lifetime()
		a.Destroy()
		g.refillTimers = append(g.refillTimers, g.liveTime)

		g.logger.Info(g.ctx, "aircraft recovered",
			"aircraft_id", uint64(id),
			"flight_time", flightTime,
		)
		g.eventBus.Publish(event.NewFleetEvent(
			event.AircraftRecovered, g, uint64(id),
			len(kept), len(g.refillTimers),
		))
	}
	// Clear the stale tail slots so removed aircraft aren't pinned.
	for i := len(kept); i < len(g.aircraft); i++ {
		g.aircraft[i] = nil
	}
	g.aircraft = kept
}

// KeyPressed marks a carrier movement key as held
func (g *Game) KeyPressed(key entity.Key) error {
	if !g.initialized {
		return ErrNotInitialized
	}
	return g.ship.KeyPressed(key)
}

// KeyReleased marks a carrier movement key as released
func (g *Game) KeyReleased(key entity.Key) error {
	if !g.initialized {
		return ErrNotInitialized
	}
	return g.ship.KeyReleased(key)
}

// MouseClicked handles a pointer action at a screen-space position. The
// primary button moves the shared goal, the secondary button requests a
// launch. A launch request with no free fleet slot is silently ignored.
func (g *Game) MouseClicked(screenPos physics.Vector2D, button MouseButton) {
	if !g.initialized {
		return
	}

	worldPos := g.scene.ScreenToWorld(screenPos)

	if button == MouseButtonPrimary {
		g.setGoal(worldPos)
		return
	}
	g.requestLaunch()
}

// setGoal moves the shared goal position every cruising aircraft orbits
func (g *Game) setGoal(pos physics.Vector2D) {
	g.goal = pos
	g.scene.PlaceGoalMarker(pos)

	g.eventBus.Publish(event.NewGoalEvent(g, pos))
	g.logger.Debug(g.ctx, "goal changed", "x", pos.X, "y", pos.Y)
}

// requestLaunch spawns a new aircraft on the carrier deck if the fleet
// has a free slot, counting both active aircraft and running cooldowns.
func (g *Game) requestLaunch() {
	if len(g.aircraft)+len(g.refillTimers) >= g.Config.MaxFleetSize {
		g.logger.Debug(g.ctx, "launch denied, fleet exhausted",
			"active", len(g.aircraft),
			"cooldowns", len(g.refillTimers),
		)
		g.eventBus.Publish(event.NewFleetEvent(
			event.LaunchDenied, g, 0,
			len(g.aircraft), len(g.refillTimers),
		))
		return
	}

	a := entity.NewAircraft(
		entity.GenerateID(),
		g.ship.Position,
		g.ship.Rotation,
		g.Config.Aircraft,
		g.scene,
	)
	g.aircraft = append(g.aircraft, a)

	g.logger.Info(g.ctx, "aircraft launched",
		"aircraft_id", uint64(a.GetID()),
		"active", len(g.aircraft),
	)
	g.eventBus.Publish(event.NewFleetEvent(
		event.AircraftLaunched, g, uint64(a.GetID()),
		len(g.aircraft), len(g.refillTimers),
	))
}

// GoalPosition returns the current shared goal position
func (g *Game) GoalPosition() physics.Vector2D {
	return g.goal
}

// Ship returns the carrier, or nil before Init
func (g *Game) Ship() *entity.Ship {
	return g.ship
}

// Aircraft returns the active aircraft in launch order
func (g *Game) Aircraft() []*entity.Aircraft {
	return g.aircraft
}

// ActiveCount returns the number of aircraft in flight
func (g *Game) ActiveCount() int {
	return len(g.aircraft)
}

// CooldownCount returns the number of fleet slots still refilling
func (g *Game) CooldownCount() int {
	return len(g.refillTimers)
}

// Lifetime returns the seconds the game has been running
func (g *Game) Lifetime() float64 {
	return g.liveTime
}
