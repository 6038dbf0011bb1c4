// pkg/entity/ship.go
package entity

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

// Key identifies one of the carrier's movement inputs
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	keyCount
)

// ErrInvalidKey is returned when an input event carries an unknown key
// identifier. This is a programming error in the host, not a runtime
// condition; it is rejected so it can never index outside the input array.
var ErrInvalidKey = errors.New("invalid input key")

// ShipStats contains the tuning parameters for the carrier
type ShipStats struct {
	LinearSpeed  float64 `json:"linearSpeed"`
	AngularSpeed float64 `json:"angularSpeed"`
	// Size stands in for the hull collider the scene layer doesn't
	// expose; it doubles as the docking distance for returning aircraft.
	Size       float64 `json:"size"`
	RefillTime float64 `json:"refillTime"`
}

// ShipFrame is a read-only snapshot of the carrier for one tick.
// Aircraft steer against this instead of reaching into the Ship itself,
// which keeps the flight controller testable in isolation.
type ShipFrame struct {
	Position physics.Vector2D
	Angle    float64
	Size     float64

	// DeltaRotation and DeltaTranslation are the heading and position
	// changes the carrier applied this tick, already reflected in Angle
	// and Position. Aircraft on deck are carried by exactly these deltas.
	DeltaRotation    float64
	DeltaTranslation physics.Vector2D
}

// Ship represents the player-controlled carrier
type Ship struct {
	BaseEntity
	Stats ShipStats

	input [keyCount]bool

	deltaRotation    float64
	deltaTranslation physics.Vector2D

	scene  Scene
	handle Handle
}

// NewShip creates the carrier at the origin with the given stats and
// allocates its visual handle from the scene.
func NewShip(id ID, stats ShipStats, scene Scene) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			ID:     id,
			Active: true,
		},
		Stats:  stats,
		scene:  scene,
		handle: scene.CreateShipMesh(),
	}
}

// KeyPressed marks an input key as held
func (s *Ship) KeyPressed(key Key) error {
	if key < 0 || key >= keyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, int(key))
	}
	s.input[key] = true
	return nil
}

// KeyReleased marks an input key as no longer held
func (s *Ship) KeyReleased(key Key) error {
	if key < 0 || key >= keyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, int(key))
	}
	s.input[key] = false
	return nil
}

// Update advances the carrier by one tick from the held-key state and
// records the deltas handed to each aircraft afterwards. Forward wins
// over backward; turning only engages while moving linearly.
func (s *Ship) Update(deltaTime float64) {
	linearSpeed := 0.0
	angularSpeed := 0.0

	if s.input[KeyForward] {
		linearSpeed = s.Stats.LinearSpeed
	} else if s.input[KeyBackward] {
		linearSpeed = -s.Stats.LinearSpeed
	}

	if s.input[KeyLeft] && linearSpeed != 0 {
		angularSpeed = s.Stats.AngularSpeed
	} else if s.input[KeyRight] && linearSpeed != 0 {
		angularSpeed = -s.Stats.AngularSpeed
	}

	s.deltaRotation = angularSpeed * deltaTime
	s.Rotation += s.deltaRotation

	s.deltaTranslation = physics.FromAngle(s.Rotation, linearSpeed*deltaTime)
	s.Position = s.Position.Add(s.deltaTranslation)

	s.scene.PlaceMesh(s.handle, s.Position, s.Rotation)
}

// Frame returns this tick's read-only snapshot for aircraft updates.
// Only valid after Update has run for the current tick.
func (s *Ship) Frame() ShipFrame {
	return ShipFrame{
		Position:         s.Position,
		Angle:            s.Rotation,
		Size:             s.Stats.Size,
		DeltaRotation:    s.deltaRotation,
		DeltaTranslation: s.deltaTranslation,
	}
}

// Destroy releases the carrier's visual handle and deactivates it
func (s *Ship) Destroy() {
	if s.handle != nil {
		s.scene.DestroyMesh(s.handle)
		s.handle = nil
	}
	s.Active = false
}
