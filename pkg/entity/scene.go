// pkg/entity/scene.go
package entity

import (
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// Handle is an opaque reference to a visual object owned by a Scene.
// Entities hold exactly one handle each and release it on destruction.
type Handle interface{}

// Scene is the presentation layer the simulation renders against. The
// core never draws anything itself; it creates handles, places them each
// tick and destroys them when the owning entity dies. Implementations
// live in pkg/render.
type Scene interface {
	// CreateShipMesh allocates a visual handle for the carrier.
	CreateShipMesh() Handle
	// CreateAircraftMesh allocates a visual handle for one aircraft.
	CreateAircraftMesh() Handle
	// DestroyMesh releases a handle. Destroying a nil handle is a no-op.
	DestroyMesh(h Handle)
	// PlaceMesh moves a handle to a world position and heading.
	PlaceMesh(h Handle, pos physics.Vector2D, angle float64)
	// PlaceGoalMarker moves the shared goal indicator.
	PlaceGoalMarker(pos physics.Vector2D)
	// ScreenToWorld converts a screen-space coordinate to world space.
	ScreenToWorld(pos physics.Vector2D) physics.Vector2D
}
