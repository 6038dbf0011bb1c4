// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// NullScene is a no-op implementation of entity.Scene. It keeps the
// simulation fully runnable headless; every call is logged at debug
// level so flight behavior can still be traced.
type NullScene struct {
	logger *logging.Logger
}

// NewNullScene creates a new NullScene with structured logging.
func NewNullScene() *NullScene {
	return &NullScene{
		logger: logging.NewLogger(),
	}
}

type nullHandle struct {
	kind string
}

// CreateShipMesh implements entity.Scene.
func (s *NullScene) CreateShipMesh() entity.Handle {
	s.logger.Debug(context.Background(), "CreateShipMesh called")
	return &nullHandle{kind: "ship"}
}

// CreateAircraftMesh implements entity.Scene.
func (s *NullScene) CreateAircraftMesh() entity.Handle {
	s.logger.Debug(context.Background(), "CreateAircraftMesh called")
	return &nullHandle{kind: "aircraft"}
}

// DestroyMesh implements entity.Scene.
func (s *NullScene) DestroyMesh(h entity.Handle) {
	ctx := context.Background()
	if h == nil {
		s.logger.Debug(ctx, "DestroyMesh called with nil handle")
		return
	}
	s.logger.Debug(ctx, "DestroyMesh called", "kind", h.(*nullHandle).kind)
}

// PlaceMesh implements entity.Scene.
func (s *NullScene) PlaceMesh(h entity.Handle, pos physics.Vector2D, angle float64) {
	ctx := context.Background()
	if h == nil {
		s.logger.Debug(ctx, "PlaceMesh called with nil handle")
		return
	}
	s.logger.Debug(ctx, "PlaceMesh called",
		"kind", h.(*nullHandle).kind,
		"x", pos.X,
		"y", pos.Y,
		"angle", angle,
	)
}

// PlaceGoalMarker implements entity.Scene.
func (s *NullScene) PlaceGoalMarker(pos physics.Vector2D) {
	s.logger.Debug(context.Background(), "PlaceGoalMarker called",
		"x", pos.X,
		"y", pos.Y,
	)
}

// ScreenToWorld implements entity.Scene. With no window there is no
// camera transform; coordinates pass through unchanged.
func (s *NullScene) ScreenToWorld(pos physics.Vector2D) physics.Vector2D {
	return pos
}
