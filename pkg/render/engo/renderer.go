// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// EngoScene implements entity.Scene on top of the Engo render system.
// Every handle it gives out owns one ECS entity; placing the handle
// moves that entity, destroying the handle removes it from the world.
type EngoScene struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	camera       *CameraSystem

	assets *AssetManager

	sprites []*spriteHandle
	goal    *spriteHandle
}

// spriteHandle is the concrete entity.Handle this backend hands out.
// The components are owned here so placement can mutate them directly
// instead of querying the ECS.
type spriteHandle struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent

	// world position of the sprite, re-projected every frame so camera
	// movement between simulation ticks stays smooth
	worldPos   physics.Vector2D
	worldAngle float64
}

// NewEngoScene creates a scene backed by the given ECS world and camera
func NewEngoScene(world *ecs.World, camera *CameraSystem) *EngoScene {
	return &EngoScene{
		world:  world,
		camera: camera,
		assets: NewAssetManager(),
	}
}

// Initialize sets up the render system and builds the sprites
func (s *EngoScene) Initialize() error {
	s.renderSystem = &common.RenderSystem{}
	s.world.AddSystem(s.renderSystem)

	return s.assets.LoadAssets()
}

// CreateShipMesh implements entity.Scene
func (s *EngoScene) CreateShipMesh() entity.Handle {
	return s.addSprite(s.assets.ShipSprite(), 24, 12, color.RGBA{200, 200, 210, 255})
}

// CreateAircraftMesh implements entity.Scene
func (s *EngoScene) CreateAircraftMesh() entity.Handle {
	return s.addSprite(s.assets.AircraftSprite(), 10, 10, color.RGBA{120, 200, 255, 255})
}

// DestroyMesh implements entity.Scene
func (s *EngoScene) DestroyMesh(h entity.Handle) {
	sprite, ok := h.(*spriteHandle)
	if !ok || sprite == nil {
		return
	}
	s.renderSystem.Remove(sprite.basic)

	for i, kept := range s.sprites {
		if kept == sprite {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			break
		}
	}
}

// PlaceMesh implements entity.Scene
func (s *EngoScene) PlaceMesh(h entity.Handle, pos physics.Vector2D, angle float64) {
	sprite, ok := h.(*spriteHandle)
	if !ok || sprite == nil {
		return
	}
	sprite.worldPos = pos
	sprite.worldAngle = angle
	s.project(sprite)
}

// PlaceGoalMarker implements entity.Scene
func (s *EngoScene) PlaceGoalMarker(pos physics.Vector2D) {
	if s.goal == nil {
		s.goal = s.addSprite(s.assets.GoalSprite(), 12, 12, color.RGBA{255, 180, 0, 255})
	}
	s.goal.worldPos = pos
	s.goal.worldAngle = 0
	s.project(s.goal)
}

// ScreenToWorld implements entity.Scene
func (s *EngoScene) ScreenToWorld(pos physics.Vector2D) physics.Vector2D {
	return s.camera.ScreenToWorld(pos)
}

// Sync re-projects every sprite through the camera. Called once per
// frame after the camera has moved.
func (s *EngoScene) Sync() {
	for _, sprite := range s.sprites {
		s.project(sprite)
	}
}

// addSprite creates an ECS entity with the drawable and registers it
// with the render system.
func (s *EngoScene) addSprite(drawable common.Drawable, width, height float32, tint color.Color) *spriteHandle {
	sprite := &spriteHandle{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: drawable,
			Color:    tint,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: 0, Y: 0},
			Width:    width,
			Height:   height,
		},
	}

	s.renderSystem.Add(&sprite.basic, &sprite.render, &sprite.space)
	s.sprites = append(s.sprites, sprite)
	return sprite
}

// project moves the sprite's ECS components to the screen-space pose of
// its world position. SpaceComponent rotation is in degrees and screen Y
// grows downward, so the world heading negates.
func (s *EngoScene) project(sprite *spriteHandle) {
	screen := s.camera.WorldToScreen(sprite.worldPos)

	sprite.space.Position = engo.Point{
		X: float32(screen.X) - sprite.space.Width/2,
		Y: float32(screen.Y) - sprite.space.Height/2,
	}
	sprite.space.Rotation = -float32(sprite.worldAngle * 180 / math.Pi)
}
