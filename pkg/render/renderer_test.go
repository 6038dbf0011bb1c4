// pkg/render/renderer_test.go
package render

import (
	"testing"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

func TestNullScene_ImplementsSceneInterface(t *testing.T) {
	var _ entity.Scene = NewNullScene()
}

func TestNullScene_CreateMesh_ReturnsDistinctHandles(t *testing.T) {
	scene := NewNullScene()

	ship := scene.CreateShipMesh()
	aircraft := scene.CreateAircraftMesh()

	if ship == nil || aircraft == nil {
		t.Fatal("expected non-nil handles")
	}
	if ship == aircraft {
		t.Error("expected distinct handles for ship and aircraft")
	}
}

func TestNullScene_AllMethods_AcceptAnyInput(t *testing.T) {
	scene := NewNullScene()

	h := scene.CreateAircraftMesh()
	scene.PlaceMesh(h, physics.Vector2D{X: 1, Y: 2}, 0.5)
	scene.PlaceMesh(nil, physics.Vector2D{}, 0)
	scene.PlaceGoalMarker(physics.Vector2D{X: -3, Y: 4})
	scene.DestroyMesh(h)
	scene.DestroyMesh(nil)
}

func TestNullScene_ScreenToWorld_PassesThrough(t *testing.T) {
	scene := NewNullScene()

	pos := physics.Vector2D{X: 17, Y: -9}
	if got := scene.ScreenToWorld(pos); got != pos {
		t.Errorf("ScreenToWorld() = %v, want %v", got, pos)
	}
}
