package engo

import (
	"image/color"
	"testing"
)

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager()

	if am == nil {
		t.Fatal("NewAssetManager() returned nil")
	}
	if am.ShipSprite() != nil {
		t.Error("expected nil ship sprite before loading")
	}
	if am.AircraftSprite() != nil {
		t.Error("expected nil aircraft sprite before loading")
	}
	if am.GoalSprite() != nil {
		t.Error("expected nil goal sprite before loading")
	}
	if am.GetBackgroundTexture() != nil {
		t.Error("expected nil background texture before loading")
	}
}

func TestLoadAssets_RequiresGL(t *testing.T) {
	// LoadAssets uploads textures and needs an OpenGL context, so it
	// cannot run in unit tests. With a context it populates the ship,
	// aircraft and goal sprites plus the background texture.
	t.Log("LoadAssets requires an OpenGL context and is covered by running the client")
}

func TestAssetManager_createBaseImage(t *testing.T) {
	am := NewAssetManager()

	img := am.createBaseImage(8, 4)

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 4 {
		t.Fatalf("image bounds = %vx%v, want 8x4", bounds.Dx(), bounds.Dy())
	}

	// Every pixel starts fully transparent.
	_, _, _, a := img.At(3, 2).RGBA()
	if a != 0 {
		t.Errorf("expected transparent base image, alpha = %v", a)
	}
}

func TestAssetManager_drawPatternOnImage(t *testing.T) {
	am := NewAssetManager()
	img := am.createBaseImage(4, 4)

	pattern := [][]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	am.drawPatternOnImage(img, pattern, 4, 4)

	white := color.RGBA{255, 255, 255, 255}
	for i := 0; i < 4; i++ {
		if img.RGBAAt(i, i) != white {
			t.Errorf("pixel (%d,%d) = %v, want white", i, i, img.RGBAAt(i, i))
		}
	}
	if _, _, _, a := img.At(1, 0).RGBA(); a != 0 {
		t.Error("off-pattern pixel not transparent")
	}
}

func TestAssetManager_drawPatternOnImage_OversizedPattern(t *testing.T) {
	am := NewAssetManager()
	img := am.createBaseImage(2, 2)

	// Patterns larger than the image are clipped, not panicked on.
	pattern := [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
	am.drawPatternOnImage(img, pattern, 2, 2)

	white := color.RGBA{255, 255, 255, 255}
	if img.RGBAAt(0, 0) != white || img.RGBAAt(1, 1) != white {
		t.Error("in-bounds pixels not drawn")
	}
}
