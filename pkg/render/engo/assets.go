// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"
)

// hudFontURL is the virtual asset path the HUD font is registered under.
const hudFontURL = "fonts/hud.ttf"

// AssetManager handles loading and managing the scene's sprites
type AssetManager struct {
	shipSprite     common.Drawable
	aircraftSprite common.Drawable
	goalSprite     common.Drawable

	backgroundTexture common.Drawable
	hudFont           *common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets builds all sprites. The game ships no image files; every
// sprite is generated from a pixel pattern at startup.
func (am *AssetManager) LoadAssets() error {
	if err := am.loadShipSprite(); err != nil {
		return err
	}
	if err := am.loadAircraftSprite(); err != nil {
		return err
	}
	if err := am.loadGoalSprite(); err != nil {
		return err
	}
	if err := am.loadUIAssets(); err != nil {
		return err
	}
	return am.loadHUDFont()
}

// loadShipSprite creates the carrier sprite: a long hull with a flat
// flight deck, pointing +X so rotation zero matches the world heading.
func (am *AssetManager) loadShipSprite() error {
	am.shipSprite = am.createSprite(24, 12, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	})
	return nil
}

// loadAircraftSprite creates the aircraft sprite: a small delta wing,
// also pointing +X.
func (am *AssetManager) loadAircraftSprite() error {
	am.aircraftSprite = am.createSprite(10, 10, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	})
	return nil
}

// loadGoalSprite creates the goal marker: a hollow diamond
func (am *AssetManager) loadGoalSprite() error {
	am.goalSprite = am.createSprite(12, 12, [][]int{
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0},
		{0, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0},
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{0, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	})
	return nil
}

// loadUIAssets loads UI-related assets
func (am *AssetManager) loadUIAssets() error {
	// A sparse starfield background.
	backgroundPattern := make([][]int, 64)
	for i := range backgroundPattern {
		backgroundPattern[i] = make([]int, 64)
		if i%8 == 0 && (i/8)%3 == 0 {
			backgroundPattern[i][(i*13)%64] = 1
		}
	}

	am.backgroundTexture = am.createSprite(64, 64, backgroundPattern)
	return nil
}

// loadHUDFont builds the HUD font from the embedded Go font data. No
// font file ships with the game; the TTF bytes come from the font's
// package and are registered as an in-memory asset.
func (am *AssetManager) loadHUDFont() error {
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return err
	}

	am.hudFont = &common.Font{
		URL:  hudFontURL,
		FG:   color.White,
		Size: 16,
	}
	return am.hudFont.CreatePreloaded()
}

// createSprite creates a sprite from a 2D pixel pattern
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// ShipSprite returns the carrier sprite
func (am *AssetManager) ShipSprite() common.Drawable {
	return am.shipSprite
}

// AircraftSprite returns the aircraft sprite
func (am *AssetManager) AircraftSprite() common.Drawable {
	return am.aircraftSprite
}

// GoalSprite returns the goal marker sprite
func (am *AssetManager) GoalSprite() common.Drawable {
	return am.goalSprite
}

// GetBackgroundTexture returns the background texture
func (am *AssetManager) GetBackgroundTexture() common.Drawable {
	return am.backgroundTexture
}

// HUDFont returns the font HUD text is drawn with
func (am *AssetManager) HUDFont() *common.Font {
	return am.hudFont
}
