// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// TerminalScene provides a simple ASCII-based scene for terminals. It
// retains placed handles between frames so the headless driver can dump
// the sea picture after each batch of ticks.
type TerminalScene struct {
	width  int
	height int
	scale  float64

	centerPos physics.Vector2D

	sprites []*terminalSprite

	goalSet bool
	goalPos physics.Vector2D
}

// terminalSprite is the concrete handle type behind entity.Handle
type terminalSprite struct {
	symbol rune
	pos    physics.Vector2D
	angle  float64
	placed bool
}

// NewTerminalScene creates a terminal scene with the specified viewport
// dimensions in characters and world units per character.
func NewTerminalScene(width, height int, scale float64) *TerminalScene {
	return &TerminalScene{
		width:  width,
		height: height,
		scale:  scale,
	}
}

// SetCenter sets the world position at the center of the view
func (s *TerminalScene) SetCenter(pos physics.Vector2D) {
	s.centerPos = pos
}

// worldToScreen converts world coordinates to character cell coordinates
func (s *TerminalScene) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-s.centerPos.X)/s.scale + float64(s.width)/2)
	// Terminal rows grow downward, world Y grows upward
	screenY := int((s.centerPos.Y-pos.Y)/s.scale + float64(s.height)/2)
	return screenX, screenY
}

// CreateShipMesh implements entity.Scene
func (s *TerminalScene) CreateShipMesh() entity.Handle {
	sprite := &terminalSprite{symbol: '@'}
	s.sprites = append(s.sprites, sprite)
	return sprite
}

// CreateAircraftMesh implements entity.Scene
func (s *TerminalScene) CreateAircraftMesh() entity.Handle {
	sprite := &terminalSprite{symbol: '^'}
	s.sprites = append(s.sprites, sprite)
	return sprite
}

// DestroyMesh implements entity.Scene
func (s *TerminalScene) DestroyMesh(h entity.Handle) {
	sprite, ok := h.(*terminalSprite)
	if !ok {
		return
	}
	for i, candidate := range s.sprites {
		if candidate == sprite {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			return
		}
	}
}

// PlaceMesh implements entity.Scene
func (s *TerminalScene) PlaceMesh(h entity.Handle, pos physics.Vector2D, angle float64) {
	sprite, ok := h.(*terminalSprite)
	if !ok {
		return
	}
	sprite.pos = pos
	sprite.angle = angle
	sprite.placed = true
}

// PlaceGoalMarker implements entity.Scene
func (s *TerminalScene) PlaceGoalMarker(pos physics.Vector2D) {
	s.goalSet = true
	s.goalPos = pos
}

// ScreenToWorld implements entity.Scene
func (s *TerminalScene) ScreenToWorld(pos physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (pos.X-float64(s.width)/2)*s.scale + s.centerPos.X,
		Y: (float64(s.height)/2-pos.Y)*s.scale + s.centerPos.Y,
	}
}

// WorldToScreen converts a world position to fractional character cell
// coordinates, the inverse of ScreenToWorld. Scripted drivers use this
// to aim mouse clicks at world positions.
func (s *TerminalScene) WorldToScreen(pos physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (pos.X-s.centerPos.X)/s.scale + float64(s.width)/2,
		Y: (s.centerPos.Y-pos.Y)/s.scale + float64(s.height)/2,
	}
}

// aircraftSymbol picks an arrow roughly matching the sprite heading
func aircraftSymbol(angle float64) rune {
	sector := int(math.Round(angle/(math.Pi/2))) % 4
	if sector < 0 {
		sector += 4
	}
	return []rune{'>', '^', '<', 'v'}[sector]
}

// Render draws the current frame to w
func (s *TerminalScene) Render(w io.Writer) {
	buffer := make([][]rune, s.height)
	for i := range buffer {
		buffer[i] = make([]rune, s.width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	draw := func(pos physics.Vector2D, symbol rune) {
		x, y := s.worldToScreen(pos)
		if x >= 0 && x < s.width && y >= 0 && y < s.height {
			buffer[y][x] = symbol
		}
	}

	if s.goalSet {
		draw(s.goalPos, 'X')
	}
	for _, sprite := range s.sprites {
		if !sprite.placed {
			continue
		}
		symbol := sprite.symbol
		if symbol == '^' {
			symbol = aircraftSymbol(sprite.angle)
		}
		draw(sprite.pos, symbol)
	}

	fmt.Fprintln(w, "+"+strings.Repeat("-", s.width)+"+")
	for y := range buffer {
		fmt.Fprintln(w, "|"+string(buffer[y])+"|")
	}
	fmt.Fprintln(w, "+"+strings.Repeat("-", s.width)+"+")
}
