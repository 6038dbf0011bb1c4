// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/engine"
)

// HUDSystem manages the heads-up display: the fleet readout in the top
// left corner and a short-lived notice line for launch and recovery
// messages.
type HUDSystem struct {
	game         *engine.Game
	renderSystem *common.RenderSystem

	hudEntities []*hudEntity

	notices    []notice
	maxNotices int
	noticeTTL  time.Duration

	font *common.Font

	hudColor    color.Color
	noticeColor color.Color
	warnColor   color.Color
}

// hudEntity is one frame's worth of HUD text. Like spriteHandle it owns
// its components so they survive until the render system draws them.
type hudEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// notice is one transient HUD message
type notice struct {
	text    string
	warning bool
	posted  time.Time
}

// NewHUDSystem creates a HUD bound to the given game, drawing through
// the given render system.
func NewHUDSystem(game *engine.Game, renderSystem *common.RenderSystem) *HUDSystem {
	return &HUDSystem{
		game:         game,
		renderSystem: renderSystem,
		maxNotices:   5,
		noticeTTL:    4 * time.Second,
		hudColor:     color.RGBA{255, 255, 255, 255},
		noticeColor:  color.RGBA{120, 200, 255, 255},
		warnColor:    color.RGBA{255, 80, 80, 255},
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update rebuilds the HUD for this frame
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()
	hud.expireNotices()

	hud.renderFleetStatus()
	hud.renderNotices()
}

// clearHUDEntities removes the previous frame's HUD entities from the
// render system
func (hud *HUDSystem) clearHUDEntities() {
	for _, e := range hud.hudEntities {
		hud.renderSystem.Remove(e.basic)
	}
	hud.hudEntities = hud.hudEntities[:0]
}

// expireNotices drops notices older than the TTL
func (hud *HUDSystem) expireNotices() {
	kept := hud.notices[:0]
	for _, n := range hud.notices {
		if time.Since(n.posted) < hud.noticeTTL {
			kept = append(kept, n)
		}
	}
	hud.notices = kept
}

// renderFleetStatus renders the fleet readout panel
func (hud *HUDSystem) renderFleetStatus() {
	statusText := fmt.Sprintf(
		"Aircraft: %d/%d\nRefitting: %d\nT+%.0fs",
		hud.game.ActiveCount(),
		hud.game.Config.MaxFleetSize,
		hud.game.CooldownCount(),
		hud.game.Lifetime(),
	)

	hud.renderText(statusText, 10, 10, hud.hudColor)
}

// renderNotices renders the transient message lines above the bottom edge
func (hud *HUDSystem) renderNotices() {
	y := float32(engo.GameHeight()) - 20*float32(len(hud.notices)) - 10

	for _, n := range hud.notices {
		textColor := hud.noticeColor
		if n.warning {
			textColor = hud.warnColor
		}
		hud.renderText(n.text, 10, y, textColor)
		y += 20
	}
}

// renderText builds one text entity and registers it with the render
// system. The entity lives until the next frame's clearHUDEntities.
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.Color) {
	if hud.font == nil {
		return
	}

	e := &hudEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Text{
				Font: hud.font,
				Text: text,
			},
			Color: textColor,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
			Width:    float32(len(text) * 8),
			Height:   16,
		},
	}
	// HUD text is screen-anchored and drawn over the world sprites.
	e.render.SetShader(common.HUDShader)
	e.render.SetZIndex(100)

	hud.renderSystem.Add(&e.basic, &e.render, &e.space)
	hud.hudEntities = append(hud.hudEntities, e)
}

// AddNotice posts a transient HUD message
func (hud *HUDSystem) AddNotice(text string) {
	hud.addNotice(text, false)
}

// AddWarning posts a transient HUD message in the warning color
func (hud *HUDSystem) AddWarning(text string) {
	hud.addNotice(text, true)
}

func (hud *HUDSystem) addNotice(text string, warning bool) {
	hud.notices = append(hud.notices, notice{
		text:    text,
		warning: warning,
		posted:  time.Now(),
	})

	if len(hud.notices) > hud.maxNotices {
		hud.notices = hud.notices[len(hud.notices)-hud.maxNotices:]
	}
}

// Notices returns the currently visible notice texts
func (hud *HUDSystem) Notices() []string {
	texts := make([]string, len(hud.notices))
	for i, n := range hud.notices {
		texts[i] = n.text
	}
	return texts
}

// SetFont sets the font used for HUD text rendering
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}
