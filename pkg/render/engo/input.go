// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// movementBinding ties an Engo button name to a carrier input key
type movementBinding struct {
	button string
	key    entity.Key
}

var movementBindings = []movementBinding{
	{"forward", entity.KeyForward},
	{"backward", entity.KeyBackward},
	{"turnLeft", entity.KeyLeft},
	{"turnRight", entity.KeyRight},
}

// InputSystem translates Engo input state into game input calls:
// movement keys as press/release edges, mouse clicks as goal and launch
// commands.
type InputSystem struct {
	game *engine.Game
}

// NewInputSystem creates an input system driving the given game
func NewInputSystem(game *engine.Game) *InputSystem {
	return &InputSystem{game: game}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update forwards this frame's input edges to the game
func (is *InputSystem) Update(dt float32) {
	is.handleMovementKeys()
	is.handleMouse()
}

// handleMovementKeys forwards key press and release edges. The game
// tracks held state itself, so only the edges are reported.
func (is *InputSystem) handleMovementKeys() {
	for _, binding := range movementBindings {
		button := engo.Input.Button(binding.button)
		if button.JustPressed() {
			_ = is.game.KeyPressed(binding.key)
		}
		if button.JustReleased() {
			_ = is.game.KeyReleased(binding.key)
		}
	}
}

// handleMouse maps the left button to goal placement and the right
// button to a launch request.
func (is *InputSystem) handleMouse() {
	if engo.Input.Mouse.Action != engo.Press {
		return
	}

	screenPos := physics.Vector2D{
		X: float64(engo.Input.Mouse.X),
		Y: float64(engo.Input.Mouse.Y),
	}

	switch engo.Input.Mouse.Button {
	case engo.MouseButtonLeft:
		is.game.MouseClicked(screenPos, engine.MouseButtonPrimary)
	case engo.MouseButtonRight:
		is.game.MouseClicked(screenPos, engine.MouseButtonSecondary)
	}
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton("forward", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("backward", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("turnLeft", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("turnRight", engo.KeyD, engo.KeyArrowRight)
}
