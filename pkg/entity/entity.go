// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Update updates the entity's position based on velocity
func (e *BaseEntity) Update(deltaTime float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
}

// GenerateID generates a unique ID for entities
var nextID ID = 1

func GenerateID() ID {
	id := nextID
	nextID++
	return id
}
