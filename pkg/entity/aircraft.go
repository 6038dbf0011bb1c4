// pkg/entity/aircraft.go
package entity

import (
	"math"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

// FlightStats contains the tuning parameters for an aircraft
type FlightStats struct {
	// TargetRadius is the orbit radius flown around the goal position.
	TargetRadius float64 `json:"targetRadius"`

	LinearAcceleration float64 `json:"linearAcceleration"`
	LinearSpeed        float64 `json:"linearSpeed"`
	AngularSpeed       float64 `json:"angularSpeed"`

	// TakeoffTime is how long the aircraft stays slaved to the deck.
	// LiveTime is the total patrol duration before it turns home.
	TakeoffTime float64 `json:"takeoffTime"`
	LiveTime    float64 `json:"liveTime"`
}

// LandingSpeed returns the speed the aircraft must slow to before it can
// dock with the carrier.
func (fs FlightStats) LandingSpeed() float64 {
	return fs.LinearSpeed / 1.5
}

// LandingRadius returns the distance at which the landing approach has to
// start. Worst case the aircraft points straight away from the carrier:
// it needs a 180 degree turn flown at full speed, then room to brake from
// cruise speed down to landing speed.
func (fs FlightStats) LandingRadius() float64 {
	rotationTime := math.Pi / fs.AngularSpeed
	slowdownTime := (fs.LinearSpeed - fs.LandingSpeed()) / fs.LinearAcceleration

	rotationTravel := rotationTime * fs.LinearSpeed
	slowdownTravel := (fs.LinearSpeed - fs.LandingSpeed()) * slowdownTime / 2

	return rotationTravel + slowdownTravel
}

// approachEpsilon is the distance below which the aircraft counts as
// already sitting on the carrier's approach line.
const approachEpsilon = 0.01

// Aircraft is one autonomous flying unit. It is launched rigidly coupled
// to the carrier deck, patrols an orbit around the shared goal position,
// and after its live time expires flies a line-up approach back onto the
// carrier's forward axis. All steering is closed-form vector geometry
// computed fresh every tick.
type Aircraft struct {
	BaseEntity
	Stats FlightStats

	liveTime float64

	scene  Scene
	handle Handle
}

// NewAircraft spawns an aircraft at the given deck position and heading
// and allocates its visual handle from the scene.
func NewAircraft(id ID, position physics.Vector2D, angle float64, stats FlightStats, scene Scene) *Aircraft {
	return &Aircraft{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Rotation: angle,
			Active:   true,
		},
		Stats:  stats,
		scene:  scene,
		handle: scene.CreateAircraftMesh(),
	}
}

// Lifetime returns the seconds elapsed since launch
func (a *Aircraft) Lifetime() float64 {
	return a.liveTime
}

// Update advances the aircraft by one tick. The frame is the carrier
// snapshot for this tick (the carrier must have moved first), goal is the
// shared patrol position. It returns false once the aircraft has finished
// its flight and docked; the caller removes it and must call Destroy.
func (a *Aircraft) Update(dt float64, frame ShipFrame, goal physics.Vector2D) bool {
	if a.liveTime >= a.Stats.LiveTime {
		if frame.Position.Sub(a.Position).Length() <= frame.Size {
			return false
		}
	}

	if a.liveTime < a.Stats.TakeoffTime {
		// On deck: no self-steering. The carrier's motion carries the
		// aircraft, heading snaps to the carrier heading and the position
		// pivots around the carrier by this tick's rotation.
		a.Velocity = a.Velocity.Add(frame.DeltaTranslation)

		a.Rotation = frame.Angle
		a.Position = a.Position.Sub(frame.Position).Rotate(frame.DeltaRotation).Add(frame.Position)
	} else {
		destination := a.correctedDestination(frame, goal)
		a.Rotation += a.steeringRotation(destination, dt)

		a.updateLinearVelocity(dt)
	}

	a.Position = a.Position.Add(a.Velocity.Scale(dt))
	a.scene.PlaceMesh(a.handle, a.Position, a.Rotation)

	a.liveTime += dt
	return true
}

// Destroy releases the aircraft's visual handle and deactivates it
func (a *Aircraft) Destroy() {
	if a.handle != nil {
		a.scene.DestroyMesh(a.handle)
		a.handle = nil
	}
	a.Active = false
}

// updateLinearVelocity accelerates along the current heading and rescales
// the velocity back to LinearSpeed if the cap is exceeded.
func (a *Aircraft) updateLinearVelocity(dt float64) {
	forward := physics.FromAngle(a.Rotation, 1)
	a.Velocity = a.Velocity.Add(forward.Scale(a.Stats.LinearAcceleration * dt))

	if a.Velocity.Length() > a.Stats.LinearSpeed {
		a.Velocity = a.Velocity.Normalize().Scale(a.Stats.LinearSpeed)
	}
}

// steeringRotation returns this tick's heading change toward the
// destination: the signed angle between destination and the forward
// vector, clamped toward zero at AngularSpeed*dt so the aircraft never
// turns past the target.
func (a *Aircraft) steeringRotation(destination physics.Vector2D, dt float64) float64 {
	forward := physics.FromAngle(a.Rotation, 1)
	targetAngle := physics.AngleBetween(destination, forward)

	if targetAngle > 0 {
		return math.Min(a.Stats.AngularSpeed*dt, targetAngle)
	}
	return math.Max(-a.Stats.AngularSpeed*dt, targetAngle)
}

// correctedDestination turns the phase destination into a velocity
// correction: the max-speed vector toward the destination minus the
// velocity the aircraft already has, so unhelpful lateral speed gets
// steered out.
func (a *Aircraft) correctedDestination(frame ShipFrame, goal physics.Vector2D) physics.Vector2D {
	destination := a.destination(frame, goal)
	destination = a.correctClosing(destination)

	return destination.Normalize().Scale(a.Stats.LinearSpeed).Sub(a.Velocity)
}

func (a *Aircraft) destination(frame ShipFrame, goal physics.Vector2D) physics.Vector2D {
	if a.liveTime >= a.Stats.LiveTime {
		return a.landingDestination(frame)
	}
	return a.orbitDestination(goal)
}

// orbitDestination chases a point offset from the goal along the
// perpendicular of the aircraft-to-goal vector. The offset point moves as
// the aircraft moves, so following it yields a continuous circle of
// TargetRadius around the goal.
func (a *Aircraft) orbitDestination(goal physics.Vector2D) physics.Vector2D {
	targetVector := goal.Sub(a.Position)

	orbitPoint := goal.Add(targetVector.Rotate(math.Pi / 2).Normalize().Scale(a.Stats.TargetRadius))

	return orbitPoint.Sub(a.Position)
}

// landingDestination lines the aircraft up with the carrier's forward
// axis. The intersection is the aircraft's perpendicular projection onto
// that axis; depending on how far away it is the aircraft first closes in
// on the axis, then turns onto it, then flies straight at the carrier.
func (a *Aircraft) landingDestination(frame ShipFrame) physics.Vector2D {
	shipForward := physics.FromAngle(frame.Angle, 1)
	shipForwardNormal := shipForward.Rotate(math.Pi / 2)
	intersection := physics.LineIntersection(frame.Position, shipForward, a.Position, shipForwardNormal)

	landingRadius := a.Stats.LandingRadius()
	lengthToIntersection := intersection.Sub(a.Position).Length()

	if lengthToIntersection > approachEpsilon {
		if lengthToIntersection > landingRadius {
			// Close in on the approach line, keeping one landing radius
			// of lateral room for the turn.
			offset := a.Position.Sub(intersection).Normalize().Scale(landingRadius)
			return intersection.Add(offset).Sub(a.Position)
		}
		// Turn onto the approach line pointing at the carrier.
		offset := frame.Position.Sub(intersection).Normalize().Scale(landingRadius)
		return intersection.Add(offset).Sub(a.Position)
	}

	// Already on the approach line: straight at the carrier.
	return frame.Position.Sub(a.Position)
}

// correctClosing inverts the destination when the aircraft is inside the
// landing radius but still too fast, forcing an overshoot turn instead of
// a hot approach. The magnitude test deliberately scales the unit-dot
// projection by the full velocity vector and takes its length; matching
// the established braking behavior matters more than the cleaner signed
// projection.
func (a *Aircraft) correctClosing(destination physics.Vector2D) physics.Vector2D {
	if destination.Length() <= a.Stats.LandingRadius() {
		projection := a.Velocity.Scale(physics.UnitDot(a.Velocity, destination)).Length()

		if projection > a.Stats.LandingSpeed() {
			return destination.Neg()
		}
	}
	return destination
}
