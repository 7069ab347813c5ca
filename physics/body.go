// Package physics is a small rigid-body world for the pug, its treats and
// the obstacles around it. Bodies are oriented boxes integrated with mathgl;
// the XZ broadphase runs on a resolv space.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// BodyID identifies a body in a World. GroundID is the implicit static plane y=0.
type BodyID int

const GroundID BodyID = 0

// Material describes surface response.
type Material struct {
	Friction    float64
	Restitution float64
}

// BodyDef describes a body to add to a World.
type BodyDef struct {
	Name        string
	Position    mgl64.Vec3
	Yaw         float64 // Initial rotation about +Y in radians
	HalfExtents mgl64.Vec3
	Mass        float64 // Zero makes the body static
	Sensor      bool    // Reports contacts but never blocks or is blocked
	Material    Material

	LinearDamping  float64
	AngularDamping float64
	// AngularFactor scales angular response per axis. Zero means (1,1,1).
	AngularFactor mgl64.Vec3

	Data any
}

// Body is a rigid box.
type Body struct {
	ID   BodyID
	Name string

	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3

	HalfExtents    mgl64.Vec3
	Mass           float64
	Material       Material
	LinearDamping  float64
	AngularDamping float64
	AngularFactor  mgl64.Vec3
	Sensor         bool
	Data           any

	invMass    float64
	invInertia mgl64.Vec3
	force      mgl64.Vec3
	torque     mgl64.Vec3
	grounded   bool
	removed    bool
	obj        *resolv.Object
}

func newBody(id BodyID, def BodyDef) *Body {
	b := &Body{
		ID:             id,
		Name:           def.Name,
		Position:       def.Position,
		Orientation:    mgl64.QuatRotate(def.Yaw, mgl64.Vec3{0, 1, 0}),
		HalfExtents:    def.HalfExtents,
		Mass:           def.Mass,
		Material:       def.Material,
		LinearDamping:  def.LinearDamping,
		AngularDamping: def.AngularDamping,
		AngularFactor:  def.AngularFactor,
		Sensor:         def.Sensor,
		Data:           def.Data,
	}
	if b.AngularFactor == (mgl64.Vec3{}) {
		b.AngularFactor = mgl64.Vec3{1, 1, 1}
	}
	if def.Mass > 0 {
		b.invMass = 1 / def.Mass
		h := def.HalfExtents
		// Solid box: I = m/3 * (b^2 + c^2) on each axis.
		ix := def.Mass / 3 * (h.Y()*h.Y() + h.Z()*h.Z())
		iy := def.Mass / 3 * (h.X()*h.X() + h.Z()*h.Z())
		iz := def.Mass / 3 * (h.X()*h.X() + h.Y()*h.Y())
		b.invInertia = mgl64.Vec3{inv(ix), inv(iy), inv(iz)}
	}
	return b
}

func inv(v float64) float64 {
	if v == 0 {
		return 0
	}
	return 1 / v
}

// Static reports whether the body never moves.
func (b *Body) Static() bool {
	return b.invMass == 0
}

// Grounded reports whether the body rests on the ground plane.
func (b *Body) Grounded() bool {
	return b.grounded
}

// Forward returns the body's +Z axis in world space.
func (b *Body) Forward() mgl64.Vec3 {
	return b.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

// Right returns the body's +X axis in world space.
func (b *Body) Right() mgl64.Vec3 {
	return b.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
}

// Heading returns the yaw of the forward axis, atan2(x, z).
func (b *Body) Heading() float64 {
	f := b.Forward()
	return math.Atan2(f.X(), f.Z())
}

// footprint is the half size of the square covering the body in XZ at any yaw.
func (b *Body) footprint() float64 {
	return math.Max(b.HalfExtents.X(), b.HalfExtents.Z())
}

// ApplyImpulse changes momentum instantly. rel is the application point
// relative to the center of mass.
func (b *Body) ApplyImpulse(j, rel mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.LinearVelocity = b.LinearVelocity.Add(j.Mul(b.invMass))
	dw := mulElem(mulElem(rel.Cross(j), b.invInertia), b.AngularFactor)
	b.AngularVelocity = b.AngularVelocity.Add(dw)
}

// ApplyCentralImpulse applies an impulse through the center of mass.
func (b *Body) ApplyCentralImpulse(j mgl64.Vec3) {
	b.ApplyImpulse(j, mgl64.Vec3{})
}

// ApplyForce accumulates a force for the next step. rel is the application
// point relative to the center of mass.
func (b *Body) ApplyForce(f, rel mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.force = b.force.Add(f)
	b.torque = b.torque.Add(rel.Cross(f))
}

// SetLinearVelocity replaces the linear velocity.
func (b *Body) SetLinearVelocity(v mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.LinearVelocity = v
}

// SetAngularVelocity replaces the angular velocity, filtered by the angular factor.
func (b *Body) SetAngularVelocity(w mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.AngularVelocity = mulElem(w, b.AngularFactor)
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
