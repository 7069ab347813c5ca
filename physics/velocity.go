package physics

import (
	"math"

	"github.com/automoto/pugtreats/control"
	"github.com/go-gl/mathgl/mgl64"
)

// VelocityAdapter writes the body's velocity directly each tick.
type VelocityAdapter struct {
	base
}

func NewVelocityAdapter(w *World, b *Body) *VelocityAdapter {
	return &VelocityAdapter{newBase(w, b)}
}

// ApplyMotion sets planar velocity along the heading while grounded and
// moving, and the yaw rate from the turn axis. Neutral axes are zeroed.
// The vertical velocity is left to gravity.
func (a *VelocityAdapter) ApplyMotion(in *control.MotionIntent, _ float64) {
	b := a.body
	v := b.LinearVelocity

	if in.Moving() && !a.airborne {
		theta := b.Heading()
		f := float64(in.Forward)
		v = mgl64.Vec3{
			math.Sin(theta) * in.Speed * f,
			v.Y(),
			math.Cos(theta) * in.Speed * f,
		}
	}
	if !in.Moving() {
		v = mgl64.Vec3{0, v.Y(), 0}
	}
	b.SetLinearVelocity(v)
	b.SetAngularVelocity(mgl64.Vec3{0, yawRate(in), 0})
}
