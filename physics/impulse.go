package physics

import (
	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
)

// ImpulseAdapter pushes the body with impulses at offset points and never
// writes its velocity. Damping bleeds motion off once input stops.
type ImpulseAdapter struct {
	base
}

// NewImpulseAdapter switches the body to the impulse damping profile.
func NewImpulseAdapter(w *World, b *Body) *ImpulseAdapter {
	b.LinearDamping = config.Physics.ImpulseDamping
	b.AngularDamping = config.Physics.ImpulseDamping
	return &ImpulseAdapter{newBase(w, b)}
}

// ApplyMotion applies a drive impulse behind the center along the heading
// and a yaw couple from two opposing lateral forces, integrated by the next
// step.
func (a *ImpulseAdapter) ApplyMotion(in *control.MotionIntent, dt float64) {
	if in == nil || dt <= 0 {
		return
	}
	b := a.body
	fwd := b.Forward()

	if in.Forward != 0 && !a.airborne {
		j := fwd.Mul(in.Speed * float64(in.Forward) * config.Physics.DriveScale * dt)
		b.ApplyImpulse(j, fwd.Mul(-config.Physics.DriveOffset))
	}

	if rate := yawRate(in); rate != 0 {
		// Front pushed along +right and rear along -right spins about +Y.
		side := b.Right().Mul(rate * config.Physics.SteerForce)
		arm := fwd.Mul(config.Physics.SteerOffset)
		b.ApplyForce(side, arm)
		b.ApplyForce(side.Mul(-1), arm.Mul(-1))
	}
}
