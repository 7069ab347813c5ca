package physics

import (
	"fmt"

	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a body's pose.
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Adapter drives one character body from a motion intent. Callers depend
// only on this contract, not on how motion reaches the body.
type Adapter interface {
	// ApplyMotion feeds the current intent, nil when no input is held.
	ApplyMotion(in *control.MotionIntent, dt float64)
	// ApplyImpulseUp starts a jump unless already airborne.
	ApplyImpulseUp() bool
	Transform() Transform
	OnCollision(fn func(Contact)) error
	Airborne() bool
	BodyID() BodyID
	Body() *Body
}

// NewAdapter returns the realization named by mode.
func NewAdapter(mode string, w *World, id BodyID) (Adapter, error) {
	b, ok := w.Body(id)
	if !ok {
		return nil, fmt.Errorf("adapter for %d: %w", id, ErrUnknownBody)
	}
	switch mode {
	case config.PhysicsVelocity:
		return NewVelocityAdapter(w, b), nil
	case config.PhysicsImpulse:
		return NewImpulseAdapter(w, b), nil
	}
	return nil, fmt.Errorf("unknown physics mode %q", mode)
}

// base holds what both realizations share: the body, the airborne flag and
// the ground-contact hook that clears it.
type base struct {
	world    *World
	body     *Body
	airborne bool
}

// newBase starts airborne: a body is only grounded once the world reports
// its first ground contact.
func newBase(w *World, b *Body) base {
	return base{world: w, body: b, airborne: true}
}

func (a *base) BodyID() BodyID { return a.body.ID }
func (a *base) Body() *Body    { return a.body }
func (a *base) Airborne() bool { return a.airborne }

func (a *base) Transform() Transform {
	return Transform{Position: a.body.Position, Orientation: a.body.Orientation}
}

func (a *base) ApplyImpulseUp() bool {
	if a.airborne || config.Player.JumpImpulse <= 0 {
		return false
	}
	a.airborne = true
	a.body.ApplyCentralImpulse(mgl64.Vec3{0, config.Player.JumpImpulse, 0})
	return true
}

// OnCollision registers fn after the adapter's own landing handling.
func (a *base) OnCollision(fn func(Contact)) error {
	return a.world.OnCollision(a.body.ID, func(c Contact) {
		if c.Other == GroundID && c.Phase == PhaseStart {
			a.airborne = false
		}
		fn(c)
	})
}

// turnFactor flips steering handedness when reversing.
func turnFactor(forward int) float64 {
	if forward >= 0 {
		return -1
	}
	return 1
}

// yawRate is the commanded angular speed about +Y.
func yawRate(in *control.MotionIntent) float64 {
	if in == nil || in.Turn == 0 {
		return 0
	}
	return turnFactor(in.Forward) * float64(in.Turn) * config.Player.TurnRate
}
