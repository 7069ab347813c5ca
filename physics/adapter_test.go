package physics

import (
	"math"
	"testing"

	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
	"github.com/go-gl/mathgl/mgl64"
)

func newPug(t *testing.T, mode string) (*World, Adapter) {
	t.Helper()
	w := newTestWorld(t)
	b := w.Add(BodyDef{
		Name:          "pug",
		Position:      mgl64.Vec3{0, config.Player.HalfExtentY, 0},
		HalfExtents:   mgl64.Vec3{config.Player.HalfExtentX, config.Player.HalfExtentY, config.Player.HalfExtentZ},
		Mass:          config.Player.Mass,
		AngularFactor: mgl64.Vec3{0, 1, 0},
	})
	a, err := NewAdapter(mode, w, b.ID)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	if err := a.OnCollision(func(Contact) {}); err != nil {
		t.Fatalf("OnCollision: %v", err)
	}
	// Settle onto the ground so the initial contact is consumed.
	w.Step(tick)
	return w, a
}

func TestNewAdapterErrors(t *testing.T) {
	w := newTestWorld(t)
	if _, err := NewAdapter(config.PhysicsVelocity, w, 99); err == nil {
		t.Error("expected error for unknown body")
	}
	b := w.Add(cube("pug", mgl64.Vec3{0, 1, 0}, 1, 1))
	if _, err := NewAdapter("teleport", w, b.ID); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestVelocityAdapterMotion(t *testing.T) {
	_, a := newPug(t, config.PhysicsVelocity)
	b := a.Body()

	a.ApplyMotion(&control.MotionIntent{Forward: 1, Speed: 23}, tick)
	if v := b.LinearVelocity; math.Abs(v.Z()-23) > 1e-9 || math.Abs(v.X()) > 1e-9 {
		t.Errorf("forward velocity = %v, want (0, _, 23)", v)
	}

	a.ApplyMotion(&control.MotionIntent{Forward: -1, Speed: 30}, tick)
	if v := b.LinearVelocity; math.Abs(v.Z()+30) > 1e-9 {
		t.Errorf("backward velocity = %v, want z = -30", v)
	}

	a.ApplyMotion(&control.MotionIntent{Turn: 1, Speed: 30}, tick)
	if v := b.LinearVelocity; v.X() != 0 || v.Z() != 0 {
		t.Errorf("planar velocity not zeroed without forward: %v", v)
	}

	a.ApplyMotion(nil, tick)
	if b.AngularVelocity != (mgl64.Vec3{}) {
		t.Errorf("angular velocity not zeroed without intent: %v", b.AngularVelocity)
	}
}

func TestVelocityAdapterFollowsHeading(t *testing.T) {
	_, a := newPug(t, config.PhysicsVelocity)
	b := a.Body()
	b.Orientation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})

	a.ApplyMotion(&control.MotionIntent{Forward: 1, Speed: 10}, tick)
	if v := b.LinearVelocity; math.Abs(v.X()-10) > 1e-9 || math.Abs(v.Z()) > 1e-9 {
		t.Errorf("velocity at 90 degrees = %v, want (10, _, 0)", v)
	}
}

func TestTurnHandedness(t *testing.T) {
	tests := []struct {
		name    string
		forward int
		turn    int
		want    float64
	}{
		{"left while stopped", 0, -1, 1},
		{"left while moving", 1, -1, 1},
		{"right while moving", 1, 1, -1},
		{"left in reverse", -1, -1, -1},
		{"right in reverse", -1, 1, 1},
		{"no turn", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := newPug(t, config.PhysicsVelocity)
			a.ApplyMotion(&control.MotionIntent{Forward: tt.forward, Turn: tt.turn, Speed: 23}, tick)
			if got := a.Body().AngularVelocity.Y(); got != tt.want*config.Player.TurnRate {
				t.Errorf("yaw rate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJumpOncePerGroundCycle(t *testing.T) {
	for _, mode := range []string{config.PhysicsVelocity, config.PhysicsImpulse} {
		t.Run(mode, func(t *testing.T) {
			w, a := newPug(t, mode)

			if a.Airborne() {
				t.Fatal("airborne before jumping")
			}
			if !a.ApplyImpulseUp() {
				t.Fatal("first jump refused")
			}
			if a.ApplyImpulseUp() {
				t.Fatal("second jump accepted while airborne")
			}
			if vy := a.Body().LinearVelocity.Y(); math.Abs(vy-config.Player.JumpImpulse/config.Player.Mass) > 1e-9 {
				t.Errorf("vertical velocity after impulse = %v", vy)
			}

			peak := 0.0
			for i := 0; i < 30; i++ {
				w.Step(tick)
				peak = math.Max(peak, a.Transform().Position.Y())
				if a.ApplyImpulseUp() {
					t.Fatalf("jump accepted mid-air at step %d", i)
				}
			}
			if peak <= config.Player.HalfExtentY+0.5 {
				t.Errorf("jump peak %v too low", peak)
			}

			for i := 0; i < 120 && a.Airborne(); i++ {
				w.Step(tick)
			}
			if a.Airborne() {
				t.Fatal("still airborne after landing")
			}
			if !a.ApplyImpulseUp() {
				t.Error("jump refused after landing")
			}
		})
	}
}

func TestVelocityAdapterKeepsMomentumInAir(t *testing.T) {
	_, a := newPug(t, config.PhysicsVelocity)
	b := a.Body()

	a.ApplyMotion(&control.MotionIntent{Forward: 1, Speed: 23}, tick)
	a.ApplyImpulseUp()
	a.ApplyMotion(&control.MotionIntent{Forward: 1, Speed: 50}, tick)
	if v := b.LinearVelocity.Z(); math.Abs(v-23) > 1e-9 {
		t.Errorf("airborne motion changed planar velocity to %v", v)
	}
}

func TestImpulseAdapterNeverSetsVelocity(t *testing.T) {
	w, a := newPug(t, config.PhysicsImpulse)
	b := a.Body()

	for i := 0; i < 60; i++ {
		a.ApplyMotion(&control.MotionIntent{Forward: 1, Turn: -1, Speed: 23}, tick)
		w.Step(tick)
	}
	if b.Position.Z() <= 0 && b.Position.X() <= 0 {
		t.Errorf("impulse drive did not move the pug: %v", b.Position)
	}
	if b.AngularVelocity.Y() <= 0 {
		t.Errorf("left turn should yaw positive, got %v", b.AngularVelocity.Y())
	}

	before := b.LinearVelocity
	a.ApplyMotion(nil, tick)
	if b.LinearVelocity != before {
		t.Error("neutral intent wrote velocity")
	}

	speed := mgl64.Vec3{before.X(), 0, before.Z()}.Len()
	for i := 0; i < 60; i++ {
		a.ApplyMotion(nil, tick)
		w.Step(tick)
		v := b.LinearVelocity
		cur := mgl64.Vec3{v.X(), 0, v.Z()}.Len()
		if cur > speed+1e-9 {
			t.Fatalf("speed grew without input: %v -> %v", speed, cur)
		}
		speed = cur
	}
	if speed > 0.5 {
		t.Errorf("speed after 1s coasting = %v, want decayed", speed)
	}
}

func TestTransformTracksBody(t *testing.T) {
	w, a := newPug(t, config.PhysicsVelocity)
	for i := 0; i < 30; i++ {
		a.ApplyMotion(&control.MotionIntent{Forward: 1, Speed: 23}, tick)
		w.Step(tick)
	}
	tr := a.Transform()
	if tr.Position != a.Body().Position || tr.Orientation != a.Body().Orientation {
		t.Error("transform out of sync with body")
	}
	if tr.Position.Z() < 5 {
		t.Errorf("pug barely moved: %v", tr.Position)
	}
}

func TestAirborneUntilFirstLanding(t *testing.T) {
	for _, mode := range []string{config.PhysicsVelocity, config.PhysicsImpulse} {
		t.Run(mode, func(t *testing.T) {
			w := newTestWorld(t)
			b := w.Add(BodyDef{
				Name:          "pug",
				Position:      mgl64.Vec3{0, config.Player.HalfExtentY + 10, 0},
				HalfExtents:   mgl64.Vec3{config.Player.HalfExtentX, config.Player.HalfExtentY, config.Player.HalfExtentZ},
				Mass:          config.Player.Mass,
				AngularFactor: mgl64.Vec3{0, 1, 0},
			})
			a, err := NewAdapter(mode, w, b.ID)
			if err != nil {
				t.Fatalf("NewAdapter: %v", err)
			}
			if err := a.OnCollision(func(Contact) {}); err != nil {
				t.Fatalf("OnCollision: %v", err)
			}

			if !a.Airborne() {
				t.Fatal("spawned in the air but not airborne")
			}
			if a.ApplyImpulseUp() {
				t.Fatal("jump accepted during the opening fall")
			}

			for i := 0; i < 300 && a.Airborne(); i++ {
				w.Step(tick)
			}
			if a.Airborne() {
				t.Fatal("never landed")
			}
			if !a.ApplyImpulseUp() {
				t.Error("jump refused after the first landing")
			}
		})
	}
}
