package game

import (
	"math"
	"testing"

	"github.com/automoto/pugtreats/assets"
	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/config"
	"go.uber.org/zap"
)

const dt = 1.0 / 60

// flatLevel puts the pug on the ground at the origin with nothing else around.
func flatLevel() *assets.Level {
	return &assets.Level{Name: "flat", Width: 100, Height: 100}
}

func newTestSession(t *testing.T, lvl *assets.Level) *Session {
	t.Helper()
	return newModeSession(t, lvl, config.PhysicsVelocity)
}

func newModeSession(t *testing.T, lvl *assets.Level, mode string) *Session {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	s, err := New(Options{Level: lvl, PhysicsMode: mode, Seed: 1, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// First tick registers the ground contact.
	s.Tick(dt)
	return s
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewErrors(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	if _, err := New(Options{Logger: zap.NewNop()}); err == nil {
		t.Error("expected error without a level")
	}
	if _, err := New(Options{Level: flatLevel(), PhysicsMode: "magic", Logger: zap.NewNop()}); err == nil {
		t.Error("expected error for unknown physics mode")
	}
}

func TestNewSession(t *testing.T) {
	for _, mode := range []string{config.PhysicsVelocity, config.PhysicsImpulse} {
		t.Run(mode, func(t *testing.T) {
			config.Reset()
			t.Cleanup(config.Reset)

			lvl := flatLevel()
			lvl.Bushes = []assets.Bush{{X: 20, Radius: 3, Y: 2}}
			lvl.TreatAreas = []assets.TreatArea{{MinX: 30, MinZ: 30, MaxX: 40, MaxZ: 40, Count: 7, MaxHeight: 5}}

			s, err := New(Options{Level: lvl, PhysicsMode: mode, Seed: 3, Logger: zap.NewNop()})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			hud := s.HUD()
			if hud.TimeRemaining != 30 || hud.Health != 100 || hud.MaxHealth != 100 {
				t.Errorf("start state = %+v", hud)
			}
			if hud.TotalPickups != 7 || hud.RemainingPickups != 7 {
				t.Errorf("pickups = %d/%d, want 7/7", hud.RemainingPickups, hud.TotalPickups)
			}
			if hud.Clip != config.ClipIdle {
				t.Errorf("clip = %q, want idle", hud.Clip)
			}
			if got := len(s.Treats()); got != 7 {
				t.Errorf("treat entities = %d, want 7", got)
			}
			// pug + bush + treats
			if got := s.Physics.Len(); got != 9 {
				t.Errorf("bodies = %d, want 9", got)
			}
			pos := components.Transform.Get(s.Player()).Position
			if !near(pos.Y(), config.Player.HalfExtentY, 1e-9) {
				t.Errorf("pug y = %v, want resting height %v", pos.Y(), config.Player.HalfExtentY)
			}
		})
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	lvl := flatLevel()
	lvl.TreatAreas = []assets.TreatArea{{MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50, Count: 20, MaxHeight: 80}}

	a := newTestSession(t, lvl)
	b := newTestSession(t, lvl)
	ta, tb := a.Treats(), b.Treats()
	if len(ta) != len(tb) {
		t.Fatalf("treat counts differ: %d vs %d", len(ta), len(tb))
	}
	for i := range ta {
		pa := components.Object.Get(ta[i]).Position
		pb := components.Object.Get(tb[i]).Position
		if pa != pb {
			t.Fatalf("treat %d at %v and %v with the same seed", i, pa, pb)
		}
	}
}

func TestTimerCountsDown(t *testing.T) {
	s := newTestSession(t, flatLevel())
	for i := 0; i < 59; i++ {
		s.Tick(dt)
	}
	// 60 ticks including the settling one.
	if st := s.State(); !near(st.TimeRemaining, 29, 1e-9) || !near(st.Elapsed, 1, 1e-9) {
		t.Errorf("time = %v elapsed = %v, want 29 and 1", st.TimeRemaining, st.Elapsed)
	}

	s.Tick(0)
	s.Tick(-1)
	if st := s.State(); !near(st.TimeRemaining, 29, 1e-9) {
		t.Errorf("non-positive dt changed the timer to %v", st.TimeRemaining)
	}
}

func TestTimeRunsOut(t *testing.T) {
	s := newTestSession(t, flatLevel())
	fired := 0
	s.OnGameOver(func(st components.SessionData) {
		fired++
		if st.Reason != components.ReasonTime {
			t.Errorf("reason = %q, want time", st.Reason)
		}
	})

	for i := 0; i < 40*60; i++ {
		s.Tick(dt)
	}
	st := s.State()
	if !st.GameOver || st.TimeRemaining != 0 {
		t.Errorf("game over = %v time = %v, want true and 0", st.GameOver, st.TimeRemaining)
	}
	if fired != 1 {
		t.Errorf("hook fired %d times, want 1", fired)
	}
}

func TestPauseFreezesRound(t *testing.T) {
	s := newTestSession(t, flatLevel())
	s.KeyDown(config.ActionForward)
	s.Tick(dt)

	time := s.State().TimeRemaining
	clock := s.Clock()
	pos := components.Object.Get(s.Player()).Position

	s.KeyDown(config.ActionPause)
	if !s.Paused() || !s.HUD().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 30; i++ {
		s.Tick(dt)
	}
	if s.State().TimeRemaining != time || s.Clock() != clock {
		t.Errorf("paused round advanced: time %v -> %v", time, s.State().TimeRemaining)
	}
	if got := components.Object.Get(s.Player()).Position; got != pos {
		t.Errorf("pug moved while paused: %v -> %v", pos, got)
	}

	s.KeyDown(config.ActionPause)
	s.Tick(dt)
	if s.Paused() || s.State().TimeRemaining >= time {
		t.Error("expected the round to resume")
	}
}

func TestResize(t *testing.T) {
	s := newTestSession(t, flatLevel())
	s.Resize(800, 600)
	if got := s.Camera().Aspect(); !near(got, 4.0/3, 1e-12) {
		t.Errorf("aspect = %v, want 4/3", got)
	}
	s.Resize(0, 10)
	if cam := s.Camera(); cam.Width != 800 || cam.Height != 600 {
		t.Errorf("invalid size applied: %dx%d", cam.Width, cam.Height)
	}
}

func TestHUDTracksSpeed(t *testing.T) {
	s := newTestSession(t, flatLevel())
	if got := s.HUD().Speed; got != 0 {
		t.Errorf("speed without intent = %v, want 0", got)
	}
	s.KeyDown(config.ActionForward)
	s.Tick(dt)
	s.Tick(dt)
	if got, want := s.HUD().Speed, config.Player.BaseSpeed+2*config.Player.SpeedRamp; got != want {
		t.Errorf("speed = %v, want %v", got, want)
	}
}
