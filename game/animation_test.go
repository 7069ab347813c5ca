package game

import (
	"math"
	"testing"

	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
)

func TestSelectClip(t *testing.T) {
	config.Reset()

	tests := []struct {
		name     string
		airborne bool
		in       *control.MotionIntent
		want     string
	}{
		{"no intent", false, nil, config.ClipIdle},
		{"turn only", false, &control.MotionIntent{Turn: 1, Speed: 50}, config.ClipIdle},
		{"jump pending on ground", false, &control.MotionIntent{Jump: true, Speed: 23}, config.ClipIdle},
		{"walk", false, &control.MotionIntent{Forward: 1, Speed: 23}, config.ClipWalk},
		{"walk at run threshold", false, &control.MotionIntent{Forward: 1, Speed: 30}, config.ClipWalk},
		{"run", false, &control.MotionIntent{Forward: 1, Speed: 31}, config.ClipRun},
		{"run at sprint threshold", false, &control.MotionIntent{Forward: 1, Speed: 40}, config.ClipRun},
		{"sprint", false, &control.MotionIntent{Forward: 1, Speed: 60}, config.ClipSprint},
		{"backward walk", false, &control.MotionIntent{Forward: -1, Speed: 23}, config.ClipWalk},
		{"airborne idle", true, nil, config.ClipJump},
		{"airborne sprint", true, &control.MotionIntent{Forward: 1, Speed: 60}, config.ClipJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectClip(tt.airborne, tt.in); got != tt.want {
				t.Errorf("SelectClip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPugMixer(t *testing.T) {
	config.Reset()
	mixer, err := NewPugMixer()
	if err != nil {
		t.Fatalf("NewPugMixer: %v", err)
	}
	for _, def := range config.PugClips {
		if _, err := mixer.Action(def.Name); err != nil {
			t.Errorf("clip %q missing: %v", def.Name, err)
		}
	}

	config.PugClips = append(config.PugClips, config.ClipDef{Name: "broken", StartFrame: 2700, EndFrame: 2800})
	t.Cleanup(config.Reset)
	if _, err := NewPugMixer(); err == nil {
		t.Error("expected error for a clip past the end of the track")
	}
}

func TestActiveClipIsNotRestarted(t *testing.T) {
	s := newTestSession(t, flatLevel())
	anim := components.Animation.Get(s.Player())

	s.KeyDown(config.ActionForward)
	if anim.Current != config.ClipWalk {
		t.Fatalf("clip = %q, want walk right after the key press", anim.Current)
	}
	for i := 0; i < 5; i++ {
		s.Tick(dt)
	}
	walk := anim.Active()
	before := walk.Time
	if before <= 0 {
		t.Fatalf("walk did not advance: time %v", before)
	}

	// Turning keeps the same clip and must not rewind it.
	s.KeyDown(config.ActionTurnLeft)
	if anim.Current != config.ClipWalk || walk.Time != before || !walk.IsRunning() {
		t.Errorf("clip %q time %v running %v, want walk at %v still running",
			anim.Current, walk.Time, walk.IsRunning(), before)
	}

	idle, err := anim.Mixer.Action(config.ClipIdle)
	if err != nil {
		t.Fatal(err)
	}
	if idle.IsRunning() {
		t.Error("previous clip still running after the transition")
	}
}

func TestBackwardPlaysReversed(t *testing.T) {
	s := newTestSession(t, flatLevel())
	anim := components.Animation.Get(s.Player())

	s.KeyDown(config.ActionBackward)
	walk := anim.Active()
	if anim.Current != config.ClipWalk {
		t.Fatalf("clip = %q, want walk", anim.Current)
	}
	d := walk.Clip().Duration()
	if walk.TimeScale != -1 || walk.Time != d {
		t.Errorf("timeScale %v time %v, want -1 and %v", walk.TimeScale, walk.Time, d)
	}
	if !walk.Fading() || walk.Weight != 0 {
		t.Errorf("expected a crossfade starting at weight 0, got %v", walk.Weight)
	}

	s.Tick(dt)
	if walk.Time >= d {
		t.Errorf("reversed clip did not run backwards: time %v", walk.Time)
	}

	// Forward from a stop plays from the start.
	s.KeyUp(config.ActionBackward)
	s.KeyDown(config.ActionForward)
	walk = anim.Active()
	if walk.TimeScale != 1 || walk.Time != 0 {
		t.Errorf("timeScale %v time %v, want 1 and 0", walk.TimeScale, walk.Time)
	}
}

func TestSpeedTierTransitions(t *testing.T) {
	s := newTestSession(t, flatLevel())
	anim := components.Animation.Get(s.Player())

	s.KeyDown(config.ActionForward)
	seen := []string{anim.Current}
	for i := 0; i < 60; i++ {
		s.Tick(dt)
		if last := seen[len(seen)-1]; anim.Current != last {
			seen = append(seen, anim.Current)
		}
	}
	want := []string{config.ClipWalk, config.ClipRun, config.ClipSprint}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", seen, want)
		}
	}

	s.KeyUp(config.ActionForward)
	if anim.Current != config.ClipIdle {
		t.Errorf("clip after release = %q, want idle", anim.Current)
	}
}

func TestReversingMidSprintFlipsInPlace(t *testing.T) {
	s := newTestSession(t, flatLevel())
	anim := components.Animation.Get(s.Player())

	s.KeyDown(config.ActionForward)
	for i := 0; i < 120 && anim.Current != config.ClipSprint; i++ {
		s.Tick(dt)
	}
	if anim.Current != config.ClipSprint {
		t.Fatalf("clip = %q, want sprint after holding forward", anim.Current)
	}
	sprint := anim.Active()
	before, weight := sprint.Time, sprint.Weight

	// Speed is kept, so the tier stays sprint and only the direction flips.
	s.KeyDown(config.ActionBackward)
	if anim.Current != config.ClipSprint {
		t.Fatalf("clip = %q, want sprint kept while reversing", anim.Current)
	}
	if sprint.TimeScale != -1 {
		t.Errorf("timeScale = %v, want -1 while reversing", sprint.TimeScale)
	}
	if sprint.Time != before || sprint.Weight != weight || !sprint.IsRunning() {
		t.Errorf("sprint restarted: time %v weight %v running %v, want %v %v true",
			sprint.Time, sprint.Weight, sprint.IsRunning(), before, weight)
	}

	s.Tick(dt)
	d := sprint.Clip().Duration()
	if want := math.Mod(before-dt+d, d); !near(sprint.Time, want, 1e-9) {
		t.Errorf("time after reversed tick = %v, want %v", sprint.Time, want)
	}

	s.KeyDown(config.ActionForward)
	if anim.Current != config.ClipSprint || sprint.TimeScale != 1 {
		t.Errorf("clip %q timeScale %v, want sprint at 1 driving forward again", anim.Current, sprint.TimeScale)
	}
}
