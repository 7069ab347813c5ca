package animations

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	ErrClipRange   = errors.New("clip range outside track")
	ErrUnknownClip = errors.New("unknown clip")
)

// Track is one long keyframed animation that clips are cut from.
type Track struct {
	Name   string
	Frames int
	FPS    float64
}

// Clip is a named frame range of a track.
type Clip struct {
	Name  string
	First int
	Last  int
	FPS   float64
}

// Subclip cuts frames [first, last] out of the track.
func Subclip(track Track, name string, first, last int) (*Clip, error) {
	if first < 0 || last > track.Frames || last <= first {
		return nil, fmt.Errorf("%s %d-%d of %s (%d frames): %w", name, first, last, track.Name, track.Frames, ErrClipRange)
	}
	return &Clip{Name: name, First: first, Last: last, FPS: track.FPS}, nil
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	return float64(c.Last-c.First) / c.FPS
}

// Action is the playback state of one clip: local time, direction and blend
// weight. Playback loops in both directions.
type Action struct {
	clip      *Clip
	Time      float64
	TimeScale float64
	Weight    float64
	running   bool
	fade      *gween.Tween
}

// NewAction returns a stopped action for clip.
func NewAction(clip *Clip) *Action {
	return &Action{clip: clip, TimeScale: 1, Weight: 1}
}

// Clip returns the clip this action plays.
func (a *Action) Clip() *Clip {
	return a.clip
}

// Reset rewinds to the start and cancels any fade. Time scale is kept.
func (a *Action) Reset() *Action {
	a.Time = 0
	a.Weight = 1
	a.fade = nil
	return a
}

// Play starts or resumes playback.
func (a *Action) Play() *Action {
	a.running = true
	return a
}

// Stop halts playback and rewinds.
func (a *Action) Stop() *Action {
	a.running = false
	a.Time = 0
	a.fade = nil
	return a
}

// FadeIn ramps the weight from 0 to 1 over duration seconds.
func (a *Action) FadeIn(duration float64) *Action {
	if duration <= 0 {
		a.Weight = 1
		a.fade = nil
		return a
	}
	a.Weight = 0
	a.fade = gween.New(0, 1, float32(duration), ease.Linear)
	return a
}

// IsRunning reports whether the action is playing.
func (a *Action) IsRunning() bool {
	return a.running
}

// Fading reports whether a fade is still in progress.
func (a *Action) Fading() bool {
	return a.fade != nil
}

// Update advances time by dt scaled by TimeScale and steps the fade.
func (a *Action) Update(dt float64) {
	if !a.running {
		return
	}

	if a.fade != nil {
		w, finished := a.fade.Update(float32(dt))
		a.Weight = float64(w)
		if finished {
			a.Weight = 1
			a.fade = nil
		}
	}

	d := a.clip.Duration()
	if d <= 0 {
		return
	}
	a.Time += dt * a.TimeScale
	if a.Time >= d || a.Time < 0 {
		a.Time = math.Mod(a.Time, d)
		if a.Time < 0 {
			a.Time += d
		}
	}
}

// Frame returns the track frame shown at the current time.
func (a *Action) Frame() int {
	f := a.clip.First + int(a.Time*a.clip.FPS+1e-9)
	if f > a.clip.Last {
		return a.clip.Last
	}
	return f
}
