package game

import (
	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
	"go.uber.org/zap"
)

// SelectClip picks the clip for a motion state: jump while airborne, a
// speed tier while moving, idle otherwise.
func SelectClip(airborne bool, in *control.MotionIntent) string {
	if airborne {
		return config.ClipJump
	}
	if !in.Moving() {
		return config.ClipIdle
	}
	switch {
	case in.Speed > config.Animation.SprintAbove:
		return config.ClipSprint
	case in.Speed > config.Animation.RunAbove:
		return config.ClipRun
	}
	return config.ClipWalk
}

// playbackScale is -1 while driving backward, 1 otherwise.
func playbackScale(in *control.MotionIntent) float64 {
	if in != nil && in.Forward < 0 {
		return -1
	}
	return 1
}

// reselect crossfades to the selected clip if it differs from the active one.
// When the clip stays but the drive direction flips, it keeps playing from
// where it is in the new direction. A clip in the selector's set that the
// mixer lacks is a setup error; it is logged and the active clip keeps playing.
func (s *Session) reselect() {
	p := components.Player.Get(s.player)
	anim := components.Animation.Get(s.player)
	in := p.Intent.Intent()

	candidate := SelectClip(p.Adapter.Airborne(), in)
	if candidate == anim.Current {
		s.matchDirection(anim, in)
		return
	}

	action, err := anim.Mixer.Action(candidate)
	if err != nil {
		s.log.Error("clip selection failed", zap.Error(err))
		return
	}

	anim.Mixer.StopAllAction()
	action.Reset()
	action.TimeScale = playbackScale(in)
	if action.TimeScale < 0 {
		action.Time = action.Clip().Duration()
	} else {
		action.Time = 0
	}
	action.FadeIn(config.Animation.CrossfadeSeconds).Play()

	s.log.Debug("clip",
		zap.String("from", anim.Current),
		zap.String("to", candidate),
		zap.Float64("timeScale", action.TimeScale),
	)
	anim.Current = candidate
}

func (s *Session) matchDirection(anim *components.AnimationData, in *control.MotionIntent) {
	action := anim.Active()
	if action == nil {
		return
	}
	scale := playbackScale(in)
	if action.TimeScale == scale {
		return
	}
	action.TimeScale = scale
	s.log.Debug("clip direction",
		zap.String("clip", anim.Current),
		zap.Float64("timeScale", scale),
	)
}
