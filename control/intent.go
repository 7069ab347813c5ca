// Package control turns keyboard edges into the character's motion intent.
package control

import "github.com/automoto/pugtreats/config"

// MotionIntent is the character's current movement request.
type MotionIntent struct {
	Forward   int     // -1 backward, 0 none, +1 forward
	Turn      int     // -1, 0, +1
	Jump      bool    // Pending jump request
	Speed     float64 // Magnitude multiplier, ramps while moving forward
	StartTime float64 // Session clock when the intent was created
}

// Moving reports whether the intent asks for travel along the heading.
func (m *MotionIntent) Moving() bool {
	return m != nil && m.Forward != 0
}

// Store owns the optional intent of one character. A nil intent means no
// input is held.
type Store struct {
	intent *MotionIntent
}

// Intent returns the current intent or nil.
func (s *Store) Intent() *MotionIntent {
	return s.intent
}

// SetIntent is the single mutation point for key-driven changes. All-neutral
// input clears the intent; otherwise the intent is created at the base speed
// or updated in place keeping its speed.
func (s *Store) SetIntent(forward, turn int, jump bool, now float64) {
	if forward == 0 && turn == 0 && !jump {
		s.intent = nil
		return
	}
	if s.intent == nil {
		s.intent = &MotionIntent{
			Speed:     config.Player.BaseSpeed,
			StartTime: now,
		}
	}
	s.intent.Forward = clampAxis(forward)
	s.intent.Turn = clampAxis(turn)
	s.intent.Jump = jump
}

// ConsumeJump clears a pending jump request and reports whether there was one.
// The intent is dropped if nothing else is held.
func (s *Store) ConsumeJump(now float64) bool {
	if s.intent == nil || !s.intent.Jump {
		return false
	}
	s.SetIntent(s.intent.Forward, s.intent.Turn, false, now)
	return true
}

// ClearJump drops a pending jump without reporting it, used on landing.
func (s *Store) ClearJump(now float64) {
	s.ConsumeJump(now)
}

// Ramp raises the speed by one step while moving forward, up to the cap.
func (s *Store) Ramp() {
	m := s.intent
	if m == nil || m.Forward <= 0 || m.Speed >= config.Player.MaxSpeed {
		return
	}
	m.Speed += config.Player.SpeedRamp
	if m.Speed > config.Player.MaxSpeed {
		m.Speed = config.Player.MaxSpeed
	}
}

func clampAxis(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
