package physics

// Phase of a contact event.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// Contact is delivered to the listeners of Self when it begins or stops
// touching Other.
type Contact struct {
	Self  BodyID
	Other BodyID
	Phase Phase
}

type pair struct {
	self  BodyID
	other BodyID
}
