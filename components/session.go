package components

import "github.com/yohamta/donburi"

// SessionData is the round state. This is a singleton component.
type SessionData struct {
	TimeRemaining    float64 // Seconds left on the clock
	Elapsed          float64 // Seconds survived
	TotalPickups     int
	RemainingPickups int
	Collected        int
	ObstacleHits     int
	GameOver         bool
	Reason           string // "time" or "health" once GameOver is set
}

// Game over reasons
const (
	ReasonTime   = "time"
	ReasonHealth = "health"
)

var Session = donburi.NewComponentType[SessionData]()
