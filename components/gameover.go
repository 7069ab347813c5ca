package components

import "github.com/yohamta/donburi"

// BestRun is the persisted record shown on the game over screen.
type BestRun struct {
	Collected int     `json:"collected"`
	Survived  float64 `json:"survived"`
}

// Beats reports whether r ranks above other: more treats first, then the
// longer survival time.
func (r BestRun) Beats(other BestRun) bool {
	if r.Collected != other.Collected {
		return r.Collected > other.Collected
	}
	return r.Survived > other.Survived
}

// GameOverData stores what the game over overlay shows
type GameOverData struct {
	Best    BestRun
	NewBest bool
}

var GameOver = donburi.NewComponentType[GameOverData]()
