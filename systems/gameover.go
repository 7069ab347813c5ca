package systems

import (
	"fmt"

	"github.com/automoto/pugtreats/components"
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/fonts"
	"github.com/automoto/pugtreats/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawGameOver renders the game over overlay once the round has ended.
func NewDrawGameOver(s *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		st := s.State()
		if !st.GameOver {
			return
		}
		over := components.GameOver.Get(s.SessionEntry())

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.OverlayColor, false)

		drawCentered(screen, cfg.GameOver.Title, fonts.Title, height*cfg.GameOver.TitleY, cfg.GameOver.TitleColor)
		drawCentered(screen, gameOverMessage(st), fonts.Regular, height*cfg.GameOver.MessageY, cfg.GameOver.TextColor)

		best := fmt.Sprintf("Best: %d treats, %.1fs", over.Best.Collected, over.Best.Survived)
		if over.NewBest {
			best = "New best run!"
		}
		drawCentered(screen, best, fonts.Small, height*cfg.GameOver.MessageY+2*cfg.HUD.FontSize, cfg.GameOver.TextColor)
		drawCentered(screen, cfg.GameOver.RestartHint, fonts.Small, height*cfg.GameOver.HintY, cfg.GameOver.TextColor)
	}
}

func gameOverMessage(st *components.SessionData) string {
	reason := "Out of time"
	if st.Reason == components.ReasonHealth {
		reason = "Too many bushes"
	}
	return fmt.Sprintf("%s: %d treats in %.1fs", reason, st.Collected, st.Elapsed)
}
