package systems

import (
	"image/color"

	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/fonts"
	"github.com/automoto/pugtreats/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "P / Esc: Resume"

// NewDrawPause renders the pause overlay.
func NewDrawPause(s *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !s.Paused() {
			return
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

		drawCentered(screen, "PAUSED", fonts.Title, height*cfg.GameOver.TitleY, cfg.White)
		drawCentered(screen, pauseHint, fonts.Small, height*cfg.GameOver.HintY, cfg.White)
	}
}

// drawCentered draws msg horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, msg string, face fonts.FontName, y float64, clr color.Color) {
	f := face.Get()
	bounds := text.BoundString(f, msg)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, msg, f, x, int(y), clr)
}
