package systems

import (
	"fmt"

	"github.com/automoto/pugtreats/components"
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/fonts"
	"github.com/automoto/pugtreats/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug prints clip, speed, pose and frame rate in the bottom-left
// corner when the debug overlay is on.
func NewDrawDebug(s *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Overlay {
			return
		}
		hud := s.HUD()
		body := components.Object.Get(s.Player()).Body
		p := body.Position
		airborne := components.Player.Get(s.Player()).Adapter.Airborne()

		lines := []string{
			fmt.Sprintf("clip %s  speed %.0f  airborne %v", hud.Clip, hud.Speed, airborne),
			fmt.Sprintf("pos %.1f %.1f %.1f  heading %.2f", p.X(), p.Y(), p.Z(), body.Heading()),
			fmt.Sprintf("bodies %d  fps %.0f  tps %.0f", s.Physics.Len(), ebiten.ActualFPS(), ebiten.ActualTPS()),
		}

		face := fonts.Small.Get()
		lineHeight := face.Metrics().Height.Ceil()
		x := int(cfg.HUD.Margin)
		y := screen.Bounds().Dy() - int(cfg.HUD.Margin) - lineHeight*(len(lines)-1)
		for i, line := range lines {
			text.Draw(screen, line, face, x, y+i*lineHeight, cfg.White)
		}
	}
}
