package systems

import (
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawHUD renders the health bar in the top-left corner. Its width
// follows health/max.
func NewDrawHUD(s *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		hud := s.HUD()
		x := float32(cfg.HUD.Margin)
		y := float32(cfg.HUD.Margin)
		w := float32(cfg.HUD.HealthBarWidth)
		h := float32(cfg.HUD.HealthBarHeight)

		vector.FillRect(screen, x, y, w, h, cfg.HUD.HealthBarBgColor, false)

		fg := cfg.HUD.HealthBarFgColor
		if hud.HealthFraction < 0.25 {
			fg = cfg.Red
		}
		vector.FillRect(screen, x, y, w*float32(hud.HealthFraction), h, fg, false)
	}
}
