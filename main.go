package main

import (
	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/fonts"
	"github.com/automoto/pugtreats/logger"
	"github.com/automoto/pugtreats/scenes"
	"github.com/automoto/pugtreats/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by scenes that follow the window size.
type Resizer interface {
	Resize(width, height int)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(bindings systems.KeyBindings) *Game {
	g := &Game{}
	g.scene = scenes.NewWorldScene(g, bindings)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders at the window size so the canvas always fills the window.
func (g *Game) Layout(width, height int) (int, int) {
	if r, ok := g.scene.(Resizer); ok {
		r.Resize(width, height)
	}
	return width, height
}

func main() {
	config.ParseFlags()
	if err := config.Load(); err != nil {
		// Logger is not configured yet
		_ = logger.Init("info", "")
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := logger.Init(config.Logging.Level, config.Logging.LogFile); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleFontSize); err != nil {
		logger.Fatal("could not load fonts", zap.Error(err))
	}

	bindings, err := systems.ResolveBindings()
	if err != nil {
		logger.Fatal("invalid key bindings", zap.Error(err))
	}

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("best run will not be saved", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", zap.String("level", config.C.Level), zap.String("physics", config.Physics.Mode))
	if err := ebiten.RunGame(NewGame(bindings)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
