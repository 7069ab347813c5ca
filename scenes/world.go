package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pugtreats/assets"
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/game"
	"github.com/automoto/pugtreats/logger"
	"github.com/automoto/pugtreats/systems"
	"github.com/automoto/pugtreats/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Render layers
const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene plays one round on the configured level.
type WorldScene struct {
	ecs          *ecs.ECS
	session      *game.Session
	hud          *ui.HUDUI
	sceneChanger SceneChanger
	bindings     systems.KeyBindings
	once         sync.Once

	width, height int
}

// NewWorldScene creates a round. The level is loaded on the first update.
func NewWorldScene(sc SceneChanger, bindings systems.KeyBindings) *WorldScene {
	return &WorldScene{sceneChanger: sc, bindings: bindings}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	ws.hud.Update(ws.session.HUD())
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	ws.hud.UI.Draw(screen)
}

// Resize follows the window size.
func (ws *WorldScene) Resize(width, height int) {
	if width == ws.width && height == ws.height {
		return
	}
	ws.width, ws.height = width, height
	if ws.session != nil {
		ws.session.Resize(width, height)
	}
}

func (ws *WorldScene) restart() {
	next := NewWorldScene(ws.sceneChanger, ws.bindings)
	next.Resize(ws.width, ws.height)
	ws.sceneChanger.ChangeScene(next)
}

func (ws *WorldScene) configure() {
	level, err := assets.LoadLevel(cfg.C.Level)
	if err != nil {
		logger.Fatal("could not load level", zap.String("level", cfg.C.Level), zap.Error(err))
	}

	session, err := game.New(game.Options{Level: level})
	if err != nil {
		logger.Fatal("could not start session", zap.Error(err))
	}
	session.OnGameOver(systems.NewRecordBestRun(session))
	if ws.width > 0 && ws.height > 0 {
		session.Resize(ws.width, ws.height)
	}

	hud, err := ui.NewHUDUI()
	if err != nil {
		logger.Fatal("could not build HUD", zap.Error(err))
	}

	ecs := ecs.NewECS(session.World)

	// Input runs first so key edges reach the session before the tick
	ecs.AddSystem(systems.NewUpdateInput(session, ws.bindings))
	ecs.AddSystem(systems.NewUpdateSession(session))
	ecs.AddSystem(systems.NewUpdateGameOver(session, ws.restart))

	ecs.AddRenderer(layerWorld, systems.NewDrawWorld(session))
	ecs.AddRenderer(layerOverlay, systems.NewDrawHUD(session))
	ecs.AddRenderer(layerOverlay, systems.NewDrawDebug(session))
	ecs.AddRenderer(layerOverlay, systems.NewDrawPause(session))
	ecs.AddRenderer(layerOverlay, systems.NewDrawGameOver(session))

	ws.ecs = ecs
	ws.session = session
	ws.hud = hud
}
