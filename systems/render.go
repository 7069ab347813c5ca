package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/pugtreats/components"
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/game"
	"github.com/automoto/pugtreats/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bobHeight is how far the pug rises and falls over one clip loop.
const bobHeight = 0.4

// sprite is one projected body, drawn as a disc.
type sprite struct {
	x, y, r float32
	depth   float64
	clr     color.RGBA
	nose    *[2]float32
}

var sprites []sprite

// NewDrawWorld renders the ground grid and every body, far to near.
func NewDrawWorld(s *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Scene.SkyColor)

		cam := s.Camera()
		vp := cam.ViewProjection()
		center := components.Transform.Get(s.Player()).Position

		drawGround(screen, cam, vp, center)

		sprites = sprites[:0]
		tags.Bush.Each(e.World, func(entry *donburi.Entry) {
			tr := components.Transform.Get(entry)
			addSprite(screen, cam, vp, tr.Position, tr.Scale, cfg.Scene.BushColor)
		})
		tags.Treat.Each(e.World, func(entry *donburi.Entry) {
			body := components.Object.Get(entry).Body
			addSprite(screen, cam, vp, body.Position, body.HalfExtents.X(), cfg.Scene.TreatColor)
		})
		addPug(screen, cam, vp, s.Player())

		sort.Slice(sprites, func(i, j int) bool {
			return sprites[i].depth > sprites[j].depth
		})
		for _, sp := range sprites {
			vector.DrawFilledCircle(screen, sp.x, sp.y, sp.r, sp.clr, true)
			if sp.nose != nil {
				vector.DrawFilledCircle(screen, sp.nose[0], sp.nose[1], sp.r/4, cfg.Scene.PugNoseColor, true)
			}
		}
	}
}

func drawGround(screen *ebiten.Image, cam *components.CameraData, vp mgl64.Mat4, center mgl64.Vec3) {
	step := cfg.Scene.GridSpacing
	half := cfg.Scene.GridHalfWidth
	if step <= 0 {
		return
	}
	cx := math.Round(center.X()/step) * step
	cz := math.Round(center.Z()/step) * step

	for d := -half; d <= half; d += step {
		drawGroundLine(screen, cam, vp, mgl64.Vec3{cx + d, 0, cz - half}, mgl64.Vec3{cx + d, 0, cz + half})
		drawGroundLine(screen, cam, vp, mgl64.Vec3{cx - half, 0, cz + d}, mgl64.Vec3{cx + half, 0, cz + d})
	}
}

// drawGroundLine draws the visible part of a ground segment, walking it in
// steps so lines crossing the eye plane are cut rather than wrapped.
func drawGroundLine(screen *ebiten.Image, cam *components.CameraData, vp mgl64.Mat4, a, b mgl64.Vec3) {
	const segments = 8
	prevX, prevY, _, prevOK := cam.Project(vp, a)
	for i := 1; i <= segments; i++ {
		p := a.Add(b.Sub(a).Mul(float64(i) / segments))
		x, y, _, ok := cam.Project(vp, p)
		if ok && prevOK {
			vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 1, cfg.Scene.GridColor, false)
		}
		prevX, prevY, prevOK = x, y, ok
	}
}

func addSprite(screen *ebiten.Image, cam *components.CameraData, vp mgl64.Mat4, pos mgl64.Vec3, radius float64, clr color.RGBA) *sprite {
	x, y, depth, ok := cam.Project(vp, pos)
	if !ok || depth > 1 {
		return nil
	}
	r := radius * cam.PixelsPerUnit(pos.Sub(cam.Position).Len())
	if r < 1 {
		r = 1
	}

	// Shadow on the ground under airborne bodies
	if pos.Y() > radius {
		if sx, sy, _, ok := cam.Project(vp, mgl64.Vec3{pos.X(), 0, pos.Z()}); ok {
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*0.8), cfg.Scene.ShadowColor, true)
		}
	}

	sprites = append(sprites, sprite{x: float32(x), y: float32(y), r: float32(r), depth: depth, clr: clr})
	return &sprites[len(sprites)-1]
}

func addPug(screen *ebiten.Image, cam *components.CameraData, vp mgl64.Mat4, pug *donburi.Entry) {
	tr := components.Transform.Get(pug)
	body := components.Object.Get(pug).Body
	anim := components.Animation.Get(pug)

	pos := tr.Position
	if action := anim.Active(); action != nil {
		clip := action.Clip()
		if span := clip.Last - clip.First; span > 0 {
			phase := float64(action.Frame()-clip.First) / float64(span)
			pos = pos.Add(mgl64.Vec3{0, bobHeight * action.Weight * math.Sin(2*math.Pi*phase), 0})
		}
	}

	sp := addSprite(screen, cam, vp, pos, body.HalfExtents.X(), cfg.Scene.PugColor)
	if sp == nil {
		return
	}
	nose := pos.Add(body.Forward().Mul(body.HalfExtents.Z()))
	if nx, ny, _, ok := cam.Project(vp, nose); ok {
		sp.nose = &[2]float32{float32(nx), float32(ny)}
	}
}
