package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is a perspective camera orbiting the pug.
type CameraData struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	FOV       float64 // Vertical, degrees
	Near, Far float64
	Width     int
	Height    int

	// User orbit on top of the follow offset
	OrbitYaw   float64
	OrbitPolar float64
}

// Aspect returns width/height of the output.
func (c *CameraData) Aspect() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// ViewProjection returns projection * view.
func (c *CameraData) ViewProjection() mgl64.Mat4 {
	up := c.Up
	if up == (mgl64.Vec3{}) {
		up = mgl64.Vec3{0, 1, 0}
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)
	view := mgl64.LookAtV(c.Position, c.Target, up)
	return proj.Mul4(view)
}

// Project maps a world point to screen pixels. ok is false behind the camera.
// depth is the normalized device depth, smaller is nearer.
func (c *CameraData) Project(vp mgl64.Mat4, p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float64(c.Width)
	y = (1 - ndc.Y()) / 2 * float64(c.Height)
	return x, y, ndc.Z(), true
}

// PixelsPerUnit approximates the screen size of one world unit at distance d.
func (c *CameraData) PixelsPerUnit(d float64) float64 {
	if d <= 0 {
		return 0
	}
	return float64(c.Height) / (2 * d * math.Tan(mgl64.DegToRad(c.FOV)/2))
}

var Camera = donburi.NewComponentType[CameraData]()
