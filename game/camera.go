package game

import (
	"math"

	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/config"
	"github.com/go-gl/mathgl/mgl64"
)

// updateCamera keeps the eye at the pug-local follow offset, applies the
// user orbit and clamps the polar angle around the look-at target.
func (s *Session) updateCamera() {
	cam := components.Camera.Get(s.camera)
	tr := components.Transform.Get(s.player)

	target := tr.Position.Add(mgl64.Vec3{0, config.Camera.TargetHeight, 0})
	offset := tr.Orientation.Rotate(mgl64.Vec3{config.Camera.OffsetX, config.Camera.OffsetY, config.Camera.OffsetZ})
	eye := tr.Position.Add(offset)

	cam.Target = target
	cam.Position = orbit(target, eye, cam.OrbitYaw, cam.OrbitPolar)
}

// orbit re-places eye on the sphere around target after adding yaw and polar
// offsets, with the polar angle kept in the configured range.
func orbit(target, eye mgl64.Vec3, dYaw, dPolar float64) mgl64.Vec3 {
	d := eye.Sub(target)
	r := d.Len()
	if r == 0 {
		return eye
	}

	azimuth := math.Atan2(d.X(), d.Z()) + dYaw
	polar := math.Acos(mgl64.Clamp(d.Y()/r, -1, 1)) + dPolar
	polar = mgl64.Clamp(polar, config.Camera.MinPolar, config.Camera.MaxPolar)

	sp := math.Sin(polar)
	return target.Add(mgl64.Vec3{
		r * sp * math.Sin(azimuth),
		r * math.Cos(polar),
		r * sp * math.Cos(azimuth),
	})
}

// Orbit adds a user drag to the follow camera.
func (s *Session) Orbit(dYaw, dPolar float64) {
	cam := components.Camera.Get(s.camera)
	cam.OrbitYaw = math.Mod(cam.OrbitYaw+dYaw, 2*math.Pi)
	cam.OrbitPolar = mgl64.Clamp(cam.OrbitPolar+dPolar, -math.Pi/2, math.Pi/2)
}
