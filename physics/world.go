package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/automoto/pugtreats/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

var ErrUnknownBody = errors.New("unknown body")

// resolv tags
const (
	tagBody  = "body"
	tagSolid = "solid"
)

// broadphaseMargin inflates every resolv object so bodies within contact slop
// always share a cell.
const broadphaseMargin = 2.0

// overlapTolerance absorbs rounding when a body rests flush against a solid.
const overlapTolerance = 1e-9

// World owns the bodies and steps them. Not safe for concurrent use.
type World struct {
	Gravity mgl64.Vec3

	space  *resolv.Space
	extent float64
	slop   float64

	bodies map[BodyID]*Body
	order  []*Body
	nextID BodyID

	listeners map[BodyID][]func(Contact)
	touching  map[pair]struct{}
}

// NewWorld creates an empty world sized from config.Physics.
func NewWorld() *World {
	extent := config.Physics.WorldExtent
	size := int(math.Ceil(2 * extent))
	cell := config.Physics.CellSize
	return &World{
		Gravity:   mgl64.Vec3{0, config.Physics.Gravity, 0},
		space:     resolv.NewSpace(size, size, cell, cell),
		extent:    extent,
		slop:      config.Physics.ContactSlop,
		bodies:    map[BodyID]*Body{},
		nextID:    GroundID + 1,
		listeners: map[BodyID][]func(Contact){},
		touching:  map[pair]struct{}{},
	}
}

// Add creates a body from def.
func (w *World) Add(def BodyDef) *Body {
	b := newBody(w.nextID, def)
	w.nextID++

	tags := []string{tagBody}
	if b.Static() && !b.Sensor {
		tags = append(tags, tagSolid)
	}
	b.obj = resolv.NewObject(0, 0, 1, 1, tags...)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.syncObject(b)

	w.bodies[b.ID] = b
	w.order = append(w.order, b)
	return b
}

// Body returns a live body.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.order)
}

// Remove deletes a body. It is safe to call from a contact callback; pending
// events involving the body are dropped.
func (w *World) Remove(id BodyID) error {
	b, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownBody)
	}
	b.removed = true
	w.space.Remove(b.obj)
	delete(w.bodies, id)
	delete(w.listeners, id)
	for i, o := range w.order {
		if o == b {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	for p := range w.touching {
		if p.self == id || p.other == id {
			delete(w.touching, p)
		}
	}
	return nil
}

// OnCollision registers fn for contacts of body id. Only bodies with a
// listener are tested for contacts.
func (w *World) OnCollision(id BodyID, fn func(Contact)) error {
	if _, ok := w.bodies[id]; !ok {
		return fmt.Errorf("listen on %d: %w", id, ErrUnknownBody)
	}
	w.listeners[id] = append(w.listeners[id], fn)
	return nil
}

// Step advances the simulation by dt seconds and then dispatches contact
// begin/end events.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.order {
		if b.Static() {
			continue
		}
		w.integrate(b, dt)
		w.move(b, dt)
		w.rotate(b, dt)
	}

	w.dispatch(w.detectContacts())
}

func (w *World) integrate(b *Body, dt float64) {
	acc := w.Gravity.Add(b.force.Mul(b.invMass))
	b.LinearVelocity = b.LinearVelocity.Add(acc.Mul(dt))

	alpha := mulElem(mulElem(b.torque, b.invInertia), b.AngularFactor)
	b.AngularVelocity = b.AngularVelocity.Add(alpha.Mul(dt))

	b.LinearVelocity = b.LinearVelocity.Mul(dampFactor(b.LinearDamping, dt))
	b.AngularVelocity = b.AngularVelocity.Mul(dampFactor(b.AngularDamping, dt))

	if b.grounded && b.Material.Friction > 0 {
		b.LinearVelocity = applyFriction(b.LinearVelocity, b.Material.Friction*math.Abs(w.Gravity.Y())*dt)
	}

	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}

// dampFactor follows Bullet: v *= (1-d)^dt.
func dampFactor(d, dt float64) float64 {
	if d <= 0 {
		return 1
	}
	if d >= 1 {
		return 0
	}
	return math.Pow(1-d, dt)
}

// applyFriction removes up to loss from the horizontal speed.
func applyFriction(v mgl64.Vec3, loss float64) mgl64.Vec3 {
	h := mgl64.Vec3{v.X(), 0, v.Z()}
	speed := h.Len()
	if speed == 0 {
		return v
	}
	if speed <= loss {
		return mgl64.Vec3{0, v.Y(), 0}
	}
	h = h.Mul((speed - loss) / speed)
	return mgl64.Vec3{h.X(), v.Y(), h.Z()}
}

func (w *World) move(b *Body, dt float64) {
	d := b.LinearVelocity.Mul(dt)

	dx := w.sweep(b, 0, d.X())
	b.Position[0] += dx
	w.syncObject(b)

	dz := w.sweep(b, 2, d.Z())
	b.Position[2] += dz

	b.Position[1] += d.Y()
	hy := b.HalfExtents.Y()
	if b.Position.Y()-hy <= 0 {
		b.Position[1] = hy
		if vy := b.LinearVelocity.Y(); vy < 0 {
			b.LinearVelocity[1] = -vy * b.Material.Restitution
			if b.LinearVelocity[1] < 0.1 {
				b.LinearVelocity[1] = 0
			}
		}
		b.grounded = true
	} else {
		b.grounded = b.Position.Y()-hy <= w.slop && b.LinearVelocity.Y() <= 0
	}

	limit := w.extent - b.footprint() - broadphaseMargin
	for _, axis := range []int{0, 2} {
		if b.Position[axis] > limit {
			b.Position[axis] = limit
			b.LinearVelocity[axis] = 0
		} else if b.Position[axis] < -limit {
			b.Position[axis] = -limit
			b.LinearVelocity[axis] = 0
		}
	}

	w.syncObject(b)
}

// sweep clips a move of delta along axis (0 = X, 2 = Z) against solid bodies.
func (w *World) sweep(b *Body, axis int, delta float64) float64 {
	if delta == 0 || b.Sensor {
		return delta
	}

	var cdx, cdy float64
	perp := 2
	if axis == 0 {
		cdx = delta
	} else {
		cdy = delta
		perp = 0
	}

	check := b.obj.Check(cdx, cdy, tagSolid)
	if check == nil {
		return delta
	}

	blocked := false
	for _, o := range check.ObjectsByTags(tagSolid) {
		other, ok := o.Data.(*Body)
		if !ok || other == b || other.removed {
			continue
		}
		reach := b.footprint() + other.footprint()
		if math.Abs(b.Position.Y()-other.Position.Y()) >= b.HalfExtents.Y()+other.HalfExtents.Y() {
			continue
		}
		if math.Abs(b.Position[perp]-other.Position[perp]) >= reach {
			continue
		}
		gap := math.Abs(other.Position[axis]-b.Position[axis]) - reach
		if gap < -overlapTolerance {
			// Already overlapping, let it move out.
			continue
		}
		gap = math.Max(gap, 0)
		if delta > 0 && other.Position[axis] > b.Position[axis] && delta > gap {
			delta = gap
			blocked = true
		} else if delta < 0 && other.Position[axis] < b.Position[axis] && -delta > gap {
			delta = -gap
			blocked = true
		}
	}
	if blocked {
		b.LinearVelocity[axis] = 0
	}
	return delta
}

func (w *World) rotate(b *Body, dt float64) {
	omega := b.AngularVelocity
	if omega == (mgl64.Vec3{}) {
		return
	}
	spin := mgl64.Quat{W: 0, V: omega}.Mul(b.Orientation).Scale(0.5 * dt)
	b.Orientation = b.Orientation.Add(spin).Normalize()
}

// syncObject places the resolv object over the body's XZ footprint.
func (w *World) syncObject(b *Body) {
	r := b.footprint() + broadphaseMargin
	b.obj.X = b.Position.X() - r + w.extent
	b.obj.Y = b.Position.Z() - r + w.extent
	b.obj.W = 2 * r
	b.obj.H = 2 * r
	b.obj.Update()
}

func (w *World) touchingBodies(a, b *Body) bool {
	reach := a.footprint() + b.footprint() + w.slop
	if math.Abs(a.Position.X()-b.Position.X()) > reach {
		return false
	}
	if math.Abs(a.Position.Z()-b.Position.Z()) > reach {
		return false
	}
	return math.Abs(a.Position.Y()-b.Position.Y()) <= a.HalfExtents.Y()+b.HalfExtents.Y()+w.slop
}

func (w *World) detectContacts() []Contact {
	current := make(map[pair]struct{}, len(w.touching))

	for _, b := range w.order {
		if _, listening := w.listeners[b.ID]; !listening {
			continue
		}
		if b.Position.Y()-b.HalfExtents.Y() <= w.slop {
			current[pair{b.ID, GroundID}] = struct{}{}
		}
		check := b.obj.Check(0, 0, tagBody)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == b || other.removed {
				continue
			}
			if w.touchingBodies(b, other) {
				current[pair{b.ID, other.ID}] = struct{}{}
			}
		}
	}

	var events []Contact
	for p := range current {
		if _, was := w.touching[p]; !was {
			events = append(events, Contact{Self: p.self, Other: p.other, Phase: PhaseStart})
		}
	}
	for p := range w.touching {
		if _, still := current[p]; !still {
			events = append(events, Contact{Self: p.self, Other: p.other, Phase: PhaseEnd})
		}
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Self != b.Self {
			return a.Self < b.Self
		}
		if a.Phase != b.Phase {
			return a.Phase > b.Phase // ends before starts
		}
		return a.Other < b.Other
	})

	w.touching = current
	return events
}

func (w *World) dispatch(events []Contact) {
	for _, ev := range events {
		if !w.live(ev.Self) || (ev.Other != GroundID && !w.live(ev.Other)) {
			continue
		}
		fns := append([]func(Contact){}, w.listeners[ev.Self]...)
		for _, fn := range fns {
			fn(ev)
			if !w.live(ev.Self) {
				break
			}
		}
	}
}

func (w *World) live(id BodyID) bool {
	_, ok := w.bodies[id]
	return ok
}
