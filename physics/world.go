package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// restingBounce is the rebound speed below which a ground impact stops dead
const restingBounce = 0.5

// WorldConfig configures a World
type WorldConfig struct {
	Gravity     mgl64.Vec3
	GroundY     float64
	ContactSkin float64
	SleepSpeed  float64
	SleepTicks  int
	Extent      int // Bodies must stay within [-Extent, Extent) on X and Z
	CellSize    int
}

// CollisionEvent is delivered to the handlers registered for Self
type CollisionEvent struct {
	Self  *Body
	Other *Body
}

// CollisionHandler receives collision enter or exit events
type CollisionHandler func(ev CollisionEvent)

type pairKey struct {
	a, b int
}

func makePair(a, b *Body) pairKey {
	if a.id < b.id {
		return pairKey{a.id, b.id}
	}
	return pairKey{b.id, a.id}
}

// World steps box bodies over a flat ground plane. resolv buckets the bodies'
// ground footprints; boxes that share a cell are tested exactly.
type World struct {
	gravity    mgl64.Vec3
	groundY    float64
	skin       float64
	sleepSpeed float64
	sleepTicks int
	offset     float64

	space  *resolv.Space
	bodies []*Body
	byID   map[int]*Body
	nextID int

	contacts map[pairKey]struct{}
	onEnter  map[*Body][]CollisionHandler
	onExit   map[*Body][]CollisionHandler
}

func NewWorld(cfg WorldConfig) *World {
	if cfg.Extent <= 0 {
		cfg.Extent = 128
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 4
	}
	size := cfg.Extent * 2
	return &World{
		gravity:    cfg.Gravity,
		groundY:    cfg.GroundY,
		skin:       cfg.ContactSkin,
		sleepSpeed: cfg.SleepSpeed,
		sleepTicks: cfg.SleepTicks,
		offset:     float64(cfg.Extent),
		space:      resolv.NewSpace(size, size, cfg.CellSize, cfg.CellSize),
		byID:       map[int]*Body{},
		contacts:   map[pairKey]struct{}{},
		onEnter:    map[*Body][]CollisionHandler{},
		onExit:     map[*Body][]CollisionHandler{},
	}
}

// AddBody creates a body and registers it with the broadphase
func (w *World) AddBody(desc BodyDesc) *Body {
	w.nextID++
	b := newBody(w.nextID, desc)
	b.world = w
	var tags []string
	if desc.Tag != "" {
		tags = append(tags, desc.Tag)
	}
	b.obj = resolv.NewObject(0, 0, 1, 1, tags...)
	b.obj.Data = b
	w.space.Add(b.obj)
	b.syncProxy()

	w.bodies = append(w.bodies, b)
	w.byID[b.id] = b
	return b
}

// RemoveBody detaches a body. Its contacts are dropped without exit events
// and its handlers are forgotten.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.space.Remove(b.obj)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	delete(w.byID, b.id)
	for key := range w.contacts {
		if key.a == b.id || key.b == b.id {
			delete(w.contacts, key)
		}
	}
	delete(w.onEnter, b)
	delete(w.onExit, b)
	b.world = nil
}

// Bodies returns the live bodies in creation order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// OnCollisionEnter registers fn for contacts that start touching b
func (w *World) OnCollisionEnter(b *Body, fn CollisionHandler) {
	w.onEnter[b] = append(w.onEnter[b], fn)
}

// OnCollisionExit registers fn for contacts with b that stop touching
func (w *World) OnCollisionExit(b *Body, fn CollisionHandler) {
	w.onExit[b] = append(w.onExit[b], fn)
}

// InContact reports whether a and b touched at the end of the last step
func (w *World) InContact(a, b *Body) bool {
	_, ok := w.contacts[makePair(a, b)]
	return ok
}

// Step advances the simulation by dt seconds. Collision handlers run before it returns.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.kind == Fixed || b.sleeping {
			continue
		}
		w.integrate(b, dt)
		w.resolveGround(b, dt)
		b.syncProxy()
	}

	current := w.resolveContacts()
	w.updateSleep()
	w.dispatch(current)
}

func (w *World) integrate(b *Body, dt float64) {
	b.linvel = b.linvel.Add(w.gravity.Mul(dt))
	b.linvel = b.linvel.Mul(1 / (1 + dt*b.linearDamping))
	b.angvel = b.lockAngular(b.angvel.Mul(1 / (1 + dt*b.angularDamping)))

	b.position = b.position.Add(b.linvel.Mul(dt))

	spin := mgl64.Quat{W: 0, V: b.angvel}.Mul(b.rotation)
	b.rotation = b.rotation.Add(spin.Scale(0.5 * dt)).Normalize()
}

func (w *World) resolveGround(b *Body, dt float64) {
	e := b.WorldHalfExtents()
	bottom := b.position[1] - e[1]
	b.grounded = bottom <= w.groundY+w.skin
	if bottom < w.groundY {
		b.position[1] += w.groundY - bottom
		if b.linvel[1] < 0 {
			b.linvel[1] = -b.linvel[1] * b.restitution
			if b.linvel[1] < restingBounce {
				b.linvel[1] = 0
			}
		}
	}
	if !b.grounded || b.friction <= 0 {
		return
	}

	// Tyres grip sideways: remove lateral slip with Coulomb friction.
	right := b.rotation.Rotate(mgl64.Vec3{1, 0, 0})
	right[1] = 0
	if right.Len() < 1e-9 {
		return
	}
	right = right.Normalize()
	slip := b.linvel.Dot(right)
	maxDelta := b.friction * math.Abs(w.gravity[1]) * dt
	delta := slip
	if math.Abs(slip) > maxDelta {
		delta = math.Copysign(maxDelta, slip)
	}
	b.linvel = b.linvel.Sub(right.Mul(delta))
}

// resolveContacts pushes overlapping boxes apart and returns the pairs touching within the skin
func (w *World) resolveContacts() map[pairKey]struct{} {
	current := map[pairKey]struct{}{}
	for _, b := range w.bodies {
		if b.kind == Fixed {
			continue
		}
		check := b.obj.Check(0, 0)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == b {
				continue
			}
			key := makePair(b, other)
			if _, seen := current[key]; seen {
				continue
			}
			if w.collide(b, other) {
				current[key] = struct{}{}
			}
		}
	}
	return current
}

// collide separates a dynamic body from another body and reports whether they touch.
// Bodies only yaw, so the boxes are tested as oriented rectangles on XZ plus a Y interval.
func (w *World) collide(a, b *Body) bool {
	d := a.position.Sub(b.position)
	axes := append(planarAxes(a), planarAxes(b)...)
	axes = append(axes, mgl64.Vec3{0, 1, 0})

	depth := math.Inf(1)
	var normal mgl64.Vec3
	touching := false
	for _, n := range axes {
		dist := d.Dot(n)
		overlap := a.projectedRadius(n) + b.projectedRadius(n) - math.Abs(dist)
		if overlap <= -w.skin {
			return false
		}
		if overlap <= 0 {
			touching = true
			continue
		}
		if overlap < depth {
			depth = overlap
			normal = n
			if dist < 0 {
				normal = n.Mul(-1)
			}
		}
	}
	if touching {
		return true // within the skin
	}

	totalInv := a.invMass + b.invMass
	if totalInv == 0 {
		return true
	}
	a.position = a.position.Add(normal.Mul(depth * a.invMass / totalInv))
	b.position = b.position.Sub(normal.Mul(depth * b.invMass / totalInv))

	approach := a.linvel.Sub(b.linvel).Dot(normal)
	if approach < 0 {
		e := math.Max(a.restitution, b.restitution)
		j := -(1 + e) * approach / totalInv
		a.linvel = a.linvel.Add(normal.Mul(j * a.invMass))
		b.linvel = b.linvel.Sub(normal.Mul(j * b.invMass))
	}

	a.syncProxy()
	if b.kind == Dynamic {
		b.syncProxy()
	}
	return true
}

// planarAxes returns the body's local X and Z axes flattened onto the ground plane
func planarAxes(b *Body) []mgl64.Vec3 {
	axes := make([]mgl64.Vec3, 0, 2)
	for _, local := range []mgl64.Vec3{{1, 0, 0}, {0, 0, 1}} {
		v := b.rotation.Rotate(local)
		v[1] = 0
		if v.Len() < 1e-9 {
			continue
		}
		axes = append(axes, v.Normalize())
	}
	return axes
}

func (w *World) updateSleep() {
	if w.sleepTicks <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.kind == Fixed || b.sleeping {
			continue
		}
		if b.grounded && b.linvel.Len() < w.sleepSpeed && b.angvel.Len() < w.sleepSpeed {
			b.idleTicks++
			if b.idleTicks >= w.sleepTicks {
				b.sleeping = true
				b.linvel = mgl64.Vec3{}
				b.angvel = mgl64.Vec3{}
			}
			continue
		}
		b.idleTicks = 0
	}
}

// dispatch diffs the contact set against the previous step and calls handlers in id order
func (w *World) dispatch(current map[pairKey]struct{}) {
	var entered, exited []pairKey
	for key := range current {
		if _, ok := w.contacts[key]; !ok {
			entered = append(entered, key)
		}
	}
	for key := range w.contacts {
		if _, ok := current[key]; !ok {
			exited = append(exited, key)
		}
	}
	w.contacts = current

	sortPairs(entered)
	sortPairs(exited)
	for _, key := range exited {
		w.fire(w.onExit, key)
	}
	for _, key := range entered {
		w.fire(w.onEnter, key)
	}
}

func (w *World) fire(handlers map[*Body][]CollisionHandler, key pairKey) {
	a, b := w.byID[key.a], w.byID[key.b]
	if a == nil || b == nil {
		return
	}
	for _, fn := range handlers[a] {
		fn(CollisionEvent{Self: a, Other: b})
	}
	for _, fn := range handlers[b] {
		fn(CollisionEvent{Self: b, Other: a})
	}
}

func sortPairs(keys []pairKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
}
