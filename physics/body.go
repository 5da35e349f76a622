package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// RigidBody is the handle vehicle and camera code drive. *Body implements it.
type RigidBody interface {
	ApplyImpulse(impulse mgl64.Vec3, wake bool)
	ApplyTorqueImpulse(torque mgl64.Vec3, wake bool)
	Translation() mgl64.Vec3
	Rotation() mgl64.Quat
	Linvel() mgl64.Vec3
	Angvel() mgl64.Vec3
	SetTranslation(pos mgl64.Vec3, wake bool)
	SetRotation(rot mgl64.Quat, wake bool)
	SetLinvel(vel mgl64.Vec3, wake bool)
	SetAngvel(vel mgl64.Vec3, wake bool)
}

// BodyKind selects whether the world moves a body
type BodyKind int

const (
	Dynamic BodyKind = iota
	Fixed
)

// BodyDesc describes a box body to add to a World
type BodyDesc struct {
	Kind        BodyKind
	Tag         string
	Position    mgl64.Vec3
	Rotation    mgl64.Quat
	HalfExtents mgl64.Vec3

	Mass           float64 // Ignored for Fixed bodies
	InvInertia     float64
	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
	LockRotationX  bool
	LockRotationZ  bool

	Data interface{}
}

// Body is a box-shaped rigid body owned by a World
type Body struct {
	id   int
	kind BodyKind
	tag  string

	position    mgl64.Vec3
	rotation    mgl64.Quat
	linvel      mgl64.Vec3
	angvel      mgl64.Vec3
	halfExtents mgl64.Vec3

	invMass        float64
	invInertia     float64
	friction       float64
	restitution    float64
	linearDamping  float64
	angularDamping float64
	lockX, lockZ   bool

	sleeping  bool
	idleTicks int
	grounded  bool

	obj   *resolv.Object
	world *World

	// Data carries the owner, usually the *donburi.Entry of the entity
	Data interface{}
}

var _ RigidBody = (*Body)(nil)

func newBody(id int, d BodyDesc) *Body {
	rot := d.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	b := &Body{
		id:             id,
		kind:           d.Kind,
		tag:            d.Tag,
		position:       d.Position,
		rotation:       rot.Normalize(),
		halfExtents:    d.HalfExtents,
		invInertia:     d.InvInertia,
		friction:       d.Friction,
		restitution:    d.Restitution,
		linearDamping:  d.LinearDamping,
		angularDamping: d.AngularDamping,
		lockX:          d.LockRotationX,
		lockZ:          d.LockRotationZ,
		Data:           d.Data,
	}
	if d.Kind == Dynamic && d.Mass > 0 {
		b.invMass = 1 / d.Mass
	}
	if d.Kind == Fixed {
		b.invInertia = 0
	}
	return b
}

func (b *Body) ID() int                 { return b.id }
func (b *Body) Kind() BodyKind          { return b.kind }
func (b *Body) Tag() string             { return b.tag }
func (b *Body) Sleeping() bool          { return b.sleeping }
func (b *Body) Grounded() bool          { return b.grounded }
func (b *Body) HalfExtents() mgl64.Vec3 { return b.halfExtents }

func (b *Body) Translation() mgl64.Vec3 { return b.position }
func (b *Body) Rotation() mgl64.Quat    { return b.rotation }
func (b *Body) Linvel() mgl64.Vec3      { return b.linvel }
func (b *Body) Angvel() mgl64.Vec3      { return b.angvel }

// ApplyImpulse changes linear momentum. Fixed bodies ignore it.
func (b *Body) ApplyImpulse(impulse mgl64.Vec3, wake bool) {
	if b.kind == Fixed {
		return
	}
	b.maybeWake(wake)
	b.linvel = b.linvel.Add(impulse.Mul(b.invMass))
}

// ApplyTorqueImpulse changes angular momentum around the world axes.
func (b *Body) ApplyTorqueImpulse(torque mgl64.Vec3, wake bool) {
	if b.kind == Fixed {
		return
	}
	b.maybeWake(wake)
	b.angvel = b.lockAngular(b.angvel.Add(torque.Mul(b.invInertia)))
}

func (b *Body) SetTranslation(pos mgl64.Vec3, wake bool) {
	b.maybeWake(wake)
	b.position = pos
	b.syncProxy()
}

func (b *Body) SetRotation(rot mgl64.Quat, wake bool) {
	b.maybeWake(wake)
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	b.rotation = rot.Normalize()
	b.syncProxy()
}

func (b *Body) SetLinvel(vel mgl64.Vec3, wake bool) {
	if b.kind == Fixed {
		return
	}
	b.maybeWake(wake)
	b.linvel = vel
}

func (b *Body) SetAngvel(vel mgl64.Vec3, wake bool) {
	if b.kind == Fixed {
		return
	}
	b.maybeWake(wake)
	b.angvel = b.lockAngular(vel)
}

// Speed is the magnitude of the linear velocity
func (b *Body) Speed() float64 {
	return b.linvel.Len()
}

// Forward is the body's local -Z axis in world space
func (b *Body) Forward() mgl64.Vec3 {
	return b.rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// WorldHalfExtents returns the half size of the body's world-aligned bounding box
func (b *Body) WorldHalfExtents() mgl64.Vec3 {
	he := b.halfExtents
	ax := b.rotation.Rotate(mgl64.Vec3{he[0], 0, 0})
	ay := b.rotation.Rotate(mgl64.Vec3{0, he[1], 0})
	az := b.rotation.Rotate(mgl64.Vec3{0, 0, he[2]})
	return mgl64.Vec3{
		math.Abs(ax[0]) + math.Abs(ay[0]) + math.Abs(az[0]),
		math.Abs(ax[1]) + math.Abs(ay[1]) + math.Abs(az[1]),
		math.Abs(ax[2]) + math.Abs(ay[2]) + math.Abs(az[2]),
	}
}

// projectedRadius is the half length of the box's shadow on a unit axis
func (b *Body) projectedRadius(n mgl64.Vec3) float64 {
	he := b.halfExtents
	return math.Abs(b.rotation.Rotate(mgl64.Vec3{he[0], 0, 0}).Dot(n)) +
		math.Abs(b.rotation.Rotate(mgl64.Vec3{0, he[1], 0}).Dot(n)) +
		math.Abs(b.rotation.Rotate(mgl64.Vec3{0, 0, he[2]}).Dot(n))
}

// Bounds returns the world-aligned box corners
func (b *Body) Bounds() (lo, hi mgl64.Vec3) {
	e := b.WorldHalfExtents()
	return b.position.Sub(e), b.position.Add(e)
}

func (b *Body) maybeWake(wake bool) {
	if wake {
		b.sleeping = false
		b.idleTicks = 0
	}
}

func (b *Body) lockAngular(v mgl64.Vec3) mgl64.Vec3 {
	if b.lockX {
		v[0] = 0
	}
	if b.lockZ {
		v[2] = 0
	}
	return v
}

// syncProxy moves the broadphase object to the body's XZ footprint, padded by the contact skin
func (b *Body) syncProxy() {
	if b.obj == nil || b.world == nil {
		return
	}
	e := b.WorldHalfExtents()
	skin := b.world.skin
	b.obj.X = b.position[0] - e[0] - skin + b.world.offset
	b.obj.Y = b.position[2] - e[2] - skin + b.world.offset
	b.obj.W = 2 * (e[0] + skin)
	b.obj.H = 2 * (e[2] + skin)
	b.obj.Update()
}
