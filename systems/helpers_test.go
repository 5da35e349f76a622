package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// fakeBody records the commands the controller sends
type fakeBody struct {
	pos      mgl64.Vec3
	rot      mgl64.Quat
	lin, ang mgl64.Vec3

	impulses []mgl64.Vec3
	torques  []mgl64.Vec3
}

func newFakeBody() *fakeBody {
	return &fakeBody{rot: mgl64.QuatIdent()}
}

func (f *fakeBody) ApplyImpulse(v mgl64.Vec3, _ bool)       { f.impulses = append(f.impulses, v) }
func (f *fakeBody) ApplyTorqueImpulse(v mgl64.Vec3, _ bool) { f.torques = append(f.torques, v) }
func (f *fakeBody) Translation() mgl64.Vec3                 { return f.pos }
func (f *fakeBody) Rotation() mgl64.Quat                    { return f.rot }
func (f *fakeBody) Linvel() mgl64.Vec3                      { return f.lin }
func (f *fakeBody) Angvel() mgl64.Vec3                      { return f.ang }
func (f *fakeBody) SetTranslation(v mgl64.Vec3, _ bool)     { f.pos = v }
func (f *fakeBody) SetRotation(q mgl64.Quat, _ bool)        { f.rot = q }
func (f *fakeBody) SetLinvel(v mgl64.Vec3, _ bool)          { f.lin = v }
func (f *fakeBody) SetAngvel(v mgl64.Vec3, _ bool)          { f.ang = v }

func (f *fakeBody) netImpulse() mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, v := range f.impulses {
		sum = sum.Add(v)
	}
	return sum
}

// spawnFakeVehicle adds a vehicle entity driven by a fake body
func spawnFakeVehicle(w donburi.World, body *fakeBody) *donburi.Entry {
	entry := archetypes.Vehicle.Spawn(w)
	components.Vehicle.SetValue(entry, components.VehicleData{
		Spawn:           mgl64.Vec3{0, 1, 0},
		ForceMagnitude:  0.35,
		TorqueMagnitude: 0.08,
	})
	if body != nil {
		components.Body.SetValue(entry, components.BodyData{Body: body})
	}
	return entry
}

// press holds keys for the next UpdateInput
func press(w donburi.World, keys ...cfg.KeyCode) {
	input := getOrCreateInput(w)
	for _, k := range keys {
		input.SetPressed(k, true)
	}
}

func release(w donburi.World, keys ...cfg.KeyCode) {
	input := getOrCreateInput(w)
	for _, k := range keys {
		input.SetPressed(k, false)
	}
}

// restoreConfig puts mutated config globals back after a test
func restoreConfig(t *testing.T) {
	ui, collision, input, audio := cfg.UI, cfg.Collision, cfg.Input, cfg.Audio
	t.Cleanup(func() {
		cfg.UI, cfg.Collision, cfg.Input, cfg.Audio = ui, collision, input, audio
	})
}

// noDecor keeps SetupVillage from scattering obstacles in a test's path
func noDecor(t *testing.T) {
	village := cfg.Village
	cfg.Village.TreeCount, cfg.Village.AnimalCount = 0, 0
	t.Cleanup(func() { cfg.Village = village })
}

func assertVecNear(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if d := want[i] - got[i]; d > delta || d < -delta {
			t.Fatalf("vector mismatch: want %v, got %v", want, got)
		}
	}
}
