package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestEnginePitchFor(t *testing.T) {
	top := cfg.Vehicle.MaxHUDKmh / cfg.Vehicle.SpeedToKmh

	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"at rest", 0, cfg.Audio.IdlePitch},
		{"half speed", top / 2, (cfg.Audio.IdlePitch + cfg.Audio.MaxPitch) / 2},
		{"top speed", top, cfg.Audio.MaxPitch},
		{"beyond top speed", top * 3, cfg.Audio.MaxPitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EnginePitchFor(tt.speed), 1e-9)
		})
	}
}

func TestUpdateEngineSound_SpringsToTarget(t *testing.T) {
	w := donburi.NewWorld()
	body := newFakeBody()
	body.lin = mgl64.Vec3{0, 0, -cfg.Vehicle.MaxHUDKmh / cfg.Vehicle.SpeedToKmh}
	spawnFakeVehicle(w, body)
	entry := factory.CreateEngineSound(w, NewEngineSound())
	engine := components.EngineSound.Get(entry)

	UpdateEngineSound(w)
	assert.Equal(t, cfg.Audio.MaxPitch, engine.Target)
	assert.Greater(t, engine.Pitch, cfg.Audio.IdlePitch)
	assert.Less(t, engine.Pitch, cfg.Audio.MaxPitch)

	for i := 0; i < 10*cfg.C.TPS; i++ {
		UpdateEngineSound(w)
	}
	assert.InDelta(t, cfg.Audio.MaxPitch, engine.Pitch, 0.5)

	body.lin = mgl64.Vec3{}
	for i := 0; i < 10*cfg.C.TPS; i++ {
		UpdateEngineSound(w)
	}
	assert.InDelta(t, cfg.Audio.IdlePitch, engine.Pitch, 0.5)
}

func TestUpdateEngineSound_FollowsMute(t *testing.T) {
	w := donburi.NewWorld()
	entry := factory.CreateEngineSound(w, NewEngineSound())

	SetMuted(w, true)
	UpdateEngineSound(w)
	assert.True(t, components.EngineSound.Get(entry).Muted)

	SetMuted(w, false)
	UpdateEngineSound(w)
	assert.False(t, components.EngineSound.Get(entry).Muted)
}

func TestUpdateEngineSound_NoEngine(t *testing.T) {
	assert.NotPanics(t, func() { UpdateEngineSound(donburi.NewWorld()) })
}
