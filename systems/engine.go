package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// NewEngineSound returns engine state resting at idle pitch
func NewEngineSound() components.EngineSoundData {
	return components.EngineSoundData{
		Spring: harmonica.NewSpring(harmonica.FPS(cfg.C.TPS), cfg.Audio.SpringFreq, cfg.Audio.SpringDamping),
		Pitch:  cfg.Audio.IdlePitch,
		Target: cfg.Audio.IdlePitch,
		Muted:  cfg.Audio.Muted,
	}
}

// UpdateEngineSound springs the engine pitch toward the vehicle's speed
func UpdateEngineSound(w donburi.World) {
	entry, ok := components.EngineSound.First(w)
	if !ok {
		return
	}
	engine := components.EngineSound.Get(entry)
	engine.Muted = SettingsOf(w).Muted
	engine.Target = EnginePitchFor(VehicleSpeed(w))
	engine.Pitch, engine.Velocity = engine.Spring.Update(engine.Pitch, engine.Velocity, engine.Target)
}

// EnginePitchFor maps speed to a pitch between idle and max at the HUD's top speed
func EnginePitchFor(speed float64) float64 {
	frac := 0.0
	if cfg.Vehicle.MaxHUDKmh > 0 {
		frac = speed * cfg.Vehicle.SpeedToKmh / cfg.Vehicle.MaxHUDKmh
	}
	frac = math.Max(0, math.Min(1, frac))
	return cfg.Audio.IdlePitch + (cfg.Audio.MaxPitch-cfg.Audio.IdlePitch)*frac
}
