package scenes

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/sound"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/yohamta/donburi"
)

// ebiten allows one audio context per process, shared across scenes
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

func sharedAudioContext() *audio.Context {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// engineAudio plays the procedural engine hum and UI blips
type engineAudio struct {
	osc    *sound.Oscillator
	player *audio.Player
	blip   []byte
}

func newEngineAudio() *engineAudio {
	ctx := sharedAudioContext()
	a := &engineAudio{
		osc:  sound.NewOscillator(cfg.Audio.SampleRate, cfg.Audio.IdlePitch),
		blip: sound.Blip(cfg.Audio.SampleRate, 880, 0.06, 0.3),
	}

	player, err := ctx.NewPlayer(a.osc)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("engine audio unavailable")
		return a
	}
	// Short buffer keeps the pitch responsive to the throttle
	player.SetBufferSize(80 * time.Millisecond)
	player.Play()
	a.player = player
	return a
}

// Update copies the engine spring's pitch and the mute setting into the oscillator
func (a *engineAudio) Update(w donburi.World) {
	entry, ok := components.EngineSound.First(w)
	if !ok {
		a.osc.SetVolume(0)
		return
	}
	engine := components.EngineSound.Get(entry)
	a.osc.SetPitch(engine.Pitch)
	if engine.Muted {
		a.osc.SetVolume(0)
		return
	}
	a.osc.SetVolume(systems.SettingsOf(w).EngineVolume)
}

func (a *engineAudio) Blip(w donburi.World) {
	if systems.SettingsOf(w).Muted {
		return
	}
	sharedAudioContext().NewPlayerFromBytes(a.blip).Play()
}

func (a *engineAudio) Close() {
	if a.player == nil {
		return
	}
	if err := a.player.Close(); err != nil {
		logging.Logger.Warn().Err(err).Msg("close engine audio")
	}
	a.player = nil
}
