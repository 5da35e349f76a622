package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mohinem/portfolio3d/assets"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/render"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VillageScene is the drivable portfolio: the car, the buildings and the overlays
type VillageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	bundle       *assets.Bundle
	opts         Options
	once         sync.Once

	village *systems.Village
	shell   *ui.ShellUI
	audio   *engineAudio
	focused bool
}

func NewVillageScene(sc SceneChanger, bundle *assets.Bundle, opts Options) *VillageScene {
	return &VillageScene{sceneChanger: sc, bundle: bundle, opts: opts, focused: true}
}

func (vs *VillageScene) Update() {
	vs.once.Do(vs.configure)
	w := vs.ecs.World

	vs.reloadConfig()
	vs.trackFocus()

	readKeyboard(w, vs.shell.Typing())
	vs.shell.Update()
	vs.handlePointer()

	vs.ecs.Update()
	vs.audio.Update(w)
	vs.applyFullscreen()
}

func (vs *VillageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Sky)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
	vs.shell.Draw(screen)
}

// Close releases the engine audio player
func (vs *VillageScene) Close() {
	if vs.audio != nil {
		vs.audio.Close()
	}
}

func (vs *VillageScene) configure() {
	w := donburi.NewWorld()
	vs.ecs = ecs.NewECS(w)

	vs.village = systems.SetupVillage(w, vs.bundle, vs.opts.Seed)
	systems.ApplySavedSettings(w, vs.opts.Saved)
	vs.audio = newEngineAudio()

	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateInput(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateVehicleControl(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdatePhysics(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateChaseCamera(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateMenus(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateFloatingLabels(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateEngineSound(e.World) })
	vs.ecs.AddSystem(func(e *ecs.ECS) { systems.SaveDirtySettings(e.World) })

	worldRenderer := render.NewWorldRenderer(vs.bundle.Car)
	vs.ecs.AddRenderer(layerWorld, func(e *ecs.ECS, screen *ebiten.Image) { worldRenderer.Draw(e.World, screen) })
	vs.ecs.AddRenderer(layerWorld, func(e *ecs.ECS, screen *ebiten.Image) { render.DrawLabels(e.World, screen) })
	vs.ecs.AddRenderer(layerHUD, func(e *ecs.ECS, screen *ebiten.Image) { render.DrawHUD(e.World, screen) })
	vs.ecs.AddRenderer(layerHUD, func(e *ecs.ECS, screen *ebiten.Image) { render.DrawDebug(e.World, screen) })

	shell, err := ui.NewShellUI(w, cfg.UI.TouchControls, func() { vs.audio.Blip(w) })
	if err != nil {
		panic("failed to build UI: " + err.Error())
	}
	vs.shell = shell
}

// handlePointer picks buildings under clicks and taps that miss the UI panels
func (vs *VillageScene) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		vs.pick(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		vs.pick(ebiten.TouchPosition(id))
	}
}

func (vs *VillageScene) pick(x, y int) {
	if vs.shell.Contains(x, y) {
		return
	}
	systems.HandleClick(vs.ecs.World, x, y, cfg.C.Width, cfg.C.Height)
}

// trackFocus drops held keys once when the window loses focus
func (vs *VillageScene) trackFocus() {
	focused := ebiten.IsFocused()
	if vs.focused && !focused {
		systems.ReleaseAllInput(vs.ecs.World)
	}
	vs.focused = focused
}

func (vs *VillageScene) applyFullscreen() {
	want := systems.SettingsOf(vs.ecs.World).Fullscreen
	if want != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(want)
	}
}

func (vs *VillageScene) reloadConfig() {
	if vs.opts.Reload == nil || !vs.opts.Reload.Swap(false) {
		return
	}
	if err := cfg.Load(vs.opts.ConfigPath); err != nil {
		logging.Logger.Warn().Err(err).Str("path", vs.opts.ConfigPath).Msg("config reload failed")
		return
	}
	ebiten.SetTPS(cfg.C.TPS)
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	systems.ApplyConfig(vs.ecs.World)
	vs.shell.SetTouch(cfg.UI.TouchControls)
}
