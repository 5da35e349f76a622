package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestApplyConfig(t *testing.T) {
	restoreConfig(t)
	noDecor(t)
	vehicleCfg, cameraCfg := cfg.Vehicle, cfg.Camera
	t.Cleanup(func() { cfg.Vehicle, cfg.Camera = vehicleCfg, cameraCfg })

	w := donburi.NewWorld()
	v := SetupVillage(w, nil, 1)

	cfg.Vehicle.ForceMagnitude = 0.9
	cfg.Camera.Offset = mgl64.Vec3{0, 8, 14}
	cfg.Camera.Smoothing = 0.3
	cfg.Collision.ResetPolicy = cfg.ResetNever
	cfg.UI.ExclusiveMenus = false
	ApplyConfig(w)

	assert.Equal(t, 0.9, components.Vehicle.Get(v.Vehicle).ForceMagnitude)
	cam := components.ChaseCamera.Get(v.Camera)
	assert.Equal(t, mgl64.Vec3{0, 8, 14}, cam.Offset)
	assert.Equal(t, 0.3, cam.Smoothing)
	assert.False(t, MenuStateOf(w).Exclusive)

	components.Building.Each(w, func(entry *donburi.Entry) {
		assert.Equal(t, cfg.ResetNever, components.Building.Get(entry).Policy)
	})
}
