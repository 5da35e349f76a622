package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobals puts the package globals back after a test mutates them
func restoreGlobals(t *testing.T) {
	c := *C
	vehicle, camera, physics := Vehicle, Camera, Physics
	collision, ui, village, audio, debug, input := Collision, UI, Village, Audio, Debug, Input
	t.Cleanup(func() {
		*C = c
		Vehicle, Camera, Physics = vehicle, camera, physics
		Collision, UI, Village, Audio, Debug, Input = collision, ui, village, audio, debug, input
		viper.Reset()
	})
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	restoreGlobals(t)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, mgl64.Vec3{0, 5, 10}, Camera.Offset)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, Vehicle.Spawn)
	assert.Equal(t, 0.1, Camera.Smoothing)
	assert.Equal(t, ResetOnExit, Collision.ResetPolicy)
	assert.True(t, UI.ExclusiveMenus)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	restoreGlobals(t)

	dir := t.TempDir()
	cfg := `
window:
  width: 800
  height: 600
vehicle:
  forceMagnitude: 0.5
  spawn: [2, 1, -3]
camera:
  offset: [1, 6, 12]
  smoothing: 0.2
collision:
  resetPolicy: never
ui:
  exclusiveMenus: false
`
	path := filepath.Join(dir, "portfolio3d.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	require.NoError(t, Load(path))

	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 600, C.Height)
	assert.Equal(t, 0.5, Vehicle.ForceMagnitude)
	assert.Equal(t, mgl64.Vec3{2, 1, -3}, Vehicle.Spawn)
	assert.Equal(t, mgl64.Vec3{1, 6, 12}, Camera.Offset)
	assert.Equal(t, 0.2, Camera.Smoothing)
	assert.Equal(t, ResetNever, Collision.ResetPolicy)
	assert.False(t, UI.ExclusiveMenus)
	// untouched keys keep their defaults
	assert.Equal(t, 0.08, Vehicle.TorqueMagnitude)
}

func TestLoad_EnvOverride(t *testing.T) {
	restoreGlobals(t)
	t.Setenv("PORTFOLIO3D_VEHICLE_MASS", "3")

	require.NoError(t, Load(""))
	assert.Equal(t, 3.0, Vehicle.Mass)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero mass", "vehicle:\n  mass: 0\n"},
		{"smoothing above one", "camera:\n  smoothing: 1.5\n"},
		{"short offset", "camera:\n  offset: [1, 2]\n"},
		{"zero width", "window:\n  width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			assert.Error(t, Load(path))
		})
	}
}

func TestLoad_FailedValidationKeepsGlobals(t *testing.T) {
	restoreGlobals(t)
	require.NoError(t, Load(""))
	c, vehicle, camera := *C, Vehicle, Camera

	// valid keys ahead of the bad smoothing must not leak through
	body := "window:\n  tps: 30\n  width: 640\nvehicle:\n  forceMagnitude: 9\ncamera:\n  smoothing: 5\n"
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	require.Error(t, Load(path))
	assert.Equal(t, c, *C)
	assert.Equal(t, vehicle, Vehicle)
	assert.Equal(t, camera, Camera)
}

func TestBindFlags_WinOverFileOnReload(t *testing.T) {
	restoreGlobals(t)

	fs := pflag.NewFlagSet("portfolio3d", pflag.ContinueOnError)
	fs.Bool("debug", false, "")
	fs.Int("width", 0, "")
	fs.Int("height", 0, "")
	require.NoError(t, fs.Parse([]string{"--debug", "--width", "900"}))
	require.NoError(t, BindFlags(fs))

	path := filepath.Join(t.TempDir(), "portfolio3d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 640\n  height: 480\ndebug:\n  enabled: false\n"), 0644))
	require.NoError(t, Load(path))
	assert.True(t, Debug.Enabled)
	assert.Equal(t, 900, C.Width)
	assert.Equal(t, 480, C.Height, "unset flags leave the file value")

	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 700\n  height: 500\ndebug:\n  enabled: false\n"), 0644))
	require.NoError(t, Load(path))
	assert.True(t, Debug.Enabled)
	assert.Equal(t, 900, C.Width)
	assert.Equal(t, 500, C.Height)
}

func TestLoad_MalformedFile(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0644))

	assert.Error(t, Load(path))
}

func TestParseResetPolicy(t *testing.T) {
	assert.Equal(t, ResetOnExit, ParseResetPolicy("exit"))
	assert.Equal(t, ResetOnSignal, ParseResetPolicy("signal"))
	assert.Equal(t, ResetNever, ParseResetPolicy("never"))
	assert.Equal(t, ResetOnExit, ParseResetPolicy("bogus"))
}

func TestMenuKind(t *testing.T) {
	for _, k := range MenuKinds {
		parsed, ok := ParseMenuKind(k.Key())
		require.True(t, ok, k.Key())
		assert.Equal(t, k, parsed)
		assert.NotEmpty(t, k.Label())
		assert.NotEmpty(t, ChatKeywords[k])
	}

	_, ok := ParseMenuKind("garage")
	assert.False(t, ok)
	assert.Equal(t, "Play Music", MenuMusic.Label())
	assert.Equal(t, "", MenuCount.Label())
}
