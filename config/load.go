package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. PORTFOLIO3D_VEHICLE_FORCEMAGNITUDE
const EnvPrefix = "PORTFOLIO3D"

// setDefaults registers the current globals as viper defaults
func setDefaults() {
	viper.SetDefault("window.width", C.Width)
	viper.SetDefault("window.height", C.Height)
	viper.SetDefault("window.tps", C.TPS)
	viper.SetDefault("window.fullscreen", C.Fullscreen)
	viper.SetDefault("window.title", C.Title)

	viper.SetDefault("vehicle.forceMagnitude", Vehicle.ForceMagnitude)
	viper.SetDefault("vehicle.torqueMagnitude", Vehicle.TorqueMagnitude)
	viper.SetDefault("vehicle.mass", Vehicle.Mass)
	viper.SetDefault("vehicle.invInertia", Vehicle.InvInertia)
	viper.SetDefault("vehicle.friction", Vehicle.Friction)
	viper.SetDefault("vehicle.restitution", Vehicle.Restitution)
	viper.SetDefault("vehicle.linearDamping", Vehicle.LinearDamping)
	viper.SetDefault("vehicle.angularDamping", Vehicle.AngularDamping)
	viper.SetDefault("vehicle.lockRotationX", Vehicle.LockRotationX)
	viper.SetDefault("vehicle.lockRotationZ", Vehicle.LockRotationZ)
	viper.SetDefault("vehicle.scale", Vehicle.Scale)
	viper.SetDefault("vehicle.spawn", vecSlice(Vehicle.Spawn))

	viper.SetDefault("camera.offset", vecSlice(Camera.Offset))
	viper.SetDefault("camera.smoothing", Camera.Smoothing)
	viper.SetDefault("camera.fov", Camera.FOV)

	viper.SetDefault("physics.gravity", Physics.Gravity)
	viper.SetDefault("physics.contactSkin", Physics.ContactSkin)

	viper.SetDefault("collision.resetPolicy", Collision.ResetPolicy.String())

	viper.SetDefault("ui.exclusiveMenus", UI.ExclusiveMenus)
	viper.SetDefault("ui.touchControls", UI.TouchControls)
	viper.SetDefault("ui.chatOpen", UI.ChatOpen)

	viper.SetDefault("village.seed", Village.Seed)
	viper.SetDefault("village.treeCount", Village.TreeCount)
	viper.SetDefault("village.animalCount", Village.AnimalCount)
	viper.SetDefault("village.cloudCount", Village.CloudCount)

	viper.SetDefault("audio.engineVolume", Audio.EngineVolume)
	viper.SetDefault("audio.muted", Audio.Muted)

	viper.SetDefault("input.releaseOnBlur", Input.ReleaseOnBlur)

	viper.SetDefault("debug.enabled", Debug.Enabled)
}

// Load overlays the config file at path (if any) and PORTFOLIO3D_* environment
// variables onto the package globals. A missing file is not an error.
func Load(path string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !isNotExist(err) {
				return fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	return apply()
}

// apply copies viper values back into the globals. Nothing is committed
// unless every value validates, so a bad reload keeps the previous settings.
func apply() error {
	c := *C
	c.Width = viper.GetInt("window.width")
	c.Height = viper.GetInt("window.height")
	c.TPS = viper.GetInt("window.tps")
	c.Fullscreen = viper.GetBool("window.fullscreen")
	c.Title = viper.GetString("window.title")
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}

	vehicle := Vehicle
	vehicle.ForceMagnitude = viper.GetFloat64("vehicle.forceMagnitude")
	vehicle.TorqueMagnitude = viper.GetFloat64("vehicle.torqueMagnitude")
	vehicle.Mass = viper.GetFloat64("vehicle.mass")
	vehicle.InvInertia = viper.GetFloat64("vehicle.invInertia")
	vehicle.Friction = viper.GetFloat64("vehicle.friction")
	vehicle.Restitution = viper.GetFloat64("vehicle.restitution")
	vehicle.LinearDamping = viper.GetFloat64("vehicle.linearDamping")
	vehicle.AngularDamping = viper.GetFloat64("vehicle.angularDamping")
	vehicle.LockRotationX = viper.GetBool("vehicle.lockRotationX")
	vehicle.LockRotationZ = viper.GetBool("vehicle.lockRotationZ")
	vehicle.Scale = viper.GetFloat64("vehicle.scale")
	if vehicle.Mass <= 0 {
		return fmt.Errorf("vehicle mass must be positive, got %v", vehicle.Mass)
	}
	spawn, err := vecFrom("vehicle.spawn")
	if err != nil {
		return err
	}
	vehicle.Spawn = spawn

	camera := Camera
	offset, err := vecFrom("camera.offset")
	if err != nil {
		return err
	}
	camera.Offset = offset
	camera.Smoothing = viper.GetFloat64("camera.smoothing")
	camera.FOV = viper.GetFloat64("camera.fov")
	if camera.Smoothing <= 0 || camera.Smoothing > 1 {
		return fmt.Errorf("camera smoothing must be in (0,1], got %v", camera.Smoothing)
	}

	physics := Physics
	physics.Gravity = viper.GetFloat64("physics.gravity")
	physics.ContactSkin = viper.GetFloat64("physics.contactSkin")

	collision := Collision
	collision.ResetPolicy = ParseResetPolicy(viper.GetString("collision.resetPolicy"))

	ui := UI
	ui.ExclusiveMenus = viper.GetBool("ui.exclusiveMenus")
	ui.TouchControls = viper.GetBool("ui.touchControls")
	ui.ChatOpen = viper.GetBool("ui.chatOpen")

	village := Village
	village.Seed = viper.GetInt64("village.seed")
	village.TreeCount = viper.GetInt("village.treeCount")
	village.AnimalCount = viper.GetInt("village.animalCount")
	village.CloudCount = viper.GetInt("village.cloudCount")

	audio := Audio
	audio.EngineVolume = viper.GetFloat64("audio.engineVolume")
	audio.Muted = viper.GetBool("audio.muted")

	input := Input
	input.ReleaseOnBlur = viper.GetBool("input.releaseOnBlur")

	debug := Debug
	debug.Enabled = viper.GetBool("debug.enabled")

	*C = c
	Vehicle, Camera, Physics, Collision = vehicle, camera, physics, collision
	UI, Village, Audio, Input, Debug = ui, village, audio, input, debug
	return nil
}

// flagKeys maps command-line flag names to the config keys they override
var flagKeys = map[string]string{
	"seed":       "village.seed",
	"mute":       "audio.muted",
	"width":      "window.width",
	"height":     "window.height",
	"fullscreen": "window.fullscreen",
	"debug":      "debug.enabled",
}

// BindFlags makes explicitly set flags outrank the config file and the
// environment on every Load, including reloads. Flags fs does not define are
// skipped.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func vecSlice(v mgl64.Vec3) []float64 {
	return []float64{v[0], v[1], v[2]}
}

func vecFrom(key string) (mgl64.Vec3, error) {
	raw := viper.Get(key)
	var out mgl64.Vec3
	switch vals := raw.(type) {
	case []float64:
		if len(vals) != 3 {
			return out, fmt.Errorf("%s: want 3 components, got %d", key, len(vals))
		}
		copy(out[:], vals)
	case []interface{}:
		if len(vals) != 3 {
			return out, fmt.Errorf("%s: want 3 components, got %d", key, len(vals))
		}
		for i, v := range vals {
			f, ok := toFloat(v)
			if !ok {
				return out, fmt.Errorf("%s[%d]: not a number: %v", key, i, v)
			}
			out[i] = f
		}
	default:
		return out, fmt.Errorf("%s: unexpected type %T", key, raw)
	}
	return out, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
