package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/fonts"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/scenes"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/systems/factory"
	"github.com/spf13/cobra"
)

const appName = "portfolio3d"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene, closing the old one if it holds resources
func (g *Game) ChangeScene(scene interface{}) {
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
	}
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{}
	g.scene = scenes.NewLoadingScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	seed       int64
	mute       bool
	width      int
	height     int
	fullscreen bool
	watch      bool
	debug      bool
}

func main() {
	var f flags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Drive around a 3D village to explore a portfolio",
		Long: `portfolio3d - an interactive 3D portfolio

Drive the car into a building, or click it, to open that part of the portfolio.

Controls:
  W/S or Up/Down     - Throttle and brake
  A/D or Left/Right  - Steer
  R                  - Reset the car
  Esc                - Close the top menu
  M                  - Mute engine
  F11                - Toggle fullscreen`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (yaml, json or toml)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Also write plain logs to this file")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Village decoration seed (default: time based)")
	cmd.Flags().BoolVar(&f.mute, "mute", false, "Start with the engine muted")
	cmd.Flags().IntVar(&f.width, "width", 0, "Window width")
	cmd.Flags().IntVar(&f.height, "height", 0, "Window height")
	cmd.Flags().BoolVar(&f.fullscreen, "fullscreen", false, "Start fullscreen")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Re-apply the config file when it changes")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Show FPS and collider outlines")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Decode the bundled assets and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(infoCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f flags) error {
	if err := config.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := config.Load(f.configPath); err != nil {
		return err
	}

	var logFile io.Writer
	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		logFile = file
	}
	logging.Setup(f.logLevel, os.Stderr, logFile)
	logging.Logger = logging.Logger.With().Str("session", uuid.NewString()).Logger()

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Persistence is optional; without it settings live for one session
	if err := systems.InitPersistence(appName); err == nil {
		logging.Logger.Debug().Msg("persistence ready")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("ignoring saved settings")
	}

	opts := scenes.Options{
		Seed:       config.Village.Seed,
		Saved:      saved,
		ConfigPath: f.configPath,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if f.watch && f.configPath != "" {
		opts.Reload = &atomic.Bool{}
		if err := config.Watch(ctx, f.configPath, func() { opts.Reload.Store(true) }); err != nil {
			logging.Logger.Warn().Err(err).Msg("config watch disabled")
		}
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(config.C.Fullscreen || (saved != nil && saved.Fullscreen))

	logging.Logger.Info().
		Int("width", config.C.Width).
		Int("height", config.C.Height).
		Int64("seed", opts.Seed).
		Msg("starting")
	return ebiten.RunGame(NewGame(opts))
}

func runInfo(out io.Writer) error {
	bundle, err := assets.LoadAll(config.Village.LayoutPath, config.Vehicle.ModelPath)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	fmt.Fprintf(out, "Portfolio:  %s\n", bundle.Portfolio.Name)
	fmt.Fprintf(out, "Projects:   %d\n", len(bundle.Portfolio.Projects))
	fmt.Fprintf(out, "Buildings:  %d\n", len(factory.BuildingSpots(bundle.Layout)))
	fmt.Fprintf(out, "Car:        %d vertices, %d triangles\n", len(bundle.Car.Positions), len(bundle.Car.Indices)/3)
	half := bundle.Car.HalfExtents(config.Vehicle.Scale)
	fmt.Fprintf(out, "Car box:    %.2f x %.2f x %.2f\n", half[0]*2, half[1]*2, half[2]*2)
	return nil
}
