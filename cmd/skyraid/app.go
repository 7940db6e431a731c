package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skyraid/internal/audio"
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/logging"
	"github.com/vovakirdan/skyraid/internal/platform/tui"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// app holds the services shared by the interactive commands.
type app struct {
	cfg    config.ShooterConfig
	logger *log.Logger
	logs   io.Closer
	store  *storage.Store
	audio  audio.Sink
	player string
}

// loadShooterConfig applies --config, --difficulty and the backdrop flags.
func loadShooterConfig() (config.ShooterConfig, error) {
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)

	cfg, err := shooter.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if flagBackdropDir != "" {
		cfg.Backdrop.Dir = flagBackdropDir
	}
	if flagNoBackdrop {
		cfg.Backdrop.Enabled = false
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger opens the log named by --log. Interactive commands default
// to a file so log lines stay off the alt-screen.
func newLogger(defaultPath string) (*log.Logger, io.Closer, error) {
	path := flagLogPath
	if path == "" {
		path = defaultPath
	}
	return logging.New(logging.Options{Path: path, Level: flagLogLevel, Prefix: "skyraid"})
}

// openApp prepares config, logging, storage and audio. Storage and audio
// failures are logged and the game runs without them.
func openApp() (*app, error) {
	cfg, err := loadShooterConfig()
	if err != nil {
		return nil, err
	}

	logger, logs, err := newLogger(logging.DefaultPath())
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, logs: logs, player: currentUser()}

	a.store, err = storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		a.store = nil
	}

	a.audio, err = audio.Open(cfg.Audio)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return a, nil
}

// Close releases everything openApp acquired.
func (a *app) Close() {
	a.audio.Close()
	if a.store != nil {
		a.store.Close()
	}
	a.logs.Close()
}

// runtimeConfig sizes the screen from the terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// play runs one game with its own backdrop pipeline and blocks until
// the player quits or goes back.
func (a *app) play(game registry.Game, cfg core.RuntimeConfig) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runID := logging.NewID()
	logger := a.logger.With("run", runID)

	opts := tui.Options{
		Store:  a.store,
		Audio:  a.audio,
		HoldMs: a.cfg.Controls.HoldMs,
		Player: a.player,
		RunID:  runID,
		Logger: logger,
	}

	pipeline, err := tui.StartBackdrop(ctx, a.cfg.Backdrop, cfg.ScreenW, cfg.ScreenH, logger)
	if err != nil {
		logger.Warn("backdrop disabled", "error", err)
	}
	opts = opts.WithBackdrop(pipeline, a.cfg.Backdrop.ScrollSpeed)

	runErr := tui.Run(game, cfg, opts)

	cancel()
	if pipeline != nil {
		pipeline.Wait()
	}
	return runErr
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
