package tui

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/backdrop"
	"github.com/vovakirdan/skyraid/internal/config"
)

// StartBackdrop launches an image pipeline for a width x height terminal.
// It returns nil when the backdrop is disabled. The worker stops when ctx
// is cancelled; call Wait on the pipeline to join it.
func StartBackdrop(ctx context.Context, cfg config.BackdropConfig, width, height int, logger *log.Logger) (*backdrop.Pipeline, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	opts, err := backdrop.OptionsFromConfig(cfg, width, height)
	if err != nil {
		return nil, err
	}
	opts.Logger = logger

	p := backdrop.NewPipeline(backdrop.NewSource(cfg), opts)
	p.Start(ctx)
	return p, nil
}

// WithBackdrop attaches a running pipeline to the model options.
// A nil pipeline leaves the backdrop off.
func (o Options) WithBackdrop(p *backdrop.Pipeline, scrollSpeed float64) Options {
	if p == nil {
		return o
	}
	o.Frames = p.Frames()
	o.Resizer = p
	o.ScrollSpeed = scrollSpeed
	return o
}
