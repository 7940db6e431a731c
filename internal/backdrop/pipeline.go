package backdrop

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
)

// Options configures a Pipeline.
type Options struct {
	Categories       []string
	QueueCapacity    int
	Width, Height    int // frame size in cells
	Frame            FrameOptions
	RateLimitBackoff time.Duration
	TransientBackoff time.Duration
	MalformedBackoff time.Duration
	Seed             int64
	Logger           *log.Logger
}

// OptionsFromConfig converts backdrop settings for a w x h viewport.
func OptionsFromConfig(cfg config.BackdropConfig, w, h int) (Options, error) {
	fill, err := ParseFill(cfg.Fill)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Categories:       cfg.Categories,
		QueueCapacity:    cfg.QueueCapacity,
		Width:            w,
		Height:           h,
		Frame:            FrameOptions{Dim: cfg.Dim, Fill: fill},
		RateLimitBackoff: time.Duration(cfg.RateLimitMs) * time.Millisecond,
		TransientBackoff: time.Duration(cfg.TransientMs) * time.Millisecond,
		MalformedBackoff: time.Duration(cfg.MalformedMs) * time.Millisecond,
		Seed:             time.Now().UnixNano(),
	}, nil
}

// Pipeline is the background producer of frames.
//
// The frames channel is the whole queue: its capacity bounds memory, a
// full queue parks the worker in a send that also watches ctx, and the
// channel is closed when the worker exits.
type Pipeline struct {
	src    Source
	opts   Options
	logger *log.Logger
	rng    *rand.Rand
	frames chan Frame
	seen   map[string]struct{} // owned by the worker goroutine

	mu     sync.Mutex
	width  int
	height int

	startOnce sync.Once
	done      chan struct{}
}

// NewPipeline creates a pipeline. Call Start to launch the worker.
func NewPipeline(src Source, opts Options) *Pipeline {
	if opts.QueueCapacity < 1 {
		opts.QueueCapacity = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pipeline{
		src:    src,
		opts:   opts,
		logger: logger.WithPrefix("backdrop"),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		frames: make(chan Frame, opts.QueueCapacity),
		seen:   make(map[string]struct{}),
		width:  opts.Width,
		height: opts.Height,
		done:   make(chan struct{}),
	}
}

// Frames returns the receive side of the queue.
func (p *Pipeline) Frames() <-chan Frame {
	return p.frames
}

// Start launches the worker. Cancelling ctx stops it.
// Calling Start more than once has no effect.
func (p *Pipeline) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		go p.run(ctx)
	})
}

// Wait blocks until the worker has exited.
func (p *Pipeline) Wait() {
	<-p.done
}

// Done is closed when the worker exits.
func (p *Pipeline) Done() <-chan struct{} {
	return p.done
}

// Resize sets the frame size used for images processed from now on.
func (p *Pipeline) Resize(w, h int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = w
	p.height = h
}

func (p *Pipeline) size() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

func (p *Pipeline) run(ctx context.Context) {
	defer close(p.done)
	defer close(p.frames)

	if len(p.opts.Categories) == 0 {
		p.logger.Warn("no categories configured, backdrop disabled")
		return
	}
	p.logger.Debug("worker started", "categories", p.opts.Categories, "queue", cap(p.frames))

	for {
		if ctx.Err() != nil {
			p.logger.Debug("worker stopped")
			return
		}

		category := p.opts.Categories[p.rng.Intn(len(p.opts.Categories))]
		refs, err := p.src.List(ctx, category)
		if err != nil {
			if ctx.Err() != nil || !p.backoff(ctx, err) {
				return
			}
			continue
		}
		p.rng.Shuffle(len(refs), func(i, j int) { refs[i], refs[j] = refs[j], refs[i] })

		fresh, ok := p.drain(ctx, refs)
		if !ok {
			return
		}
		if fresh == 0 {
			// Listing exhausted; wait before asking again.
			p.logger.Debug("no new images", "category", category)
			if !p.sleep(ctx, p.opts.TransientBackoff) {
				return
			}
		}
	}
}

// drain walks one shuffled listing. It reports how many frames were
// enqueued and false once ctx is done.
func (p *Pipeline) drain(ctx context.Context, refs []ImageRef) (int, bool) {
	enqueued := 0
	for _, ref := range refs {
		if ctx.Err() != nil {
			return enqueued, false
		}
		if _, dup := p.seen[ref.ID]; dup {
			continue
		}

		frame, err := p.load(ctx, ref)
		if err != nil {
			if ctx.Err() != nil {
				return enqueued, false
			}
			if KindOf(err) == KindMalformed {
				p.seen[ref.ID] = struct{}{}
			}
			if !p.backoff(ctx, err) {
				return enqueued, false
			}
			if KindOf(err) == KindRateLimited {
				return enqueued, true
			}
			continue
		}

		p.seen[ref.ID] = struct{}{}
		select {
		case p.frames <- frame:
			enqueued++
			p.logger.Debug("frame queued", "id", ref.ID, "queued", len(p.frames))
		case <-ctx.Done():
			return enqueued, false
		}
	}
	return enqueued, true
}

func (p *Pipeline) load(ctx context.Context, ref ImageRef) (Frame, error) {
	data, err := p.src.Fetch(ctx, ref)
	if err != nil {
		return Frame{}, err
	}
	img, err := Decode(data)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.URL = ref.URL
		}
		return Frame{}, err
	}
	w, h := p.size()
	return NewFrame(ref.ID, img, w, h, p.opts.Frame), nil
}

func (p *Pipeline) backoffFor(kind ErrorKind) time.Duration {
	switch kind {
	case KindRateLimited:
		return p.opts.RateLimitBackoff
	case KindMalformed:
		return p.opts.MalformedBackoff
	default:
		return p.opts.TransientBackoff
	}
}

// backoff logs err and waits for its kind's delay. It returns false if
// ctx ended first.
func (p *Pipeline) backoff(ctx context.Context, err error) bool {
	kind := KindOf(err)
	d := p.backoffFor(kind)
	p.logger.Warn("fetch failed", "kind", kind, "err", err, "retry_in", d)
	return p.sleep(ctx, d)
}

func (p *Pipeline) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

