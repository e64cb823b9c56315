package engine

import (
	"context"
	"io"
	"time"

	"github.com/san-kum/wave/internal/config"
	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/render"
	"github.com/san-kum/wave/internal/term"
	"github.com/san-kum/wave/internal/wave"
)

// SizeFunc reports the current terminal geometry.
type SizeFunc func() (rows, cols int)

// Engine owns everything one animation run touches: the strand set and
// its phase accumulators, the frame grid, the serialization buffer and
// the signal flags. One engine, one goroutine, one terminal.
type Engine struct {
	cfg  *config.Config
	out  io.Writer
	size SizeFunc
	sig  term.Signals

	waves  []wave.Wave
	phases wave.Phases
	grid   *render.Grid
	buf    *render.Buffer
	ser    *render.Serializer

	rows, cols int
	frame      int
	delay      time.Duration
}

// New builds an engine for a validated configuration. Geometry is read
// once here and reconciled again on the first frame, the same path a
// live resize takes.
func New(cfg *config.Config, out io.Writer, size SizeFunc) (*Engine, error) {
	colorize, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		out:    out,
		size:   size,
		waves:  wave.Generate(cfg.Waves, cfg.Glyph),
		phases: wave.NewPhases(cfg.Waves),
		ser:    render.NewSerializer(colorize),
		delay:  cfg.FrameDelay(),
	}

	rows, cols := size()
	capacity, err := render.Capacity(rows * cols)
	if err != nil {
		return nil, err
	}
	e.rows, e.cols = rows, cols
	e.grid = render.NewGrid(rows, cols)
	e.buf = render.NewBuffer(capacity)
	e.sig.MarkResized()
	return e, nil
}

// Run drives frames until a quit signal arrives or ctx is canceled,
// then restores the terminal. A buffer growth failure instead aborts
// immediately, leaving the screen as the last frame left it.
func (e *Engine) Run(ctx context.Context) error {
	stop := e.sig.Notify()
	defer stop()

	_, _ = e.out.Write(term.HideCursor)
	_, _ = e.out.Write(term.Clear)

	for !e.sig.QuitRequested() && ctx.Err() == nil {
		if err := e.Step(); err != nil {
			return err
		}
		time.Sleep(e.delay)
	}

	_, _ = e.out.Write(term.ShowCursor)
	_, _ = e.out.Write(term.Reset)
	_, _ = e.out.Write([]byte("\n"))
	return nil
}

// Step runs exactly one frame cycle: reconcile geometry, plot,
// serialize, flush, advance. Run wraps it with pacing and signal
// wiring.
func (e *Engine) Step() error {
	if e.sig.ConsumeResize() {
		if err := e.applyResize(); err != nil {
			return err
		}
	}

	e.grid.Plot(e.waves, e.phases, e.frame)
	e.ser.Serialize(e.grid, e.waves, e.buf)
	_, _ = e.out.Write(e.buf.Bytes())

	e.phases.Advance(e.waves, e.cfg.Speed)
	e.frame++
	return nil
}

// applyResize is the only allocation site after startup. The screen is
// cleared so glyphs outside the new bounds do not linger.
func (e *Engine) applyResize() error {
	rows, cols := e.size()
	capacity, err := render.Capacity(rows * cols)
	if err != nil {
		return err
	}
	e.rows, e.cols = rows, cols
	e.grid.Resize(rows, cols)
	e.buf.Resize(capacity)
	_, _ = e.out.Write(term.Clear)
	return nil
}
