package engine

import (
	"bytes"
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wave/internal/config"
	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/render"
)

// countingWriter records the size of every flush it receives.
type countingWriter struct {
	data   bytes.Buffer
	writes []int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, len(p))
	return w.data.Write(p)
}

func (w *countingWriter) reset() {
	w.data.Reset()
	w.writes = nil
}

var _ = Describe("Engine", func() {
	var (
		cfg  *config.Config
		out  *countingWriter
		rows int
		cols int
	)

	size := func() (int, int) { return rows, cols }

	newEngine := func() *Engine {
		e, err := New(cfg, out, size)
		Expect(err).NotTo(HaveOccurred())
		return e
	}

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		out = &countingWriter{}
		rows, cols = 24, 80
	})

	Describe("construction", func() {
		It("sizes the frame buffer for the worst case", func() {
			e := newEngine()
			want, err := render.Capacity(24 * 80)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.buf.Cap()).To(BeNumerically(">=", want))
		})

		It("rejects an unknown palette", func() {
			cfg.Palette = "nope"
			_, err := New(cfg, out, size)
			Expect(err).To(MatchError(palette.ErrUnknown))
		})

		It("refuses geometry whose buffer cannot be sized", func() {
			rows, cols = math.MaxInt, 2
			_, err := New(cfg, out, size)
			Expect(err).To(MatchError(render.ErrTooLarge))
		})
	})

	Describe("frame cadence", func() {
		It("clears the screen then flushes on the first frame", func() {
			e := newEngine()
			Expect(e.Step()).To(Succeed())
			Expect(out.writes).To(HaveLen(2))
			Expect(out.data.Bytes()[:4]).To(Equal([]byte("\x1b[2J")))
		})

		It("performs exactly one flush per steady frame", func() {
			e := newEngine()
			Expect(e.Step()).To(Succeed())
			out.reset()

			for i := 0; i < 5; i++ {
				Expect(e.Step()).To(Succeed())
			}
			Expect(out.writes).To(HaveLen(5))
		})

		It("never flushes more than the buffer capacity", func() {
			e := newEngine()
			for i := 0; i < 10; i++ {
				Expect(e.Step()).To(Succeed())
			}
			for _, n := range out.writes {
				Expect(n).To(BeNumerically("<=", e.buf.Cap()))
			}
		})

		It("advances phases once per frame, scaled by speed", func() {
			cfg.Speed = 2.0
			e := newEngine()
			Expect(e.Step()).To(Succeed())
			Expect(e.phases[0]).To(BeNumerically("~", 2.0*e.waves[0].PhaseSpeed, 1e-12))

			Expect(e.Step()).To(Succeed())
			Expect(e.phases[0]).To(BeNumerically("~", 4.0*e.waves[0].PhaseSpeed, 1e-12))
			Expect(e.frame).To(Equal(2))
		})
	})

	Describe("resize handling", func() {
		It("reshapes to the new geometry", func() {
			e := newEngine()
			Expect(e.Step()).To(Succeed())

			rows, cols = 30, 100
			e.sig.MarkResized()
			Expect(e.Step()).To(Succeed())

			Expect(e.rows).To(Equal(30))
			Expect(e.cols).To(Equal(100))
			want, _ := render.Capacity(30 * 100)
			Expect(e.buf.Cap()).To(BeNumerically(">=", want))
		})

		It("collapses a burst of resizes into one reconcile", func() {
			e := newEngine()
			Expect(e.Step()).To(Succeed())
			out.reset()

			e.sig.MarkResized()
			e.sig.MarkResized()
			e.sig.MarkResized()
			Expect(e.Step()).To(Succeed())

			// One screen clear plus one frame flush.
			Expect(out.writes).To(HaveLen(2))
		})

		It("aborts without restoring the cursor when growth overflows", func() {
			e := newEngine()
			Expect(e.Step()).To(Succeed())

			rows, cols = math.MaxInt, 2
			e.sig.MarkResized()
			err := e.Step()
			Expect(err).To(MatchError(render.ErrTooLarge))
			Expect(out.data.String()).NotTo(ContainSubstring("\x1b[?25h"))
		})
	})

	Describe("shutdown", func() {
		It("honors a latched quit before the first frame", func() {
			e := newEngine()
			e.sig.RequestQuit()
			Expect(e.Run(context.Background())).To(Succeed())
			Expect(out.data.String()).To(HaveSuffix("\x1b[?25h\x1b[0m\n"))
		})

		It("stops when the context is canceled", func() {
			e := newEngine()
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(e.Run(ctx)).To(Succeed())
			Expect(out.data.String()).To(HaveSuffix("\x1b[?25h\x1b[0m\n"))
		})
	})
})
