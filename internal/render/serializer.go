package render

import (
	"math"
	"strconv"

	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/term"
	"github.com/san-kum/wave/internal/wave"
)

// waveHueStep offsets each strand's hue so overlapping strands stay
// distinguishable under one palette.
const waveHueStep = 0.18

// Serializer renders plotted grids into escape-coded frames. It owns
// the starfield stream, which runs for the serializer's whole lifetime
// rather than restarting per frame.
type Serializer struct {
	colorize palette.Func
	stars    *Starfield
}

func NewSerializer(colorize palette.Func) *Serializer {
	return &Serializer{colorize: colorize, stars: NewStarfield()}
}

// Serialize encodes the grid into buf: cursor home, then every cell in
// row-major order with a newline between rows. Serialization stops as
// soon as the buffer cannot hold another worst-case cell, leaving a
// shorter but well-formed frame. The caller flushes the bytes in a
// single write.
func (s *Serializer) Serialize(g *Grid, waves []wave.Wave, buf *Buffer) {
	buf.Reset()
	buf.Append(term.Home)

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if buf.Room() < maxCellBytes {
				return
			}
			i := y*g.cols + x
			if w := g.cells[i]; w >= 0 {
				writeColor(buf, s.colorize(hueAt(g.hues[i], w)))
				buf.AppendString(waves[w].Glyph)
				buf.Append(term.Reset)
			} else if gray, ok := s.stars.Next(); ok {
				writeColor(buf, gray)
				buf.AppendByte('.')
				buf.Append(term.Reset)
			} else {
				buf.AppendByte(' ')
			}
		}
		if y < g.rows-1 {
			buf.AppendByte('\n')
		}
	}
}

// writeColor emits the SGR foreground sequence for a 256-color index.
func writeColor(buf *Buffer, id uint8) bool {
	need := len(term.Fg256) + 4
	if buf.Room() < need {
		return false
	}
	buf.buf = append(buf.buf, term.Fg256...)
	buf.buf = strconv.AppendUint(buf.buf, uint64(id), 10)
	buf.buf = append(buf.buf, 'm')
	return true
}

// hueAt folds the strand's hue offset into the cell's raw phase and
// wraps to [0, 1).
func hueAt(phase float64, w int) float64 {
	t := math.Mod(phase+float64(w)*waveHueStep, 1.0)
	if t < 0 {
		t += 1.0
	}
	return t
}
