package render

import (
	"math"

	"github.com/san-kum/wave/internal/wave"
)

// Empty marks a cell no strand owns this frame.
const Empty = -1

// frameColorDivisor stretches the per-frame hue drift; smaller values
// cycle colors faster.
const frameColorDivisor = 200.0

// Grid holds per-cell strand occupancy and raw hue phase for one frame,
// row-major.
type Grid struct {
	rows, cols int
	cells      []int
	hues       []float64
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Resize(rows, cols)
	return g
}

// Resize adjusts the geometry, dropping previous contents. The backing
// arrays only grow.
func (g *Grid) Resize(rows, cols int) {
	g.rows, g.cols = rows, cols
	n := rows * cols
	if cap(g.cells) < n {
		g.cells = make([]int, n)
		g.hues = make([]float64, n)
		return
	}
	g.cells = g.cells[:n]
	g.hues = g.hues[:n]
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// At reports the owning strand (or Empty) and the raw hue phase of a cell.
func (g *Grid) At(y, x int) (owner int, hue float64) {
	i := y*g.cols + x
	return g.cells[i], g.hues[i]
}

// Plot resets every cell to Empty, then traces each strand across the
// columns. Later strands overwrite earlier ones at shared cells; there
// is no blending and no depth order beyond strand index.
func (g *Grid) Plot(waves []wave.Wave, phases wave.Phases, frame int) {
	for i := range g.cells {
		g.cells[i] = Empty
	}

	midRow := g.rows / 2
	for w := range waves {
		for x := 0; x < g.cols; x++ {
			offset := waves[w].Amp * float64(midRow) * math.Sin(waves[w].Freq*float64(x)+phases[w])
			y := midRow + int(math.Round(offset))
			if y < 0 || y >= g.rows {
				continue
			}
			i := y*g.cols + x
			g.cells[i] = w
			g.hues[i] = float64(x)/float64(g.cols) + float64(frame)/frameColorDivisor
		}
	}
}
