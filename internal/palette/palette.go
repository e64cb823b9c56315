package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const twoPi = 6.2831853071795864

// ErrUnknown indicates a palette name absent from the registry.
var ErrUnknown = errors.New("palette: unknown palette")

// Func maps a hue phase t in [0, 1) to an xterm-256 color index.
type Func func(t float64) uint8

// Palette pairs a registry name with its color function.
type Palette struct {
	Name string
	Fn   Func
}

// channel is one color component oscillating over the cube axis.
type channel struct {
	base, span, shift float64
}

func (c channel) level(t float64) int {
	return int(math.Round(c.base + c.span*math.Sin(twoPi*t+c.shift)))
}

func cube(r, g, b channel) Func {
	return func(t float64) uint8 {
		return Cube256(r.level(t), g.level(t), b.level(t))
	}
}

// Registered palettes, in display order.
var palettes = []Palette{
	{"rainbow", cube(channel{2.5, 2.5, 0}, channel{2.5, 2.5, 2.094}, channel{2.5, 2.5, 4.189})},
	{"dracula", cube(channel{2.0, 3.0, 0.5}, channel{1.0, 2.0, 3.5}, channel{3.0, 2.0, 1.2})},
	{"ocean", cube(channel{0.5, 1.5, 4.0}, channel{2.0, 2.5, 1.0}, channel{3.5, 1.5, 0})},
	{"fire", cube(channel{3.5, 1.5, 0}, channel{1.5, 2.0, 0.8}, channel{0.5, 0.5, 1.6})},
	{"pastel", cube(channel{3.5, 1.5, 0}, channel{3.0, 1.5, 2.094}, channel{3.5, 1.5, 4.189})},
	{"neon", cube(channel{2.5, 2.5, 0}, channel{1.0, 4.0, 2.5}, channel{2.0, 3.0, 4.8})},
	{"aurora", cube(channel{1.0, 2.0, 3.8}, channel{3.0, 2.0, 0}, channel{2.0, 2.5, 1.8})},
	{"matrix", cube(channel{}, channel{1.5, 3.5, 0}, channel{})},
}

// Lookup resolves a palette by name, ignoring case.
func Lookup(name string) (Func, error) {
	for _, p := range palettes {
		if strings.EqualFold(p.Name, name) {
			return p.Fn, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Names returns every registered palette name in display order.
func Names() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// All returns the registry in display order.
func All() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}
