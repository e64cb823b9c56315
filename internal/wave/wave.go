package wave

// Wave holds the fixed parameters of one sine strand. Strands generated
// together ramp from slow, tall and wide to fast, short and tight, so a
// larger count reads as depth rather than clutter.
type Wave struct {
	Freq       float64
	Amp        float64
	PhaseSpeed float64
	Glyph      string
}

// DefaultGlyphs cycle across strands when no override is set.
var DefaultGlyphs = []string{"█", "▓", "░", "●", "◆", "╳", "◈", "▪", "⬡", "✦"}

// Generate builds n strands. Parameters interpolate linearly over the
// strand index; a single strand gets the slow end of each ramp. A
// non-empty glyphOverride replaces the default glyph cycle on every
// strand.
func Generate(n int, glyphOverride string) []Wave {
	waves := make([]Wave, n)
	for i := range waves {
		t := float64(i) / float64(max(n-1, 1))
		waves[i] = Wave{
			Freq:       0.06 + 0.10*t,
			Amp:        0.85 - 0.50*t,
			PhaseSpeed: 0.030 + 0.055*t,
			Glyph:      DefaultGlyphs[i%len(DefaultGlyphs)],
		}
		if glyphOverride != "" {
			waves[i].Glyph = glyphOverride
		}
	}
	return waves
}
