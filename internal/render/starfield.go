package render

// Starfield speckles empty cells with sparse dim dots. One xorshift32
// stream advances exactly once per empty cell in serialization order
// and is never reseeded, so a fixed cell sequence yields the same
// speckle every run.
type Starfield struct {
	state uint32
}

const (
	starSeed    = 12345
	starDensity = 600

	// Stars draw from four steps of the grayscale ramp, well below any
	// wave color.
	starGrayBase   = 236
	starGrayShades = 4
)

func NewStarfield() *Starfield {
	return &Starfield{state: starSeed}
}

// Next advances the stream for one empty cell. It reports whether the
// cell gets a star and, if so, its grayscale color index.
func (s *Starfield) Next() (gray uint8, star bool) {
	s.state ^= s.state << 13
	s.state ^= s.state >> 17
	s.state ^= s.state << 5
	if s.state%starDensity != 0 {
		return 0, false
	}
	return uint8(starGrayBase + (s.state>>8)%starGrayShades), true
}
