package wave

// Phases accumulates per-strand phase across frames. Values grow
// without bound; they are never reset or wrapped, not even on resize.
type Phases []float64

func NewPhases(n int) Phases {
	return make(Phases, n)
}

// Advance applies one frame's phase step to every strand, scaled by the
// global speed multiplier.
func (p Phases) Advance(waves []Wave, speed float64) {
	for i := range p {
		p[i] += waves[i].PhaseSpeed * speed
	}
}
