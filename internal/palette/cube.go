package palette

// Cube256 packs channel levels into an xterm 6x6x6 cube index, clamping
// each level to [0, 5]. Results always land in [16, 231].
func Cube256(r, g, b int) uint8 {
	return uint8(16 + 36*clamp6(r) + 6*clamp6(g) + clamp6(b))
}

func clamp6(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
