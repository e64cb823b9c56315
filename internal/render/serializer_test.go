package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/wave"
)

func mustPalette(t *testing.T, name string) palette.Func {
	t.Helper()
	fn, err := palette.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return fn
}

func newFrameBuffer(t *testing.T, cells int) *Buffer {
	t.Helper()
	capacity, err := Capacity(cells)
	if err != nil {
		t.Fatal(err)
	}
	return NewBuffer(capacity)
}

func TestSerializer_FrameShape(t *testing.T) {
	g := NewGrid(3, 4)
	waves := []wave.Wave{{Freq: 0.06, Amp: 0, PhaseSpeed: 0.03, Glyph: "█"}}
	g.Plot(waves, wave.NewPhases(1), 0)

	buf := newFrameBuffer(t, 12)
	NewSerializer(mustPalette(t, "rainbow")).Serialize(g, waves, buf)
	out := buf.Bytes()

	if !bytes.HasPrefix(out, []byte("\x1b[H")) {
		t.Error("frame must start with cursor home")
	}
	if n := bytes.Count(out, []byte{'\n'}); n != 2 {
		t.Errorf("newline count = %d, want rows-1 = 2", n)
	}
	if !bytes.Contains(out, []byte("\x1b[38;5;")) {
		t.Error("occupied cells must carry a color escape")
	}
	if !bytes.Contains(out, []byte("█")) {
		t.Error("glyph missing from frame")
	}
	if !bytes.Contains(out, []byte("\x1b[0m")) {
		t.Error("occupied cells must reset attributes")
	}
}

func TestSerializer_EmptyGridExactBytes(t *testing.T) {
	// Twelve empty cells draw the starfield stream twelve times; the
	// first star of the run appears at draw 113, so this frame is pure
	// whitespace.
	g := NewGrid(3, 4)
	g.Plot(nil, nil, 0)

	buf := newFrameBuffer(t, 12)
	NewSerializer(mustPalette(t, "rainbow")).Serialize(g, nil, buf)

	want := "\x1b[H    \n    \n    "
	if got := string(buf.Bytes()); got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestSerializer_StarfieldInFrame(t *testing.T) {
	// A full 24x80 empty frame covers 1920 draws: ten stars, the first
	// at draw 113 with gray 238.
	g := NewGrid(24, 80)
	g.Plot(nil, nil, 0)

	buf := newFrameBuffer(t, 24*80)
	NewSerializer(mustPalette(t, "ocean")).Serialize(g, nil, buf)
	out := buf.Bytes()

	if n := bytes.Count(out, []byte(".\x1b[0m")); n != 10 {
		t.Errorf("star count = %d, want 10", n)
	}
	if !bytes.Contains(out, []byte("\x1b[38;5;238m.\x1b[0m")) {
		t.Error("first star should be gray 238")
	}
}

func TestSerializer_SecondFrameDiffers(t *testing.T) {
	// The stream keeps running across frames instead of reseeding, so
	// consecutive identical layouts twinkle.
	g := NewGrid(24, 80)
	g.Plot(nil, nil, 0)
	s := NewSerializer(mustPalette(t, "ocean"))

	first := newFrameBuffer(t, 24*80)
	s.Serialize(g, nil, first)
	a := string(first.Bytes())

	second := newFrameBuffer(t, 24*80)
	s.Serialize(g, nil, second)
	b := string(second.Bytes())

	if a == b {
		t.Error("consecutive frames reused the same star pattern")
	}
}

func TestSerializer_Reproducible(t *testing.T) {
	waves := wave.Generate(3, "")
	phases := wave.NewPhases(3)
	g := NewGrid(24, 80)
	g.Plot(waves, phases, 0)

	render := func() string {
		buf := newFrameBuffer(t, 24*80)
		NewSerializer(mustPalette(t, "fire")).Serialize(g, waves, buf)
		return string(buf.Bytes())
	}

	if render() != render() {
		t.Error("fresh serializers must produce identical first frames")
	}
}

func TestSerializer_TruncatesAtCapacity(t *testing.T) {
	g := NewGrid(10, 10)
	g.Plot(nil, nil, 0)

	buf := NewBuffer(40)
	NewSerializer(mustPalette(t, "rainbow")).Serialize(g, nil, buf)

	if buf.Len() > buf.Cap() {
		t.Fatalf("serialized %d bytes into capacity %d", buf.Len(), buf.Cap())
	}
	// Home takes three bytes; cells append while a worst-case cell still
	// fits, so exactly eight spaces land before the cutoff.
	if got := string(buf.Bytes()); got != "\x1b[H        " {
		t.Errorf("truncated frame = %q", got)
	}
}

func TestSerializer_OversizedGlyphStaysBounded(t *testing.T) {
	glyph := strings.Repeat("x", 64)
	waves := []wave.Wave{{Freq: 0.06, Amp: 0, PhaseSpeed: 0.03, Glyph: glyph}}
	g := NewGrid(2, 2)
	g.Plot(waves, wave.NewPhases(1), 0)

	buf := NewBuffer(50)
	NewSerializer(mustPalette(t, "rainbow")).Serialize(g, waves, buf)

	if buf.Len() > buf.Cap() {
		t.Fatalf("glyph overflow: %d bytes in capacity %d", buf.Len(), buf.Cap())
	}
}
