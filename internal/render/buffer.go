package render

import (
	"errors"
	"math"
)

const (
	// maxCellBytes is the worst-case encoding of one cell: color escape,
	// UTF-8 glyph, reset.
	maxCellBytes = 30

	// bufPadding absorbs the cursor-home prefix and row separators.
	bufPadding = 256

	// MaxGlyphBytes is the longest glyph encoding that fits a worst-case
	// cell after the color escape (up to 11 bytes) and the reset (4 bytes).
	MaxGlyphBytes = maxCellBytes - 11 - 4
)

// ErrTooLarge indicates a geometry whose frame buffer size does not fit
// in an int.
var ErrTooLarge = errors.New("render: frame buffer size overflows")

// Capacity returns the buffer size serving a cell count.
func Capacity(cells int) (int, error) {
	if cells < 0 || cells > (math.MaxInt-bufPadding)/maxCellBytes {
		return 0, ErrTooLarge
	}
	return cells*maxCellBytes + bufPadding, nil
}

// Buffer is an append-only byte sink with a hard capacity. Writes that
// do not fit are refused rather than grown, so a frame can truncate but
// never reallocate or scribble past its end mid-serialize.
type Buffer struct {
	buf []byte
}

func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Resize drops contents and guarantees at least capacity bytes. The
// backing array only grows; a shrinking window keeps the larger
// allocation.
func (b *Buffer) Resize(capacity int) {
	if cap(b.buf) < capacity {
		b.buf = make([]byte, 0, capacity)
		return
	}
	b.buf = b.buf[:0]
}

func (b *Buffer) Reset()        { b.buf = b.buf[:0] }
func (b *Buffer) Len() int      { return len(b.buf) }
func (b *Buffer) Cap() int      { return cap(b.buf) }
func (b *Buffer) Room() int     { return cap(b.buf) - len(b.buf) }
func (b *Buffer) Bytes() []byte { return b.buf }

// Append writes p when it fits, reporting whether it was written.
func (b *Buffer) Append(p []byte) bool {
	if len(p) > b.Room() {
		return false
	}
	b.buf = append(b.buf, p...)
	return true
}

// AppendString writes s when it fits.
func (b *Buffer) AppendString(s string) bool {
	if len(s) > b.Room() {
		return false
	}
	b.buf = append(b.buf, s...)
	return true
}

// AppendByte writes c when it fits.
func (b *Buffer) AppendByte(c byte) bool {
	if b.Room() < 1 {
		return false
	}
	b.buf = append(b.buf, c)
	return true
}
