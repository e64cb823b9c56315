package term

// Control sequences shared by terminal setup, teardown and the frame
// serializer. Kept as byte slices so the hot path never converts.
var (
	Home       = []byte("\x1b[H")
	Clear      = []byte("\x1b[2J")
	HideCursor = []byte("\x1b[?25l")
	ShowCursor = []byte("\x1b[?25h")
	Reset      = []byte("\x1b[0m")

	// Fg256 selects a 256-color foreground; callers append the decimal
	// index and a trailing 'm'.
	Fg256 = []byte("\x1b[38;5;")
)
