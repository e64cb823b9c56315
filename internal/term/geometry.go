package term

import (
	"os"

	"golang.org/x/sys/unix"
)

const (
	fallbackRows = 24
	fallbackCols = 80
)

// Size reports the terminal geometry of stdout. Without a controlling
// terminal it reports the classic 80x24 layout instead of failing, so
// redirected output still produces frames.
func Size() (rows, cols int) {
	return SizeFd(int(os.Stdout.Fd()))
}

// SizeFd reports the geometry of an arbitrary descriptor.
func SizeFd(fd int) (rows, cols int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Row == 0 || ws.Col == 0 {
		return fallbackRows, fallbackCols
	}
	return int(ws.Row), int(ws.Col)
}
