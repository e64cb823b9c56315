// Package term owns the raw terminal surface: geometry queries, the
// escape sequences the renderer emits, and the signal flags that drive
// resize and shutdown.
//
//   - [Size]: window geometry with an 80x24 fallback
//   - [Signals]: SIGWINCH/SIGINT/SIGTERM folded into two atomic flags
//
// The package is unix-oriented; the resize protocol (SIGWINCH plus
// TIOCGWINSZ) has no portable equivalent.
package term
