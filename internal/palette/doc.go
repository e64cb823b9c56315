// Package palette maps hue phases to xterm-256 color indices.
//
// Every palette is a pure function over the 6x6x6 color cube:
//
//   - [Func]: hue phase t in [0, 1) to a cube index in [16, 231]
//   - [Lookup]: case-insensitive name resolution against the registry
//   - [Cube256]: channel levels to a packed cube index
//
// Each channel of a palette oscillates as round(base + span*sin(2πt + shift)),
// clamped to the cube's six levels. Palettes differ only in those nine
// constants, so adding one is a single registry entry.
package palette
