// Package render turns wave state into terminal frames.
//
// A frame passes through three stages:
//
//   - [Grid.Plot]: trace every strand into per-cell occupancy and hue
//   - [Serializer.Serialize]: encode cells as one escape-coded byte run
//   - [Buffer]: hard-capacity byte sink that truncates, never grows
//
// The buffer is sized for the worst case ([Capacity]), so a whole frame
// normally fits; truncation only covers degenerate glyph overrides. One
// serialized frame is flushed with a single write, which keeps updates
// tear-free without cursor addressing per cell.
package render
