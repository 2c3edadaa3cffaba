// Package stroke converts stroked polylines into filled outlines.
//
// A stroke becomes a fill where:
//   - the left offset polyline goes forward
//   - the end cap connects left to right
//   - the right offset polyline is reversed
//   - the start cap connects right back to left
//
// Closed polylines produce two rings of opposite orientation, so the band
// between them is covered under the non-zero fill rule.
//
// # Line Caps
//
//   - LineCapFlat: flat end exactly at the endpoint
//   - LineCapSquare: square extending width/2 beyond the endpoint
//   - LineCapRound: semicircle with radius width/2
//   - LineCapTriangle: triangle with height width/2
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, falls back to bevel past the miter limit
//   - LineJoinBevel: straight line across the corner
//   - LineJoinRound: circular arc
//
// Inputs are already flattened; arcs emitted for round caps and joins are
// flattened with the expander's tolerance.
//
// # Usage
//
//	e := stroke.NewStrokeExpander(stroke.Style{Width: 2, Join: stroke.LineJoinRound})
//	rings := e.Expand([]stroke.Polyline{{Points: pts}})
//
// The algorithm is based on tiny-skia (path/src/stroker.rs) and
// kurbo (src/stroke.rs).
package stroke
