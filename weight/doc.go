// Package weight defines the numeric contract shared by every solver in waytour.
//
// A weight is any signed integer or floating point type. The package supplies the
// three elements the algorithms need on top of Go's built-in ordering:
//
//   - Zero        - the additive identity (cost of an empty path).
//   - Infinity    - a sentinel greater than every finite value (+Inf or the type's max).
//   - Add         - saturating addition: Infinity absorbs everything, integer overflow
//     clamps to Infinity instead of wrapping.
//
// The saturating behavior is load-bearing for label-setting searches: an
// unreachable vertex keeps distance Infinity even after an edge cost is added.
package weight
