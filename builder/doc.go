// Package builder assembles deterministic core.Graph fixtures.
//
// It provides:
//
//   - Arc, a minimal comparable edge value (From, To, Cost, Tag) usable with
//     core.Graph when callers have no domain edge type of their own;
//   - Constructors (Complete, Ring, Symmetric, RandomComplete) composed through
//     BuildGraph in call order;
//   - the Stations fixture: seven German stations with known road distances,
//     used to pin solver results in tests and examples.
//
// Determinism: for the same constructors, arguments and seed, BuildGraph yields
// graphs with identical vertex and edge insertion order.
package builder
