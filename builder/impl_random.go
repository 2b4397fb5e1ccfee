// SPDX-License-Identifier: MIT
// Package: waytour/builder
//
// impl_random.go - seeded random complete digraphs for property tests and benchmarks.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

const methodRandomComplete = "RandomComplete"

// VertexID renders index i as "v<i>", the default id scheme for generated graphs.
func VertexID(i int) string { return "v" + strconv.Itoa(i) }

// RandomComplete builds a complete digraph over n generated ids with integer
// costs drawn uniformly from [lo, hi]. When symmetric is true, i→j and j→i share
// a cost. The same seed always yields the same graph.
func RandomComplete(n int, lo, hi int64, symmetric bool, seed int64) Constructor[string, int64] {
	return func(g *ArcGraph[string, int64]) error {
		if n < minComplete {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomComplete, n, minComplete, ErrTooFewVertices)
		}
		if lo < 0 || hi < lo {
			return fmt.Errorf("%s: [%d,%d]: %w", methodRandomComplete, lo, hi, ErrBadRange)
		}
		rng := rand.New(rand.NewSource(seed))
		costs := make([][]int64, n)
		var i, j int
		for i = range costs {
			costs[i] = make([]int64, n)
		}
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if symmetric && j < i {
					costs[i][j] = costs[j][i]
					continue
				}
				costs[i][j] = lo + rng.Int63n(hi-lo+1)
			}
		}
		ids := make([]string, n)
		for i = range ids {
			ids[i] = VertexID(i)
		}

		return Complete[string, int64](ids, func(i, j int) int64 { return costs[i][j] })(g)
	}
}
