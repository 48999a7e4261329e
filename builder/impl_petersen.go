// SPDX-License-Identifier: MIT
//
// impl_petersen.go — implementation of the Petersen() constructor.
//
// Contract:
//   • Fixed 10-vertex, 15-edge graph: no size parameter.
//   • Outer cycle 0..4 in a pentagon, inner vertices 5..9 in a pentagram
//     (step 2), spokes i -> i+5.
//   • Adds vertices via cfg.idFn in ascending index order (0..9).
//   • Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity:
//   • Time: O(1) (fixed vertex/edge count).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

const (
	methodPetersen = "Petersen"
	petersenNodes  = 10
	petersenOuter  = 5
)

// Petersen returns a Constructor that builds the Petersen graph: the
// Kneser graph K(5,2), a standard exercise instance with treewidth 4.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < petersenNodes; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPetersen, id, err)
			}
		}

		useWeight := g.Weighted()
		weight := func() int64 {
			if useWeight {
				return cfg.weightFn(cfg.rng)
			}
			return 0
		}

		addEdge := func(i, j int) error {
			uID, vID := cfg.idFn(i), cfg.idFn(j)
			if _, err := g.AddEdge(uID, vID, weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPetersen, uID, vID, err)
			}
			return nil
		}

		// Outer pentagon: 0-1-2-3-4-0.
		for i := 0; i < petersenOuter; i++ {
			if err := addEdge(i, (i+1)%petersenOuter); err != nil {
				return err
			}
		}
		// Inner pentagram: 5-7-9-6-8-5 (step 2 around the inner ring).
		for i := 0; i < petersenOuter; i++ {
			if err := addEdge(petersenOuter+i, petersenOuter+(i+2)%petersenOuter); err != nil {
				return err
			}
		}
		// Spokes: i - (i+5).
		for i := 0; i < petersenOuter; i++ {
			if err := addEdge(i, petersenOuter+i); err != nil {
				return err
			}
		}

		return nil
	}
}
