package corona

import (
	"github.com/katalvlaran/heesch/trigrid"
)

// buildFormula encodes one corona round as CNF over the candidate
// placements. Variable i+1 means "placements[i] is selected".
//
//   - Exclusion: for every pair of placements sharing a cell, the clause
//     {-a, -b} forbids selecting both.
//   - Coverage: for every boundary cell, the clause listing the variables of
//     the placements covering it requires at least one to be selected.
//
// Boundary cells covered by no candidate are returned in uncovered instead
// of being emitted as empty clauses; the caller treats a non-empty result
// exactly like an unsatisfiable formula. Clause order is deterministic.
// Complexity: O(Σ|cells| + pairs) with pairwise exclusion clauses.
func buildFormula(placements []Placement, boundary trigrid.CellSet) (clauses [][]int, uncovered []trigrid.Cell) {
	cellVars := make(map[trigrid.Cell][]int)
	for i, pl := range placements {
		v := i + 1
		for _, c := range pl.Cells {
			cellVars[c] = append(cellVars[c], v)
		}
	}

	// Exclusion clauses, iterating cells in sorted order for determinism.
	// A pair sharing several cells is forbidden once.
	shared := make([]trigrid.Cell, 0, len(cellVars))
	for c := range cellVars {
		if len(cellVars[c]) > 1 {
			shared = append(shared, c)
		}
	}
	trigrid.SortCells(shared)
	seenPair := make(map[[2]int]struct{})
	for _, c := range shared {
		vars := cellVars[c]
		for i := 0; i < len(vars); i++ {
			for j := i + 1; j < len(vars); j++ {
				pair := [2]int{vars[i], vars[j]}
				if _, dup := seenPair[pair]; dup {
					continue
				}
				seenPair[pair] = struct{}{}
				clauses = append(clauses, []int{-pair[0], -pair[1]})
			}
		}
	}

	// Coverage clauses over the boundary, sorted for determinism.
	for _, c := range boundary.Cells() {
		vars := cellVars[c]
		if len(vars) == 0 {
			uncovered = append(uncovered, c)
			continue
		}
		clause := make([]int, len(vars))
		copy(clause, vars)
		clauses = append(clauses, clause)
	}

	return clauses, uncovered
}

// selectedPlacements reads the backend model back into placements: variable
// i+1 true selects placements[i]. Variables beyond the model's length were
// unconstrained and count as unselected.
func selectedPlacements(placements []Placement, model []bool) []Placement {
	var out []Placement
	for i, pl := range placements {
		if i < len(model) && model[i] {
			out = append(out, pl)
		}
	}

	return out
}
