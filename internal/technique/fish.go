package technique

import (
	"fmt"
	"sort"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

// detectXWing reports, for a digit and a pair of lines (two rows or two
// columns), a case where that digit's candidates in both lines fall on
// exactly the same two cross lines, and some line outside the pair still
// carries that digit at one of those two cross positions.
func detectXWing(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	var out []Instance
	for v := 1; v <= size; v++ {
		bit := uint32(1) << uint(v-1)
		out = append(out, fishLines(b, grid, bit, v, size, true, 2, 2)...)
		out = append(out, fishLines(b, grid, bit, v, size, false, 2, 2)...)
	}
	return relabel(out, domain.XWing)
}

// detectSwordfish is the three-line generalization of detectXWing: three
// lines whose digit candidates span exactly three cross lines in union.
func detectSwordfish(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	var out []Instance
	for v := 1; v <= size; v++ {
		bit := uint32(1) << uint(v-1)
		out = append(out, fishLines(b, grid, bit, v, size, true, 2, 3)...)
		out = append(out, fishLines(b, grid, bit, v, size, false, 2, 3)...)
	}
	return relabel(out, domain.Swordfish)
}

// relabel is a small convenience so fishLines can be shared between the
// two-line (X-Wing) and three-line (Swordfish) detectors without threading
// the tag through every call.
func relabel(instances []Instance, tag domain.TechniqueTag) []Instance {
	for i := range instances {
		instances[i].Tag = tag
	}
	return instances
}

// fishLines finds every combination of `arity` lines (rows if byRow, else
// columns) whose candidate positions for `bit` number between minSpan and
// arity and whose union spans exactly `arity` cross lines, reporting it when
// some line outside the combination still carries the digit at one of
// those cross positions.
func fishLines(b *board.Board, grid board.CandidateGrid, bit uint32, digit, size int, byRow bool, minSpan, arity int) []Instance {
	positions := make(map[int][]int)
	for i := 0; i < size; i++ {
		var spots []int
		for j := 0; j < size; j++ {
			r, c := i, j
			if !byRow {
				r, c = j, i
			}
			if b.Get(r, c) != 0 {
				continue
			}
			if grid.At(r, c)&bit != 0 {
				spots = append(spots, j)
			}
		}
		if len(spots) >= minSpan && len(spots) <= arity {
			positions[i] = spots
		}
	}

	lines := make([]int, 0, len(positions))
	for i := range positions {
		lines = append(lines, i)
	}
	sort.Ints(lines)

	var out []Instance
	combos(lines, arity, func(combo []int) {
		union := unionInts(combo, positions)
		if len(union) != arity {
			return
		}
		useful := false
		for i := 0; i < size; i++ {
			if contains(combo, i) {
				continue
			}
			for _, j := range union {
				r, c := i, j
				if !byRow {
					r, c = j, i
				}
				if b.Get(r, c) == 0 && grid.At(r, c)&bit != 0 {
					useful = true
				}
			}
		}
		if !useful {
			return
		}
		anchorRow, anchorCol := combo[0], union[0]
		if !byRow {
			anchorRow, anchorCol = union[0], combo[0]
		}
		kind := "row"
		if !byRow {
			kind = "column"
		}
		out = append(out, Instance{
			Row: anchorRow, Col: anchorCol,
			Description: fmt.Sprintf("fish on %d across %s lines %v, cross positions %v", digit, kind, combo, union),
		})
	})
	return out
}

// unionInts collects the distinct cross-line positions covered by a set of
// lines, sorted ascending.
func unionInts(lines []int, positions map[int][]int) []int {
	set := make(map[int]bool)
	for _, l := range lines {
		for _, p := range positions[l] {
			set[p] = true
		}
	}
	out := make([]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// combos calls fn with every k-combination of xs, in lexical order.
func combos(xs []int, k int, fn func([]int)) {
	n := len(xs)
	if k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		for i, p := range idx {
			combo[i] = xs[p]
		}
		fn(combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
