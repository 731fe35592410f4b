package analyzer

import (
	"context"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/solver"
)

// Analyzer ranks clues by how much they contribute to a puzzle. It is
// stateless beyond holding a solver to consult; every method takes the
// puzzle it operates on.
type Analyzer struct {
	solver *solver.Solver
}

// New constructs an Analyzer backed by a fresh Solver.
func New() *Analyzer {
	return &Analyzer{solver: solver.New()}
}

// Importance scores a clue at (row, col) in [0,1]: 1.0 if removing it
// destroys uniqueness, otherwise a saturating normalization of how much
// easier the puzzle becomes without it, plus a 0.2 bonus if the cell sits
// in a unit the distribution flags as under-constrained.
func (a *Analyzer) Importance(ctx context.Context, puzzle *board.Board, row, col int, dist Distribution) (float64, error) {
	if puzzle.Get(row, col) == 0 {
		return 0, nil
	}

	withRes, err := a.solver.Solve(ctx, puzzle)
	if err != nil {
		return 0, err
	}

	without := puzzle.Clone()
	without.Clear(row, col)
	uniqueRes, err := a.solver.CountSolutions(ctx, without, 2)
	if err != nil {
		return 0, err
	}
	if uniqueRes.SolutionCount != 1 {
		return 1.0, nil
	}

	withoutRes, err := a.solver.Solve(ctx, without)
	if err != nil {
		return 0, err
	}

	scoreWith := solver.CompositeScore(withRes.Metrics)
	scoreWithout := solver.CompositeScore(withoutRes.Metrics)
	delta := scoreWith - scoreWithout
	if delta < 0 {
		delta = 0
	}
	normalized := 0.8 * delta / (delta + 10)

	bonus := 0.0
	if dist.cellInUnderConstrainedUnit(puzzle, row, col) {
		bonus = 0.2
	}
	score := normalized + bonus
	if score > 1.0 {
		score = 1.0
	}
	return score, nil
}

// CluesByImportance returns every clue position ascending by Importance.
func (a *Analyzer) CluesByImportance(ctx context.Context, puzzle *board.Board) ([]domain.CellCoord, error) {
	dist := ComputeDistribution(puzzle)
	cells := puzzle.Clues()
	keys := make([]float64, len(cells))
	for i, cell := range cells {
		score, err := a.Importance(ctx, puzzle, cell.Row, cell.Col, dist)
		if err != nil {
			return nil, err
		}
		keys[i] = score
	}
	return sortedIndicesByFloat(cells, keys, true), nil
}

// CandidateClueAdditions returns every empty position descending by the
// composite-score reduction that placing the solution's value there would
// cause — the positions most worth adding back when simplifying a puzzle
// that has become too hard.
func (a *Analyzer) CandidateClueAdditions(ctx context.Context, puzzle, solution *board.Board) ([]domain.CellCoord, error) {
	beforeRes, err := a.solver.Solve(ctx, puzzle)
	if err != nil {
		return nil, err
	}
	scoreBefore := solver.CompositeScore(beforeRes.Metrics)

	size := puzzle.Size()
	var cells []domain.CellCoord
	var keys []float64
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if puzzle.Get(r, c) != 0 {
				continue
			}
			trial := puzzle.Clone()
			trial.Set(r, c, solution.Get(r, c))
			res, err := a.solver.Solve(ctx, trial)
			if err != nil {
				return nil, err
			}
			reduction := scoreBefore - solver.CompositeScore(res.Metrics)
			cells = append(cells, domain.CellCoord{Row: r, Col: c})
			keys = append(keys, reduction)
		}
	}
	return sortedIndicesByFloat(cells, keys, false), nil
}

// Pair is one rotational-symmetry twin relationship.
type Pair struct {
	A, B domain.CellCoord
}

// RotationalSymmetryPairs pairs (r,c) with (size-1-r, size-1-c), emitting
// each pair once and skipping the self-paired center cell on odd sizes.
func RotationalSymmetryPairs(b *board.Board) []Pair {
	size := b.Size()
	seen := make(map[domain.CellCoord]bool, size*size)
	var out []Pair
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			a := domain.CellCoord{Row: r, Col: c}
			twin := domain.CellCoord{Row: size - 1 - r, Col: size - 1 - c}
			if a == twin || seen[a] || seen[twin] {
				continue
			}
			seen[a], seen[twin] = true, true
			out = append(out, Pair{A: a, B: twin})
		}
	}
	return out
}
