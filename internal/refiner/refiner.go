// Package refiner implements a fixed-point loop that nudges a puzzle's
// difficulty into a target class's score band by strategic clue addition or
// removal, consulting the rater, analyzer, and solver on every iteration.
package refiner

import (
	"context"
	"math/rand"

	"github.com/sudokuforge/engine/internal/analyzer"
	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/difficulty"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/solver"
)

// maxIterations is the termination guarantee: the loop is monotone-seeking
// but not monotone (scores can oscillate around a band boundary), so a hard
// cap is what actually bounds it rather than convergence.
const maxIterations = 50

// Result is the refiner's output: the puzzle it settled on, whether that
// puzzle landed in the target band, how many iterations it took, and the
// final rating. A false Success is not an error, just a rating whose
// IsInTargetRange is false.
type Result struct {
	Puzzle     *board.Board
	Success    bool
	Iterations int
	Rating     *difficulty.Rating
}

// Refiner is stateless beyond the Solver, Rater, and Analyzer it consults,
// all three of which are themselves reentrant.
type Refiner struct {
	solver   *solver.Solver
	rater    *difficulty.Rater
	analyzer *analyzer.Analyzer
}

// New constructs a Refiner.
func New() *Refiner {
	return &Refiner{solver: solver.New(), rater: difficulty.New(), analyzer: analyzer.New()}
}

// RefineToDifficulty runs the refinement loop against puzzle, using
// solution to know which value to add back at any cell it chooses to
// un-blank. When symmetric is true, every accepted add/remove also applies
// its 180-degree rotational twin, and is only accepted when uniqueness holds
// for both cells together.
func (rf *Refiner) RefineToDifficulty(ctx context.Context, puzzle, solution *board.Board, target domain.Difficulty, rng *rand.Rand, symmetric bool) (*Result, error) {
	current := puzzle.Clone()
	var rating *difficulty.Rating
	iterations := 0

	for ; iterations < maxIterations; iterations++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := rf.rater.Rate(ctx, current, target)
		if err != nil {
			return nil, err
		}
		rating = r
		if r.Comparison == domain.InRange {
			return &Result{Puzzle: current, Success: true, Iterations: iterations, Rating: rating}, nil
		}

		var next *board.Board
		switch r.Comparison {
		case domain.TooEasy:
			next, err = rf.increaseDifficulty(ctx, current, solution, rng, symmetric)
		case domain.TooHard:
			next, err = rf.simplifyPuzzle(ctx, current, solution, symmetric)
		}
		if err != nil {
			return nil, err
		}
		if next == nil || next.String() == current.String() {
			// No feasible move this iteration; break rather than spin.
			break
		}
		current = next
	}

	final, err := rf.rater.Rate(ctx, current, target)
	if err != nil {
		return nil, err
	}
	return &Result{
		Puzzle:     current,
		Success:    final.Comparison == domain.InRange,
		Iterations: iterations,
		Rating:     final,
	}, nil
}

// increaseDifficulty is the TooEasy branch of the loop: try, in order, (a)
// a clue from an over-constrained unit (shuffled so equal-looking removals
// vary with the caller's rng), (b) the clues in ascending importance order,
// (c) the single best removal found by exhaustively probing every remaining
// clue.
func (rf *Refiner) increaseDifficulty(ctx context.Context, puzzle, solution *board.Board, rng *rand.Rand, symmetric bool) (*board.Board, error) {
	dist := analyzer.ComputeDistribution(puzzle)

	over := cluesInUnits(puzzle, dist.OverUnits)
	if rng != nil {
		rng.Shuffle(len(over), func(i, j int) { over[i], over[j] = over[j], over[i] })
	}
	for _, cell := range over {
		if next, ok, err := rf.tryRemove(ctx, puzzle, cell, symmetric); err != nil {
			return nil, err
		} else if ok {
			return next, nil
		}
	}

	byImportance, err := rf.analyzer.CluesByImportance(ctx, puzzle)
	if err != nil {
		return nil, err
	}
	for _, cell := range byImportance {
		if next, ok, err := rf.tryRemove(ctx, puzzle, cell, symmetric); err != nil {
			return nil, err
		} else if ok {
			return next, nil
		}
	}

	return rf.bestRemoval(ctx, puzzle, symmetric)
}

// simplifyPuzzle is the TooHard branch: add back the solution value at an
// empty cell in an under-constrained unit, or failing that, the empty cell
// whose addition reduces the composite score the most.
func (rf *Refiner) simplifyPuzzle(ctx context.Context, puzzle, solution *board.Board, symmetric bool) (*board.Board, error) {
	dist := analyzer.ComputeDistribution(puzzle)

	if under := emptyCellsInUnits(puzzle, dist.UnderUnits); len(under) > 0 {
		return rf.applyAdd(puzzle, solution, under[0], symmetric), nil
	}

	candidates, err := rf.analyzer.CandidateClueAdditions(ctx, puzzle, solution)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return rf.applyAdd(puzzle, solution, candidates[0], symmetric), nil
}

// tryRemove blanks cell (and, if symmetric, its rotational twin) and accepts
// the removal only when the resulting puzzle still has a unique solution.
func (rf *Refiner) tryRemove(ctx context.Context, puzzle *board.Board, cell domain.CellCoord, symmetric bool) (*board.Board, bool, error) {
	if puzzle.Get(cell.Row, cell.Col) == 0 {
		return nil, false, nil
	}
	next := puzzle.Clone()
	next.Clear(cell.Row, cell.Col)

	if symmetric {
		twin := rotationalTwin(next, cell)
		if twin != cell && next.Get(twin.Row, twin.Col) != 0 {
			next.Clear(twin.Row, twin.Col)
		}
	}

	unique, err := rf.solver.HasUniqueSolution(ctx, next)
	if err != nil {
		return nil, false, err
	}
	if !unique {
		return nil, false, nil
	}
	return next, true, nil
}

// bestRemoval is step (c) of increaseDifficulty: evaluate removing each
// remaining clue (plus its twin under symmetry), keep only the removals that
// preserve uniqueness, and return the one yielding the highest composite
// score — the hardest puzzle reachable by a single removal.
func (rf *Refiner) bestRemoval(ctx context.Context, puzzle *board.Board, symmetric bool) (*board.Board, error) {
	var best *board.Board
	bestScore := -1.0

	for _, cell := range puzzle.Clues() {
		candidate, ok, err := rf.tryRemove(ctx, puzzle, cell, symmetric)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		res, err := rf.solver.Solve(ctx, candidate)
		if err != nil {
			return nil, err
		}
		score := solver.CompositeScore(res.Metrics)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, nil
}

// applyAdd writes solution's value at cell (and, if symmetric, at cell's
// rotational twin, provided the twin is still empty).
func (rf *Refiner) applyAdd(puzzle, solution *board.Board, cell domain.CellCoord, symmetric bool) *board.Board {
	next := puzzle.Clone()
	next.Set(cell.Row, cell.Col, solution.Get(cell.Row, cell.Col))

	if symmetric {
		twin := rotationalTwin(next, cell)
		if twin != cell && next.Get(twin.Row, twin.Col) == 0 {
			next.Set(twin.Row, twin.Col, solution.Get(twin.Row, twin.Col))
		}
	}
	return next
}

// rotationalTwin is the (size-1-r, size-1-c) pairing the symmetry option
// preserves.
func rotationalTwin(b *board.Board, cell domain.CellCoord) domain.CellCoord {
	size := b.Size()
	return domain.CellCoord{Row: size - 1 - cell.Row, Col: size - 1 - cell.Col}
}

// cluesInUnits returns every clue position that belongs to one of the given
// units, in row-major order.
func cluesInUnits(b *board.Board, units []analyzer.UnitRef) []domain.CellCoord {
	var out []domain.CellCoord
	for _, cell := range b.Clues() {
		if cellInUnits(b, cell, units) {
			out = append(out, cell)
		}
	}
	return out
}

// emptyCellsInUnits returns every empty cell belonging to one of the given
// units, in row-major order.
func emptyCellsInUnits(b *board.Board, units []analyzer.UnitRef) []domain.CellCoord {
	size := b.Size()
	var out []domain.CellCoord
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.Get(r, c) != 0 {
				continue
			}
			cell := domain.CellCoord{Row: r, Col: c}
			if cellInUnits(b, cell, units) {
				out = append(out, cell)
			}
		}
	}
	return out
}

func cellInUnits(b *board.Board, cell domain.CellCoord, units []analyzer.UnitRef) bool {
	box := b.BoxIndex(cell.Row, cell.Col)
	for _, u := range units {
		switch u.Kind {
		case "row":
			if u.Index == cell.Row {
				return true
			}
		case "column":
			if u.Index == cell.Col {
				return true
			}
		case "box":
			if u.Index == box {
				return true
			}
		}
	}
	return false
}
