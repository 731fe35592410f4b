// Package solver implements a bit-vector DPLL solver: unit propagation to a
// fixpoint, then MRV-guided backtracking, with every recursive entry,
// propagation pass, and guess recorded into Metrics.
package solver

import (
	"context"
	"math/bits"

	"github.com/sudokuforge/engine/internal/board"
)

// Metrics is the mutable effort accumulator: reset at the start of every
// Solve/CountSolutions call and snapshotted into the returned Result.
type Metrics struct {
	IterationCount    int
	MaxBacktrackDepth int
	PropagationCycles int
	GuessCount        int
}

// Result is the immutable snapshot produced by a solve.
type Result struct {
	Solution        *board.Board // nil if no solution was found
	SolutionCount   int          // capped at the search limit; a count equal to the limit means "limit or more"
	Metrics         Metrics
	DifficultyScore float64
}

// CompositeScore computes the solver's own composite difficulty score from
// raw metrics. The rater recomputes the same formula independently from a
// Rating's stored fields; the two must agree to within floating-point
// tolerance.
func CompositeScore(m Metrics) float64 {
	return 0.50*float64(m.IterationCount) +
		0.20*float64(2*m.MaxBacktrackDepth) +
		0.20*float64(3*m.GuessCount) +
		0.10*(float64(m.PropagationCycles)/10.0)
}

// Solver is stateless and reentrant: every call clones its input board and
// keeps all mutable state on its own call stack.
type Solver struct{}

// New constructs a Solver. It carries no configuration.
func New() *Solver { return &Solver{} }

// Solve returns the first solution found, or a Result with SolutionCount 0
// if the board admits none. It never returns an error except when ctx is
// canceled mid-search: an inconsistent input is not a failure, it is a
// zero-solution result with accurate metrics.
func (s *Solver) Solve(ctx context.Context, b *board.Board) (*Result, error) {
	res := s.run(ctx, b, 1)
	return res, ctx.Err()
}

// CountSolutions depth-first enumerates solutions up to limit, reporting
// SolutionCount (capped at the limit) and the first solution found.
func (s *Solver) CountSolutions(ctx context.Context, b *board.Board, limit int) (*Result, error) {
	if limit < 1 {
		limit = 1
	}
	res := s.run(ctx, b, limit)
	return res, ctx.Err()
}

// HasUniqueSolution is CountSolutions(b, 2).SolutionCount == 1.
func (s *Solver) HasUniqueSolution(ctx context.Context, b *board.Board) (bool, error) {
	res, err := s.CountSolutions(ctx, b, 2)
	if err != nil {
		return false, err
	}
	return res.SolutionCount == 1, nil
}

// SolveQuick is the metrics-discarding variant of Solve: it returns only
// the solved board, or nil when the puzzle has no solution.
func (s *Solver) SolveQuick(ctx context.Context, b *board.Board) (*board.Board, error) {
	res, err := s.Solve(ctx, b)
	if err != nil {
		return nil, err
	}
	if res.SolutionCount == 0 {
		return nil, nil
	}
	return res.Solution, nil
}

// run drives the DPLL search against a private clone of b and packages the
// outcome into a Result. It never returns an error itself; cancellation is
// surfaced by the caller checking ctx.Err() afterward.
func (s *Solver) run(ctx context.Context, b *board.Board, limit int) *Result {
	// A duplicate digit inside a unit can't be repaired by filling more
	// cells, but the unit masks alone never re-detect it (the bit is simply
	// cleared twice), so inconsistent input is rejected up front as a
	// zero-solution result.
	if !board.Validate(b).OK() {
		return &Result{}
	}
	st := &searchState{
		b:     b.Clone(),
		ctx:   ctx,
		limit: limit,
	}
	st.dfs(0)
	res := &Result{
		Solution:      st.first,
		SolutionCount: st.count,
		Metrics:       st.metrics,
	}
	res.DifficultyScore = CompositeScore(res.Metrics)
	return res
}

// searchState is the working state of one DPLL search: a mutable board
// shared across the whole recursion (assign/undo in place rather than
// cloning per guess) plus the accumulating metrics.
type searchState struct {
	b       *board.Board
	ctx     context.Context
	limit   int
	count   int
	first   *board.Board
	metrics Metrics
}

// assignment is one (row, col) placed during a propagation pass, kept so it
// can be undone if the branch it belongs to fails.
type assignment struct{ row, col int }

// dfs is the single recursive search routine. It returns true when
// the search should stop entirely — either the solution limit was reached
// or ctx was canceled — and false when this branch was exhausted and the
// caller (a guess loop, or the top-level run) should try the next
// alternative.
func (st *searchState) dfs(depth int) bool {
	select {
	case <-st.ctx.Done():
		return true
	default:
	}

	st.metrics.IterationCount++
	if depth > st.metrics.MaxBacktrackDepth {
		st.metrics.MaxBacktrackDepth = depth
	}

	placed, deadEnd := st.propagate()
	if deadEnd {
		st.undo(placed)
		return false
	}

	if st.b.IsComplete() {
		if st.first == nil {
			st.first = st.b.Clone()
		}
		st.count++
		stop := st.count >= st.limit
		if !stop {
			st.undo(placed)
		}
		return stop
	}

	row, col, mask, ok := st.pickMRV()
	if !ok {
		st.undo(placed)
		return false
	}

	st.metrics.GuessCount++
	size := st.b.Size()
	stop := false
	for v := 1; v <= size; v++ {
		bit := uint32(1) << uint(v-1)
		if mask&bit == 0 {
			continue
		}
		st.b.Set(row, col, uint8(v))
		if st.dfs(depth + 1) {
			stop = true
			break
		}
		st.b.Clear(row, col)
	}

	if !stop {
		st.undo(placed)
	}
	return stop
}

// propagate is one propagation cycle: derive
// ConstraintMasks once, then repeatedly place every cell whose candidate
// mask has exactly one bit, incrementally maintaining the local mask copy
// so each pass sees the placements made by the previous one, until a pass
// places nothing. The whole fixpoint loop counts as a single propagation
// cycle, matching the metrics contract the rater relies on.
func (st *searchState) propagate() ([]assignment, bool) {
	st.metrics.PropagationCycles++
	size := st.b.Size()
	masks := board.DeriveMasks(st.b)
	var placed []assignment

	for {
		deadEnd := false
		changed := false
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				if st.b.Get(r, c) != 0 {
					continue
				}
				mask := masks.Row[r] & masks.Col[c] & masks.Box[st.b.BoxIndex(r, c)]
				switch board.CandidateCount(mask) {
				case 0:
					deadEnd = true
				case 1:
					v := uint8(bits.TrailingZeros32(mask) + 1)
					st.b.Set(r, c, v)
					masks.Place(st.b, r, c, v)
					placed = append(placed, assignment{r, c})
					changed = true
				}
			}
		}
		if deadEnd {
			return placed, true
		}
		if !changed {
			return placed, false
		}
	}
}

// undo reverts every assignment made by a propagation call, in reverse
// order, restoring the board to the state dfs found it in on entry.
func (st *searchState) undo(placed []assignment) {
	for i := len(placed) - 1; i >= 0; i-- {
		st.b.Clear(placed[i].row, placed[i].col)
	}
}

// pickMRV selects the empty cell with the fewest candidates, ties broken by
// row-major scan order.
func (st *searchState) pickMRV() (row, col int, mask uint32, ok bool) {
	size := st.b.Size()
	masks := board.DeriveMasks(st.b)
	best := size + 1
	row, col = -1, -1
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if st.b.Get(r, c) != 0 {
				continue
			}
			m := masks.Row[r] & masks.Col[c] & masks.Box[st.b.BoxIndex(r, c)]
			cnt := board.CandidateCount(m)
			if cnt < best {
				best, row, col, mask = cnt, r, c, m
			}
		}
	}
	return row, col, mask, row != -1
}
