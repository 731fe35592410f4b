package difficulty

import (
	"context"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/solver"
	"github.com/sudokuforge/engine/internal/technique"
)

// Rating is the full output of rating one puzzle: the raw inputs the
// composite score is built from, the score itself, and where it lands
// relative to a requested target class.
type Rating struct {
	ClueCount          int
	EmptyCount         int
	Metrics            solver.Metrics
	TechniqueInstances []technique.Instance
	TechniqueScore     float64
	CompositeScore     float64
	Classification     domain.Difficulty
	MinClass           domain.Difficulty
	MaxClass           domain.Difficulty
	Target             domain.Difficulty
	Comparison         domain.Comparison
	IsInTargetRange    bool
}

// Rater computes a Rating by running the solver and technique detector
// against a puzzle and combining their outputs with an extended composite
// formula that also credits technique score and clue sparsity, distinct
// from the solver's own metrics-only formula.
type Rater struct {
	solver *solver.Solver
}

// New constructs a Rater backed by a fresh Solver.
func New() *Rater {
	return &Rater{solver: solver.New()}
}

// Rate scores puzzle against target. puzzle must be a partially-filled
// board with a unique solution; the caller is expected to have already
// verified uniqueness (the generator does, via solver.HasUniqueSolution).
func (r *Rater) Rate(ctx context.Context, puzzle *board.Board, target domain.Difficulty) (*Rating, error) {
	res, err := r.solver.Solve(ctx, puzzle)
	if err != nil {
		return nil, err
	}
	if res.SolutionCount == 0 {
		return nil, domain.ErrNoSolution
	}

	grid := board.DeriveCandidateGrid(puzzle)
	instances := technique.DetectAll(puzzle, grid)
	techScore := technique.Score(instances)

	size := puzzle.Size()
	clueCount := puzzle.ClueCount()
	clueRatio := float64(clueCount) / float64(size*size)

	composite := compositeScore(res.Metrics, techScore, clueRatio)
	classification := ClassifyByScore(composite)
	minClass, maxClass := ClassificationBand(composite, classification)
	comparison := CompareScore(composite, target)

	return &Rating{
		ClueCount:          clueCount,
		EmptyCount:         puzzle.EmptyCount(),
		Metrics:            res.Metrics,
		TechniqueInstances: instances,
		TechniqueScore:     techScore,
		CompositeScore:     composite,
		Classification:     classification,
		MinClass:           minClass,
		MaxClass:           maxClass,
		Target:             target,
		Comparison:         comparison,
		IsInTargetRange:    comparison == domain.InRange,
	}, nil
}

// compositeScore is the extended rater-level formula:
// 0.40*iterations + 0.20*(2*techniqueScore) + 0.15*(2*maxBacktrackDepth) +
// 0.15*(3*guessCount) + 0.10*(20*(1-clueRatio)).
func compositeScore(m solver.Metrics, techScore, clueRatio float64) float64 {
	return 0.40*float64(m.IterationCount) +
		0.20*(2*techScore) +
		0.15*float64(2*m.MaxBacktrackDepth) +
		0.15*float64(3*m.GuessCount) +
		0.10*(20*(1-clueRatio))
}
