// Package generator builds a complete grid, then carves clues out of it
// while the solver confirms uniqueness after every removal.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/difficulty"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/solver"
	"github.com/sudokuforge/engine/internal/symmetry"
)

// GeneratedPuzzle is the immutable result of one generation.
type GeneratedPuzzle struct {
	Puzzle       *board.Board
	Solution     *board.Board
	Difficulty   domain.Difficulty
	Variant      domain.Variant
	Seed         int64
	GeneratedAt  time.Time
	Algorithm    string
	PuzzleNumber int
	Rating       *difficulty.Rating
	Symmetry     symmetry.Info
}

// Config is the input to Generate.
type Config struct {
	Difficulty    domain.Difficulty
	Variant       domain.Variant
	Shape         domain.Shape
	Seed          *int64
	UseRefinement bool
	PuzzleNumber  int
}

const algorithmName = "bitvector-dpll"

const (
	seedSolutionAttempts = 50
	pipelineAttempts     = 100
)

// Generator is stateless beyond the Solver and Rater it consults, both of
// which are themselves reentrant.
type Generator struct {
	solver *solver.Solver
	rater  *difficulty.Rater
}

// New constructs a Generator.
func New() *Generator {
	return &Generator{solver: solver.New(), rater: difficulty.New()}
}

// Generate runs the full pipeline, retrying up to 100 times before
// returning domain.ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, cfg Config) (*GeneratedPuzzle, error) {
	if !cfg.Shape.Valid() {
		return nil, domain.ErrInvalidShape
	}
	seed := resolveSeed(cfg.Seed)
	rng := rand.New(rand.NewSource(seed))

	for attempt := 0; attempt < pipelineAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		gp, ok, err := g.attempt(ctx, rng, cfg, seed)
		if err != nil {
			return nil, err
		}
		if ok {
			return gp, nil
		}
	}
	return nil, domain.ErrGenerationFailed
}

// attempt runs one full pass of the pipeline: seed a solution, carve a
// puzzle, validate, and rate it. ok is false when this attempt failed for
// a recoverable reason (the caller should retry); err is non-nil only for
// a terminal failure.
func (g *Generator) attempt(ctx context.Context, rng *rand.Rand, cfg Config, seed int64) (*GeneratedPuzzle, bool, error) {
	solution, err := g.seedCompleteSolution(ctx, rng, cfg.Shape)
	if err != nil {
		return nil, false, nil
	}

	target := targetClueCount(cfg.Difficulty, cfg.Shape)
	puzzle := g.carve(ctx, rng, solution, target)

	if report := board.Validate(puzzle); !report.OK() {
		return nil, false, nil
	}

	rating, err := g.rater.Rate(ctx, puzzle, cfg.Difficulty)
	if err != nil {
		return nil, false, nil
	}

	return &GeneratedPuzzle{
		Puzzle:       puzzle,
		Solution:     solution,
		Difficulty:   cfg.Difficulty,
		Variant:      cfg.Variant,
		Seed:         seed,
		GeneratedAt:  time.Now(),
		Algorithm:    algorithmName,
		PuzzleNumber: cfg.PuzzleNumber,
		Rating:       rating,
		Symmetry:     symmetry.Analyze(puzzle),
	}, true, nil
}

// resolveSeed returns the caller's seed, or a freshly drawn one when none
// was given. Either way the returned value is what reproducibility depends
// on: the same seed, difficulty, variant, and shape must regenerate the
// same puzzle.
func resolveSeed(given *int64) int64 {
	if given != nil {
		return *given
	}
	return time.Now().UnixNano()
}

// seedCompleteSolution builds a completed grid by filling the diagonal
// boxes with independent random permutations (they share no row, column,
// or box, so this can never conflict) and solving the rest to completion.
// Retries up to seedSolutionAttempts times since pathological randomness
// can rarely leave the solver no completion.
func (g *Generator) seedCompleteSolution(ctx context.Context, rng *rand.Rand, shape domain.Shape) (*board.Board, error) {
	for attempt := 0; attempt < seedSolutionAttempts; attempt++ {
		b, err := board.New(shape)
		if err != nil {
			return nil, err
		}
		seedDiagonalBoxes(b, shape, rng)

		res, err := g.solver.Solve(ctx, b)
		if err != nil {
			return nil, err
		}
		if res.SolutionCount >= 1 {
			return res.Solution, nil
		}
	}
	return nil, domain.ErrGenerationFailed
}

// seedDiagonalBoxes fills every box on the box-grid's diagonal with an
// independent random permutation of 1..size. Diagonal boxes pairwise share
// no row, column, or box, so no ordering between them can create a
// conflict; this is what lets the rest of the grid be solved deterministically.
func seedDiagonalBoxes(b *board.Board, shape domain.Shape, rng *rand.Rand) {
	boxGridRows := shape.Size / shape.BoxRows
	boxGridCols := shape.Size / shape.BoxCols
	diagonalCount := boxGridRows
	if boxGridCols < diagonalCount {
		diagonalCount = boxGridCols
	}

	digits := make([]uint8, shape.Size)
	for i := range digits {
		digits[i] = uint8(i + 1)
	}

	for i := 0; i < diagonalCount; i++ {
		boxIndex := i*boxGridCols + i
		cells := b.BoxCells(boxIndex)
		rng.Shuffle(len(digits), func(x, y int) { digits[x], digits[y] = digits[y], digits[x] })
		for j, cell := range cells {
			b.Set(cell.Row, cell.Col, digits[j])
		}
	}
}

// carve removes clues from a shuffled scan of positions until the target
// clue count is reached, accepting only removals that preserve uniqueness.
func (g *Generator) carve(ctx context.Context, rng *rand.Rand, solution *board.Board, target int) *board.Board {
	puzzle := solution.Clone()
	size := puzzle.Size()

	positions := make([]int, size*size)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	for _, pos := range positions {
		if ctx.Err() != nil {
			break
		}
		if puzzle.ClueCount() <= target {
			break
		}
		row, col := pos/size, pos%size
		v := puzzle.Get(row, col)
		if v == 0 {
			continue
		}
		puzzle.Clear(row, col)
		unique, err := g.solver.HasUniqueSolution(ctx, puzzle)
		if err != nil || !unique {
			puzzle.Set(row, col, v)
		}
	}
	return puzzle
}

// clueRatioByDifficulty is the fraction of cells left as clues per class.
var clueRatioByDifficulty = map[domain.Difficulty]float64{
	domain.Easy:   0.49,
	domain.Medium: 0.39,
	domain.Hard:   0.32,
	domain.Expert: 0.25,
	domain.Evil:   0.21,
}

// targetClueCount floors the difficulty's percentage of S², clamping to
// the classical 17-clue minimum when the shape is the standard 9x9.
func targetClueCount(d domain.Difficulty, shape domain.Shape) int {
	ratio, ok := clueRatioByDifficulty[d]
	if !ok {
		ratio = clueRatioByDifficulty[domain.Medium]
	}
	count := int(ratio * float64(shape.Size*shape.Size))
	if shape.Size == 9 && count < 17 {
		count = 17
	}
	return count
}
