// Package ports declares the narrow interfaces usecase.Service depends on:
// callers wire together concrete implementations (internal/solver,
// internal/generator, internal/refiner, internal/infrastructure/storage)
// and the use-case layer only ever sees these shapes.
package ports

import (
	"context"
	"math/rand"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/difficulty"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/refiner"
	"github.com/sudokuforge/engine/internal/solver"
)

// Solver solves a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (*solver.Result, error)
	CountSolutions(ctx context.Context, b *board.Board, limit int) (*solver.Result, error)
	HasUniqueSolution(ctx context.Context, b *board.Board) (bool, error)
}

// Generator produces new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, cfg generator.Config) (*generator.GeneratedPuzzle, error)
}

// Rater scores an arbitrary puzzle against a target class.
type Rater interface {
	Rate(ctx context.Context, puzzle *board.Board, target domain.Difficulty) (*difficulty.Rating, error)
}

// Refiner nudges a puzzle's difficulty into a target band.
type Refiner interface {
	RefineToDifficulty(ctx context.Context, puzzle, solution *board.Board, target domain.Difficulty, rng *rand.Rand, symmetric bool) (*refiner.Result, error)
}

// Meta is a lightweight listing entry returned by Storage.List.
type Meta struct {
	ID          string
	Difficulty  domain.Difficulty
	ClueCount   int
	GeneratedAt time.Time
}

// Storage persists and retrieves generated puzzles as JSON so batch runs
// leave a browsable history.
type Storage interface {
	Save(ctx context.Context, p *generator.GeneratedPuzzle) (string, error)
	Load(ctx context.Context, id string) (*generator.GeneratedPuzzle, error)
	List(ctx context.Context) ([]Meta, error)
}
