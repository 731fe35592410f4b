// Package usecase wires the engine's ports into the operations an external
// caller (the CLI, a future HTTP adapter) actually invokes: generate a
// batch, rate one puzzle, or solve one board.
package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/difficulty"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/ports"
	"github.com/sudokuforge/engine/internal/solver"
	"github.com/sudokuforge/engine/internal/statistics"
)

var errNotConfigured = errors.New("usecase: dependency not configured")

// Service composes the engine's ports into its programmatic surface.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Rater     ports.Rater
	Refiner   ports.Refiner
	Storage   ports.Storage
	Stats     *statistics.Statistics
}

// New constructs a Service from its dependencies. Storage and Stats may be
// nil; the operations that need them report errNotConfigured / skip
// recording respectively.
func New(s ports.Solver, g ports.Generator, r ports.Rater, rf ports.Refiner, st ports.Storage, stats *statistics.Statistics) *Service {
	return &Service{Solver: s, Generator: g, Rater: r, Refiner: rf, Storage: st, Stats: stats}
}

// BatchConfig is the option set a caller hands to GenerateBatch.
// IncludeSolution and IncludeSolvingSheet are carried through purely so an
// external writer can see them; the engine never consults them.
type BatchConfig struct {
	Shape               domain.Shape
	Difficulties        []domain.Difficulty
	Count               int
	Seed                *int64
	UseRefinement       bool
	Symmetric           bool
	IncludeSolution     bool
	IncludeSolvingSheet bool
	Variant             domain.Variant
}

// GenerateBatch applies the batch distribution policy to cfg.Difficulties
// and cfg.Count, generates one puzzle per resulting difficulty, optionally
// refines each toward its target class, and records a Statistics entry per
// puzzle when Stats is configured.
func (u *Service) GenerateBatch(ctx context.Context, cfg BatchConfig, distribute func([]domain.Difficulty, int) []domain.Difficulty) ([]*generator.GeneratedPuzzle, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	targets := distribute(cfg.Difficulties, cfg.Count)
	baseSeed := resolveSeed(cfg.Seed)
	seeder := rand.New(rand.NewSource(baseSeed))

	out := make([]*generator.GeneratedPuzzle, 0, len(targets))
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		puzzleSeed := seeder.Int63()
		gp, err := u.Generator.Generate(ctx, generator.Config{
			Difficulty:   target,
			Variant:      cfg.Variant,
			Shape:        cfg.Shape,
			Seed:         &puzzleSeed,
			PuzzleNumber: i + 1,
		})
		if err != nil {
			return out, err
		}

		refinementIterations := 0
		if cfg.UseRefinement && u.Refiner != nil {
			rngForRefine := rand.New(rand.NewSource(puzzleSeed))
			res, err := u.Refiner.RefineToDifficulty(ctx, gp.Puzzle, gp.Solution, target, rngForRefine, cfg.Symmetric)
			if err != nil {
				return out, err
			}
			refined := *gp
			refined.Puzzle = res.Puzzle
			refined.Rating = res.Rating
			gp = &refined
			refinementIterations = res.Iterations
		}

		if u.Stats != nil && gp.Rating != nil {
			u.Stats.Append(statistics.Record{
				TargetClass:          target,
				ActualClass:          gp.Rating.Classification,
				IterationCount:       gp.Rating.Metrics.IterationCount,
				CompositeScore:       gp.Rating.CompositeScore,
				ClueCount:            gp.Rating.ClueCount,
				Matched:              gp.Rating.IsInTargetRange,
				RefinementIterations: refinementIterations,
				GuessCount:           gp.Rating.Metrics.GuessCount,
				MaxBacktrackDepth:    gp.Rating.Metrics.MaxBacktrackDepth,
			})
		}

		if u.Storage != nil {
			if _, err := u.Storage.Save(ctx, gp); err != nil {
				return out, err
			}
		}

		out = append(out, gp)
	}
	return out, nil
}

// Rate scores an arbitrary puzzle against target.
func (u *Service) Rate(ctx context.Context, puzzle *board.Board, target domain.Difficulty) (*difficulty.Rating, error) {
	if u.Rater == nil {
		return nil, errNotConfigured
	}
	return u.Rater.Rate(ctx, puzzle, target)
}

// Solve returns the solver's Result for puzzle; an unsolvable puzzle yields
// a Result with SolutionCount 0 and a nil Solution.
func (u *Service) Solve(ctx context.Context, puzzle *board.Board) (*solver.Result, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	return u.Solver.Solve(ctx, puzzle)
}

// List returns metadata for every puzzle the configured Storage holds.
func (u *Service) List(ctx context.Context) ([]ports.Meta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// Load retrieves a previously saved puzzle by ID.
func (u *Service) Load(ctx context.Context, id string) (*generator.GeneratedPuzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func resolveSeed(given *int64) int64 {
	if given != nil {
		return *given
	}
	return time.Now().UnixNano()
}
