package refiner

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/sudokuforge/engine/internal/difficulty"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/solver"
)

// TestRefineToDifficultyPreservesUniqueness is the invariant every
// add/remove step must hold: whatever puzzle the refiner settles on still
// has exactly one solution.
func TestRefineToDifficultyPreservesUniqueness(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	seed := int64(11)
	gp, err := generator.New().Generate(context.Background(), generator.Config{
		Difficulty: domain.Medium,
		Shape:      shape,
		Seed:       &seed,
	})
	if err != nil {
		t.Fatal(err)
	}

	rf := New()
	rng := rand.New(rand.NewSource(seed))
	res, err := rf.RefineToDifficulty(context.Background(), gp.Puzzle, gp.Solution, domain.Hard, rng, false)
	if err != nil {
		t.Fatal(err)
	}

	s := solver.New()
	unique, err := s.HasUniqueSolution(context.Background(), res.Puzzle)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("refined puzzle lost its unique solution")
	}
	if res.Iterations > 50 {
		t.Fatalf("iterations %d exceeded the 50-cap termination guarantee", res.Iterations)
	}
}

// TestRefinementMovesScoresTowardTargetCenter generates 100 easy-carved
// puzzles, refines each toward Hard, and requires at least 90 of the final
// ratings to sit strictly closer to the Hard band's center than the initial
// rating did. The loop is monotone-seeking, not monotone, so this is a
// statistical bound rather than a per-run guarantee.
func TestRefinementMovesScoresTowardTargetCenter(t *testing.T) {
	if testing.Short() {
		t.Skip("100-puzzle refinement batch is too slow for -short")
	}
	shape, _ := domain.StandardShape(9)
	bandMin, bandMax := difficulty.ScoreBand(domain.Hard)
	center := (bandMin + bandMax) / 2
	rater := difficulty.New()
	rf := New()
	g := generator.New()

	closer := 0
	for seed := int64(1); seed <= 100; seed++ {
		s := seed
		gp, err := g.Generate(context.Background(), generator.Config{
			Difficulty: domain.Easy,
			Shape:      shape,
			Seed:       &s,
		})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		initial, err := rater.Rate(context.Background(), gp.Puzzle, domain.Hard)
		if err != nil {
			t.Fatalf("seed %d: rate: %v", seed, err)
		}
		rng := rand.New(rand.NewSource(seed))
		res, err := rf.RefineToDifficulty(context.Background(), gp.Puzzle, gp.Solution, domain.Hard, rng, false)
		if err != nil {
			t.Fatalf("seed %d: refine: %v", seed, err)
		}
		if math.Abs(res.Rating.CompositeScore-center) < math.Abs(initial.CompositeScore-center) {
			closer++
		}
	}
	if closer < 90 {
		t.Fatalf("only %d of 100 refinements ended closer to the Hard band center", closer)
	}
}

// TestRefineToDifficultyTerminatesWhenAlreadyInRange exercises the
// zero-iteration success path: a puzzle already rated in the target class
// should stop immediately.
func TestRefineToDifficultyTerminatesWhenAlreadyInRange(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	seed := int64(99)
	gp, err := generator.New().Generate(context.Background(), generator.Config{
		Difficulty: domain.Easy,
		Shape:      shape,
		Seed:       &seed,
	})
	if err != nil {
		t.Fatal(err)
	}

	rf := New()
	rng := rand.New(rand.NewSource(seed))
	res, err := rf.RefineToDifficulty(context.Background(), gp.Puzzle, gp.Solution, gp.Rating.Classification, rng, false)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatalf("expected an already-in-range puzzle to succeed immediately, got rating %+v", res.Rating)
	}
}

// TestRefineToDifficultyWithSymmetryOption exercises the symmetric add/remove
// path end to end: it must run to completion and never hand back a puzzle
// with more than one solution.
func TestRefineToDifficultyWithSymmetryOption(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	seed := int64(5)
	gp, err := generator.New().Generate(context.Background(), generator.Config{
		Difficulty: domain.Medium,
		Shape:      shape,
		Seed:       &seed,
	})
	if err != nil {
		t.Fatal(err)
	}
	rf := New()
	rng := rand.New(rand.NewSource(seed))
	res, err := rf.RefineToDifficulty(context.Background(), gp.Puzzle, gp.Solution, domain.Hard, rng, true)
	if err != nil {
		t.Fatal(err)
	}
	s := solver.New()
	unique, err := s.HasUniqueSolution(context.Background(), res.Puzzle)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("symmetric refinement lost its unique solution")
	}
}
