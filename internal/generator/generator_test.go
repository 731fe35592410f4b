package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/solver"
)

func TestGenerateProducesUniqueValidPuzzle(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	seed := int64(42)
	g := New()
	gp, err := g.Generate(context.Background(), Config{
		Difficulty: domain.Easy,
		Shape:      shape,
		Seed:       &seed,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report := board.Validate(gp.Puzzle); !report.OK() {
		t.Fatalf("generated puzzle has unit offenses: %+v", report)
	}
	if gp.Puzzle.ClueCount() < 17 {
		t.Fatalf("clue count %d below the S=9 minimum", gp.Puzzle.ClueCount())
	}

	s := solver.New()
	unique, err := s.HasUniqueSolution(context.Background(), gp.Puzzle)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("generated puzzle does not have a unique solution")
	}
}

func TestGenerateIsReproducibleForAGivenSeed(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	seed := int64(7)
	cfg := Config{Difficulty: domain.Medium, Shape: shape, Seed: &seed}

	g1 := New()
	first, err := g1.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	g2 := New()
	second, err := g2.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if first.Puzzle.String() != second.Puzzle.String() {
		t.Fatalf("same seed produced different puzzles:\n%s\n%s", first.Puzzle.String(), second.Puzzle.String())
	}
	if first.Solution.String() != second.Solution.String() {
		t.Fatal("same seed produced different solutions")
	}
}

func TestTargetClueCountClampsAtSeventeenFor9x9(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	if got := targetClueCount(domain.Evil, shape); got != 17 {
		t.Fatalf("got %d, want 17", got)
	}
}

func TestSeedCompleteSolutionIsFullyFilled(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	g := New()
	rng := rand.New(rand.NewSource(1))
	solution, err := g.seedCompleteSolution(context.Background(), rng, shape)
	if err != nil {
		t.Fatal(err)
	}
	if solution.ClueCount() != shape.Size*shape.Size {
		t.Fatalf("solution has %d filled cells, want %d", solution.ClueCount(), shape.Size*shape.Size)
	}
	if report := board.Validate(solution); !report.OK() {
		t.Fatalf("seeded solution violates unit uniqueness: %+v", report)
	}
}
