package solver

import (
	"context"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

func mustParse(t *testing.T, s string) *board.Board {
	t.Helper()
	shape, _ := domain.StandardShape(9)
	b, _, err := board.Parse(s, shape)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return b
}

func TestUniquePuzzleSolve(t *testing.T) {
	in := mustParse(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	want := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	s := New()
	res, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.SolutionCount != 1 {
		t.Fatalf("SolutionCount = %d, want 1", res.SolutionCount)
	}
	if got := res.Solution.String(); got != want {
		t.Fatalf("solution mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestCountSolutionsCapsAtLimit(t *testing.T) {
	shape, _ := domain.StandardShape(4)
	b, _ := board.New(shape)
	s := New()
	res, err := s.CountSolutions(context.Background(), b, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.SolutionCount != 2 {
		t.Fatalf("an empty board has many solutions; want count capped at 2, got %d", res.SolutionCount)
	}
}

func TestHasUniqueSolution(t *testing.T) {
	in := mustParse(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	s := New()
	ok, err := s.HasUniqueSolution(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a unique solution")
	}
}

func TestNoSolutionReportsZeroCount(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	b, _ := board.New(shape)
	// Force a contradiction: two 5s in the same row.
	b.Set(0, 0, 5)
	b.Set(0, 1, 5)
	s := New()
	res, err := s.Solve(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	if res.SolutionCount != 0 {
		t.Fatalf("SolutionCount = %d, want 0", res.SolutionCount)
	}
	if res.Solution != nil {
		t.Fatal("expected nil solution")
	}
}

// TestMetricsConsistency: recomputing the composite score from the stored
// metrics must match res.DifficultyScore to within 1e-9.
func TestMetricsConsistency(t *testing.T) {
	in := mustParse(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	s := New()
	res, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	recomputed := CompositeScore(res.Metrics)
	diff := recomputed - res.DifficultyScore
	if diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("recomputed score %v != stored score %v", recomputed, res.DifficultyScore)
	}
}

// TestBlankingSolutionRecoversIt: blanking the solved grid at exactly the
// puzzle's empty positions reconstructs the puzzle, and re-solving that
// recovers the same solution.
func TestBlankingSolutionRecoversIt(t *testing.T) {
	in := mustParse(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	s := New()
	res, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	reblanked := res.Solution.Clone()
	size := in.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if in.Get(r, c) == 0 {
				reblanked.Clear(r, c)
			}
		}
	}
	if reblanked.String() != in.String() {
		t.Fatal("blanking the solution at the puzzle's empty positions did not reconstruct the puzzle")
	}
	again, err := s.Solve(context.Background(), reblanked)
	if err != nil {
		t.Fatal(err)
	}
	if again.Solution.String() != res.Solution.String() {
		t.Fatal("re-solving the reconstructed puzzle produced a different solution")
	}
}

func TestSolveReproducesInputClues(t *testing.T) {
	in := mustParse(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	s := New()
	res, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	for _, cell := range in.Clues() {
		if res.Solution.Get(cell.Row, cell.Col) != in.Get(cell.Row, cell.Col) {
			t.Fatalf("solution changed a given clue at %v", cell)
		}
	}
}
