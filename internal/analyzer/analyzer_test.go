package analyzer

import (
	"context"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/solver"
)

func parseBoard(t *testing.T, s string) *board.Board {
	t.Helper()
	shape, _ := domain.StandardShape(9)
	b, _, err := board.Parse(s, shape)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return b
}

func TestComputeDistributionCountsAllClues(t *testing.T) {
	b := parseBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	d := ComputeDistribution(b)
	total := 0
	for _, n := range d.RowCounts {
		total += n
	}
	if total != b.ClueCount() {
		t.Fatalf("row counts sum to %d, want %d", total, b.ClueCount())
	}
}

func TestImportanceIsOneWhenUniquenessDepends(t *testing.T) {
	b := parseBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	dist := ComputeDistribution(b)
	a := New()
	s := solver.New()
	// Every clue whose removal breaks uniqueness must score exactly 1.0, and
	// every score must stay in [0,1].
	for _, cell := range b.Clues() {
		score, err := a.Importance(context.Background(), b, cell.Row, cell.Col, dist)
		if err != nil {
			t.Fatal(err)
		}
		if score < 0 || score > 1 {
			t.Fatalf("importance %v out of [0,1] at %v", score, cell)
		}
		without := b.Clone()
		without.Clear(cell.Row, cell.Col)
		unique, err := s.HasUniqueSolution(context.Background(), without)
		if err != nil {
			t.Fatal(err)
		}
		if !unique && score != 1.0 {
			t.Fatalf("removing %v breaks uniqueness but importance is %v, want 1", cell, score)
		}
	}
}

func TestCluesByImportanceAscending(t *testing.T) {
	b := parseBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	a := New()
	ordered, err := a.CluesByImportance(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ordered) != b.ClueCount() {
		t.Fatalf("got %d positions, want %d", len(ordered), b.ClueCount())
	}
	dist := ComputeDistribution(b)
	prev := -1.0
	for _, cell := range ordered {
		score, err := a.Importance(context.Background(), b, cell.Row, cell.Col, dist)
		if err != nil {
			t.Fatal(err)
		}
		if score < prev {
			t.Fatalf("importance %v at %v follows %v: order is not ascending", score, cell, prev)
		}
		prev = score
	}
}

func TestRotationalSymmetryPairsCoverBoardOnce(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	b, _ := board.New(shape)
	pairs := RotationalSymmetryPairs(b)
	seen := map[domain.CellCoord]bool{}
	for _, p := range pairs {
		if seen[p.A] || seen[p.B] {
			t.Fatalf("cell reported twice: %v / %v", p.A, p.B)
		}
		seen[p.A], seen[p.B] = true, true
	}
	// 81 cells, one center cell unpaired, 40 pairs covering the rest.
	if len(pairs) != 40 {
		t.Fatalf("got %d pairs, want 40", len(pairs))
	}
}
