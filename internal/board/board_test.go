package board

import (
	"testing"

	"github.com/sudokuforge/engine/internal/domain"
)

func TestNewInvalidShape(t *testing.T) {
	_, err := New(domain.Shape{Size: 9, BoxRows: 2, BoxCols: 4})
	if err != domain.ErrInvalidShape {
		t.Fatalf("want ErrInvalidShape, got %v", err)
	}
}

func TestBoxIndex(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	b, err := New(shape)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ r, c, want int }{
		{0, 0, 0}, {2, 2, 0}, {0, 3, 1}, {3, 0, 3}, {8, 8, 8}, {4, 4, 4},
	}
	for _, tc := range cases {
		if got := b.BoxIndex(tc.r, tc.c); got != tc.want {
			t.Errorf("BoxIndex(%d,%d) = %d, want %d", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestBoxCellsRowMajor(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	b, err := New(shape)
	if err != nil {
		t.Fatal(err)
	}
	cells := b.BoxCells(4) // center box
	want := []domain.CellCoord{
		{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5},
		{Row: 4, Col: 3}, {Row: 4, Col: 4}, {Row: 4, Col: 5},
		{Row: 5, Col: 3}, {Row: 5, Col: 4}, {Row: 5, Col: 5},
	}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	s := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	b, issues, err := Parse(s, shape)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !issues.OK() {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if got := b.String(); got != s {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, s)
	}
	b2, _, err := Parse(b.String(), shape)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Get(r, c) != b2.Get(r, c) {
				t.Fatalf("cell (%d,%d) differs after round trip", r, c)
			}
		}
	}
}

func TestParseShortInputZeroPadded(t *testing.T) {
	shape, _ := domain.StandardShape(4)
	b, issues, err := Parse("12", shape)
	if err != nil {
		t.Fatal(err)
	}
	if !issues.OK() {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if b.Get(0, 0) != 1 || b.Get(0, 1) != 2 {
		t.Fatalf("first row wrong: %v %v", b.Get(0, 0), b.Get(0, 1))
	}
	if b.Get(0, 2) != 0 || b.Get(3, 3) != 0 {
		t.Fatalf("padding cells should be empty")
	}
}

func TestParseOutOfRangeDigit(t *testing.T) {
	shape, _ := domain.StandardShape(4)
	s := "9..." + "...." + "...." + "...."
	_, issues, err := Parse(s, shape)
	if err != domain.ErrInvalidInput {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if issues.OK() || len(issues.OutOfRange) != 1 {
		t.Fatalf("want exactly one out-of-range cell, got %+v", issues)
	}
}

func TestValidateDetectsRowDuplicate(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	b, _ := New(shape)
	b.Set(0, 0, 5)
	b.Set(0, 1, 5)
	report := Validate(b)
	if report.OK() {
		t.Fatal("expected a row offense")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	shape, _ := domain.StandardShape(9)
	b, _ := New(shape)
	b.Set(0, 0, 3)
	clone := b.Clone()
	clone.Set(0, 0, 7)
	if b.Get(0, 0) != 3 {
		t.Fatal("mutating clone affected original")
	}
}
