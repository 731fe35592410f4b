package batch

import (
	"reflect"
	"testing"

	"github.com/sudokuforge/engine/internal/domain"
)

func TestDistributeTwoClasses(t *testing.T) {
	got := Distribute([]domain.Difficulty{domain.Easy, domain.Medium}, 5)
	want := []domain.Difficulty{domain.Easy, domain.Easy, domain.Medium, domain.Medium, domain.Easy}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDistributeThreeClasses(t *testing.T) {
	got := Distribute([]domain.Difficulty{domain.Easy, domain.Medium, domain.Hard}, 9)
	want := []domain.Difficulty{
		domain.Easy, domain.Easy, domain.Medium, domain.Medium,
		domain.Hard, domain.Hard, domain.Easy, domain.Easy, domain.Medium,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDistributeSingleClass(t *testing.T) {
	got := Distribute([]domain.Difficulty{domain.Hard}, 4)
	for _, d := range got {
		if d != domain.Hard {
			t.Fatalf("got %v, want all Hard", got)
		}
	}
	if len(got) != 4 {
		t.Fatalf("got %d entries, want 4", len(got))
	}
}

func TestDistributeEmptyInput(t *testing.T) {
	if got := Distribute(nil, 5); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if got := Distribute([]domain.Difficulty{domain.Easy}, 0); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestParseDifficultyListDropsUnrecognizedTokens(t *testing.T) {
	got := ParseDifficultyList("Easy, bogus ,HARD")
	want := []domain.Difficulty{domain.Easy, domain.Hard}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDifficultyListEmptyDefaultsToMedium(t *testing.T) {
	got := ParseDifficultyList("")
	want := []domain.Difficulty{domain.Medium}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
