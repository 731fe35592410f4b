package difficulty

import (
	"testing"

	"github.com/sudokuforge/engine/internal/domain"
)

func TestIterationBandsTileContiguously(t *testing.T) {
	boundaries := []int{1, 11, 26, 81, 351}
	classes := []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil}
	for i, n := range boundaries {
		if got := ClassifyByIterations(n); got != classes[i] {
			t.Errorf("ClassifyByIterations(%d) = %v, want %v", n, got, classes[i])
		}
		if i > 0 {
			if got := ClassifyByIterations(n - 1); got != classes[i-1] {
				t.Errorf("ClassifyByIterations(%d) = %v, want %v (previous band)", n-1, got, classes[i-1])
			}
		}
	}
}

func TestScoreBandsTileContiguously(t *testing.T) {
	boundaries := []float64{0, 8, 20, 60, 250}
	classes := []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil}
	for i, v := range boundaries {
		if got := ClassifyByScore(v); got != classes[i] {
			t.Errorf("ClassifyByScore(%v) = %v, want %v", v, got, classes[i])
		}
	}
}

func TestCompareScore(t *testing.T) {
	if got := CompareScore(5, domain.Medium); got != domain.TooEasy {
		t.Errorf("got %v, want TooEasy", got)
	}
	if got := CompareScore(15, domain.Medium); got != domain.InRange {
		t.Errorf("got %v, want InRange", got)
	}
	if got := CompareScore(25, domain.Medium); got != domain.TooHard {
		t.Errorf("got %v, want TooHard", got)
	}
}

func TestCloseToTargetEdgesExcluded(t *testing.T) {
	if CloseToTarget(8, domain.Medium) {
		t.Error("score at the very bottom edge should not be considered close")
	}
	if !CloseToTarget(14, domain.Medium) {
		t.Error("score near the middle of the band should be close")
	}
}

func TestNearIterationGoal(t *testing.T) {
	if !NearIterationGoal(42, domain.Hard, 0.1, 3) {
		t.Error("42 should be within 3 of Hard's goal of 40")
	}
	if !NearIterationGoal(44, domain.Hard, 0.1, 0) {
		t.Error("44 should be within 10% of Hard's goal of 40")
	}
	if NearIterationGoal(60, domain.Hard, 0.1, 3) {
		t.Error("60 should be outside both tolerances for Hard")
	}
}

func TestIterationGoalsWithinTheirOwnBand(t *testing.T) {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil} {
		goal := IterationGoal(d)
		if got := ClassifyByIterations(goal); got != d {
			t.Errorf("iteration goal %d for %v classifies as %v", goal, d, got)
		}
	}
}
