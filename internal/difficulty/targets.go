// Package difficulty holds the class target tables and the rater that
// scores a solved puzzle against them.
package difficulty

import "github.com/sudokuforge/engine/internal/domain"

// intRange is a left-closed, right-open range of solver iteration counts.
// A Max of 0 means unbounded (used only by Evil's upper end).
type intRange struct {
	Min, Max int // Max == 0 means unbounded
}

func (r intRange) contains(n int) bool {
	if n < r.Min {
		return false
	}
	return r.Max == 0 || n < r.Max
}

// floatRange is the score-band analogue of intRange.
type floatRange struct {
	Min, Max float64 // Max == 0 means unbounded
}

func (r floatRange) contains(v float64) bool {
	if v < r.Min {
		return false
	}
	return r.Max == 0 || v < r.Max
}

// iterationTargets and scoreTargets are contiguous bands: each class's
// upper endpoint equals the next class's lower endpoint, so the iteration
// bands tile [1, ∞) and the score bands tile [0, ∞). Indexed by
// domain.Difficulty.
var iterationTargets = map[domain.Difficulty]intRange{
	domain.Easy:   {Min: 1, Max: 11},
	domain.Medium: {Min: 11, Max: 26},
	domain.Hard:   {Min: 26, Max: 81},
	domain.Expert: {Min: 81, Max: 351},
	domain.Evil:   {Min: 351, Max: 0},
}

var scoreTargets = map[domain.Difficulty]floatRange{
	domain.Easy:   {Min: 0, Max: 8},
	domain.Medium: {Min: 8, Max: 20},
	domain.Hard:   {Min: 20, Max: 60},
	domain.Expert: {Min: 60, Max: 250},
	domain.Evil:   {Min: 250, Max: 0},
}

// iterationGoals is the single representative iteration count for each
// class; NearIterationGoal measures an iteration count's distance from it.
var iterationGoals = map[domain.Difficulty]int{
	domain.Easy:   5,
	domain.Medium: 15,
	domain.Hard:   40,
	domain.Expert: 150,
	domain.Evil:   400,
}

// IterationGoal returns the representative iteration count for a class.
func IterationGoal(d domain.Difficulty) int { return iterationGoals[d] }

// ClassifyByIterations buckets a raw solver iteration count into the
// difficulty class whose band contains it. Evil's band has no upper bound;
// a count below 1 matches no band and also returns Evil.
func ClassifyByIterations(iterations int) domain.Difficulty {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil} {
		if iterationTargets[d].contains(iterations) {
			return d
		}
	}
	return domain.Evil
}

// ClassifyByScore is the score-band analogue of ClassifyByIterations.
func ClassifyByScore(score float64) domain.Difficulty {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil} {
		if scoreTargets[d].contains(score) {
			return d
		}
	}
	return domain.Evil
}

// ScoreBand returns the (min, max) score band for a difficulty class. max
// is 0 for Evil, meaning unbounded.
func ScoreBand(d domain.Difficulty) (min, max float64) {
	band := scoreTargets[d]
	return band.Min, band.Max
}

// CompareScore reports whether score falls below, inside, or above the
// target class's score band.
func CompareScore(score float64, target domain.Difficulty) domain.Comparison {
	band := scoreTargets[target]
	switch {
	case score < band.Min:
		return domain.TooEasy
	case band.Max != 0 && score >= band.Max:
		return domain.TooHard
	default:
		return domain.InRange
	}
}

// NearIterationGoal reports whether an iteration count is within tolerance
// of the class's representative goal: inside absTol iterations of it, or
// inside relTol of the goal's own magnitude, whichever is looser.
func NearIterationGoal(iterations int, d domain.Difficulty, relTol float64, absTol int) bool {
	goal := iterationGoals[d]
	diff := iterations - goal
	if diff < 0 {
		diff = -diff
	}
	if diff <= absTol {
		return true
	}
	return float64(diff) <= relTol*float64(goal)
}

// CloseToTarget reports whether score sits within the inner 60% of the
// target band — the lower and upper 20% are considered edges rather than a
// comfortable fit.
func CloseToTarget(score float64, target domain.Difficulty) bool {
	band := scoreTargets[target]
	span := band.Max - band.Min
	if band.Max == 0 {
		// Evil's band is unbounded above, so there are no edges to exclude:
		// any score at or above Min counts as close.
		return score >= band.Min
	}
	lower := band.Min + 0.2*span
	upper := band.Max - 0.2*span
	return score >= lower && score < upper
}

// ClassificationBand widens a single classification into the (min, max)
// range attached to a rating: a score in the lower 20% of its
// class's band pulls min down to the class below, a score in the upper 20%
// pushes max up to the class above. A score comfortably in the middle 60%
// reports min == max == classification.
func ClassificationBand(score float64, classification domain.Difficulty) (min, max domain.Difficulty) {
	min, max = classification, classification
	band := scoreTargets[classification]
	span := band.Max - band.Min
	if span <= 0 {
		// Evil has no upper bound to measure a span against; nothing above
		// it to raise into either.
		return min, max
	}
	if classification > domain.Easy && score < band.Min+0.2*span {
		min = classification - 1
	}
	if classification < domain.Evil && score >= band.Max-0.2*span {
		max = classification + 1
	}
	return min, max
}
