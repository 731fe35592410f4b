// Package statistics aggregates per-batch generation outcomes: an
// append-only, mutex-guarded list of per-puzzle records with derived
// aggregates computed on demand.
package statistics

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/sudokuforge/engine/internal/domain"
)

// Record is one generation/refinement outcome.
type Record struct {
	TargetClass          domain.Difficulty
	ActualClass          domain.Difficulty
	IterationCount       int
	CompositeScore       float64
	ClueCount            int
	Matched              bool
	RefinementIterations int
	GuessCount           int
	MaxBacktrackDepth    int
}

// Aggregate holds derived metrics for one difficulty class, computed on
// demand from the matching subset of recorded puzzles.
type Aggregate struct {
	Count              int
	MeanIterations     float64
	StdDevIterations   float64
	SuccessRate        float64
	MeanCompositeScore float64
	MeanClueCount      float64
}

// Statistics is the process-wide aggregator the caller owns; its only
// shared mutable state is the record slice, guarded by mu so producers
// running in independent goroutines can append concurrently.
type Statistics struct {
	mu      sync.Mutex
	records []Record
}

// New constructs an empty Statistics aggregator.
func New() *Statistics {
	return &Statistics{}
}

// Append records one outcome. Safe for concurrent use.
func (s *Statistics) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Records returns a snapshot copy of every recorded outcome.
func (s *Statistics) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Aggregate computes derived metrics over every record whose TargetClass
// matches the given difficulty. The sample standard deviation uses gonum's
// unbiased estimator; a single-record class has StdDevIterations == 0.
func (s *Statistics) Aggregate(target domain.Difficulty) Aggregate {
	s.mu.Lock()
	matching := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if r.TargetClass == target {
			matching = append(matching, r)
		}
	}
	s.mu.Unlock()

	if len(matching) == 0 {
		return Aggregate{}
	}

	iterations := make([]float64, len(matching))
	scores := make([]float64, len(matching))
	clueCounts := make([]float64, len(matching))
	successes := 0
	for i, r := range matching {
		iterations[i] = float64(r.IterationCount)
		scores[i] = r.CompositeScore
		clueCounts[i] = float64(r.ClueCount)
		if r.Matched {
			successes++
		}
	}

	agg := Aggregate{
		Count:              len(matching),
		MeanIterations:     stat.Mean(iterations, nil),
		MeanCompositeScore: stat.Mean(scores, nil),
		MeanClueCount:      stat.Mean(clueCounts, nil),
		SuccessRate:        float64(successes) / float64(len(matching)),
	}
	if len(matching) > 1 {
		agg.StdDevIterations = stat.StdDev(iterations, nil)
	}
	return agg
}
