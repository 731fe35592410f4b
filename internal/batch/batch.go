// Package batch implements the batch distribution policy and difficulty
// string parsing, owned by the core and consumed by the CLI.
package batch

import (
	"strings"

	"github.com/sudokuforge/engine/internal/domain"
)

// Distribute expands an ordered list of difficulties into a length-n
// sequence:
//   - |D|=1: n copies of D[0].
//   - |D|>=2: groups of 2 cycling D[0],D[0],D[1],D[1],...,D[k],D[k],
//     wrapping back to D[0]; any trailing partial group is truncated
//     rather than padded, which biases the tail toward the earlier
//     difficulties in D when n doesn't divide evenly.
//
// Distribute returns nil for an empty difficulty list or a non-positive n.
func Distribute(difficulties []domain.Difficulty, n int) []domain.Difficulty {
	if len(difficulties) == 0 || n <= 0 {
		return nil
	}
	if len(difficulties) == 1 {
		out := make([]domain.Difficulty, n)
		for i := range out {
			out[i] = difficulties[0]
		}
		return out
	}
	return cycleInGroups(difficulties, n, 2)
}

// cycleInGroups emits groupSize copies of difficulties[0], then groupSize
// copies of difficulties[1], and so on, wrapping back to the start, until n
// entries have been emitted. A trailing partial group is truncated rather
// than padded, which is what biases a 2-class batch toward the earlier
// class when n is odd.
func cycleInGroups(difficulties []domain.Difficulty, n, groupSize int) []domain.Difficulty {
	out := make([]domain.Difficulty, 0, n)
	for i := 0; len(out) < n; i++ {
		d := difficulties[i%len(difficulties)]
		for j := 0; j < groupSize && len(out) < n; j++ {
			out = append(out, d)
		}
	}
	return out
}

// ParseDifficultyList parses a comma-separated, whitespace-trimmed,
// case-insensitive list of difficulty tokens. Unrecognized tokens are
// dropped. Empty or entirely-unrecognized input defaults to a single
// Medium entry.
func ParseDifficultyList(s string) []domain.Difficulty {
	var out []domain.Difficulty
	for _, tok := range strings.Split(s, ",") {
		d, ok := domain.ParseDifficulty(tok)
		if !ok {
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return []domain.Difficulty{domain.Medium}
	}
	return out
}
