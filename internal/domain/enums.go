// Package domain holds the enums, shapes, and sentinel errors shared across
// the puzzle-engine packages. Nothing here depends on board/solver/generator
// state, which keeps it safe to import from anywhere in the engine.
package domain

import "strings"

// Difficulty is one of the five classes the engine targets and rates
// against. Ordered from easiest to hardest so comparisons (d1 < d2) are
// meaningful.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
	Evil
)

var difficultyNames = [...]string{"Easy", "Medium", "Hard", "Expert", "Evil"}

func (d Difficulty) String() string {
	if d < Easy || d > Evil {
		return "Unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty matches a single difficulty token case-insensitively.
// The second return value is false for unrecognized tokens.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "expert":
		return Expert, true
	case "evil":
		return Evil, true
	default:
		return Medium, false
	}
}

// Variant distinguishes the classical constraint set from the two
// rendering-only variants. The solver and rater treat all three
// identically; the value is carried as metadata so output writers know
// which ruleset to display.
type Variant int

const (
	Classical Variant = iota
	Diagonal
	ColorConstrained
)

// TechniqueTag identifies one of the eight named human solving techniques.
// Its numeric value doubles as the technique's weight in the technique-score
// formula.
type TechniqueTag int

const (
	NakedSingle  TechniqueTag = 1
	HiddenSingle TechniqueTag = 2
	NakedPair    TechniqueTag = 4
	HiddenPair   TechniqueTag = 5
	XWing        TechniqueTag = 8
	XYWing       TechniqueTag = 10
	Swordfish    TechniqueTag = 12
	XYZWing      TechniqueTag = 14
)

func (t TechniqueTag) Weight() int { return int(t) }

var techniqueNames = map[TechniqueTag]string{
	NakedSingle:  "Naked Single",
	HiddenSingle: "Hidden Single",
	NakedPair:    "Naked Pair",
	HiddenPair:   "Hidden Pair",
	XWing:        "X-Wing",
	XYWing:       "XY-Wing",
	Swordfish:    "Swordfish",
	XYZWing:      "XYZ-Wing",
}

func (t TechniqueTag) String() string {
	if name, ok := techniqueNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Comparison is the three-valued result of checking a score/iteration count
// against a difficulty class's target range.
type Comparison int

const (
	TooEasy Comparison = iota
	InRange
	TooHard
)

// Shape describes the board's geometry: Size×Size cells, partitioned into
// Size boxes of BoxRows×BoxCols. BoxRows*BoxCols must equal Size.
type Shape struct {
	Size    int
	BoxRows int
	BoxCols int
}

// Valid reports whether the shape's box dimensions tile the board exactly.
func (s Shape) Valid() bool {
	return s.Size > 0 && s.BoxRows > 0 && s.BoxCols > 0 && s.BoxRows*s.BoxCols == s.Size
}

// StandardShape returns the conventional box layout for a given side, or
// false if the side isn't one the engine recognizes out of the box. Callers
// needing a non-standard layout (e.g. 6 as 2x3 instead of 3x2) build a Shape
// literal directly.
func StandardShape(size int) (Shape, bool) {
	switch size {
	case 4:
		return Shape{Size: 4, BoxRows: 2, BoxCols: 2}, true
	case 6:
		return Shape{Size: 6, BoxRows: 2, BoxCols: 3}, true
	case 9:
		return Shape{Size: 9, BoxRows: 3, BoxCols: 3}, true
	case 12:
		return Shape{Size: 12, BoxRows: 3, BoxCols: 4}, true
	case 16:
		return Shape{Size: 16, BoxRows: 4, BoxCols: 4}, true
	default:
		return Shape{}, false
	}
}
