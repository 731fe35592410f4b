// Package storage persists GeneratedPuzzle values to the filesystem as JSON,
// one file per puzzle under a difficulty-named subdirectory. A
// GeneratedPuzzle embeds two *board.Board values with unexported fields, so
// persistence goes through a textual DTO built on Board's own String/Parse
// form rather than struct tags on Board itself.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/ports"
)

// FS is a filesystem-backed ports.Storage implementation.
type FS struct{ dir string }

// NewFS constructs an FS rooted at dir, creating it lazily on first Save.
func NewFS(dir string) *FS { return &FS{dir: dir} }

// record is the on-disk shape of one GeneratedPuzzle. Puzzle and Solution
// are the Size²-character textual form, not a nested board struct.
type record struct {
	ID           string            `json:"id"`
	Difficulty   domain.Difficulty `json:"difficulty"`
	Variant      domain.Variant    `json:"variant"`
	Size         int               `json:"size"`
	BoxRows      int               `json:"boxRows"`
	BoxCols      int               `json:"boxCols"`
	Seed         int64             `json:"seed"`
	GeneratedAt  int64             `json:"generatedAt"`
	Algorithm    string            `json:"algorithm"`
	PuzzleNumber int               `json:"puzzleNumber"`
	Puzzle       string            `json:"puzzle"`
	Solution     string            `json:"solution"`
	ClueCount    int               `json:"clueCount"`
	Composite    float64           `json:"compositeScore"`
}

func diffDir(d domain.Difficulty) string {
	return strings.ToLower(d.String())
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, diffDir(d), id+".json")
}

// Save writes p to disk under its difficulty's subdirectory and returns the
// ID it was stored under.
func (s *FS) Save(ctx context.Context, p *generator.GeneratedPuzzle) (string, error) {
	if p == nil || p.Puzzle == nil || p.Solution == nil {
		return "", errors.New("storage: cannot save an incomplete GeneratedPuzzle")
	}
	id := fmt.Sprintf("%s-%04d-%d", diffDir(p.Difficulty), p.PuzzleNumber, p.Seed)

	shape := p.Puzzle.Shape()
	rec := record{
		ID:           id,
		Difficulty:   p.Difficulty,
		Variant:      p.Variant,
		Size:         shape.Size,
		BoxRows:      shape.BoxRows,
		BoxCols:      shape.BoxCols,
		Seed:         p.Seed,
		GeneratedAt:  p.GeneratedAt.Unix(),
		Algorithm:    p.Algorithm,
		PuzzleNumber: p.PuzzleNumber,
		Puzzle:       p.Puzzle.String(),
		Solution:     p.Solution.String(),
	}
	if p.Rating != nil {
		rec.ClueCount = p.Rating.ClueCount
		rec.Composite = p.Rating.CompositeScore
	}

	target := s.pathFor(id, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return id, nil
}

// Load reads back a previously saved puzzle by ID, trying every difficulty
// subdirectory in turn rather than parsing the difficulty prefix of the ID.
func (s *FS) Load(ctx context.Context, id string) (*generator.GeneratedPuzzle, error) {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil} {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			continue
		}
		return decode(data)
	}
	return nil, os.ErrNotExist
}

// List enumerates every saved puzzle across all difficulty subdirectories.
func (s *FS) List(ctx context.Context) ([]ports.Meta, error) {
	var out []ports.Meta
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Evil} {
		dir := filepath.Join(s.dir, diffDir(d))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var rec record
			if err := json.Unmarshal(data, &rec); err != nil {
				continue
			}
			out = append(out, ports.Meta{
				ID:          rec.ID,
				Difficulty:  rec.Difficulty,
				ClueCount:   rec.ClueCount,
				GeneratedAt: time.Unix(rec.GeneratedAt, 0).UTC(),
			})
		}
	}
	return out, nil
}

func decode(data []byte) (*generator.GeneratedPuzzle, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	shape := domain.Shape{Size: rec.Size, BoxRows: rec.BoxRows, BoxCols: rec.BoxCols}
	puzzle, _, err := board.Parse(rec.Puzzle, shape)
	if err != nil {
		return nil, err
	}
	solution, _, err := board.Parse(rec.Solution, shape)
	if err != nil {
		return nil, err
	}
	return &generator.GeneratedPuzzle{
		Puzzle:       puzzle,
		Solution:     solution,
		Difficulty:   rec.Difficulty,
		Variant:      rec.Variant,
		Seed:         rec.Seed,
		GeneratedAt:  time.Unix(rec.GeneratedAt, 0).UTC(),
		Algorithm:    rec.Algorithm,
		PuzzleNumber: rec.PuzzleNumber,
	}, nil
}
