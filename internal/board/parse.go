package board

import (
	"github.com/sudokuforge/engine/internal/domain"
)

// ParseIssues reports cells whose character in the input string was neither
// an empty marker ('.' or '0') nor a digit in [1, Size]; those cells are
// parsed as empty instead. An empty
// ParseIssues means the input was fully in range.
type ParseIssues struct {
	OutOfRange []domain.CellCoord
}

func (p ParseIssues) OK() bool { return len(p.OutOfRange) == 0 }

// Parse reads a Size²-character board string:
// '1'-'9' are digit values, '.' and '0' are empty, excess characters are
// ignored, and short input is zero-padded. This textual form is only
// defined for Size<=9 (the single-character-per-digit convention doesn't
// extend further); larger shapes return domain.ErrInvalidShape.
func Parse(s string, shape domain.Shape) (*Board, ParseIssues, error) {
	if !shape.Valid() {
		return nil, ParseIssues{}, domain.ErrInvalidShape
	}
	if shape.Size > 9 {
		return nil, ParseIssues{}, domain.ErrInvalidShape
	}
	b, err := New(shape)
	if err != nil {
		return nil, ParseIssues{}, err
	}
	var issues ParseIssues
	n := shape.Size * shape.Size
	for i := 0; i < n; i++ {
		var ch byte = '0'
		if i < len(s) {
			ch = s[i]
		}
		r, c := i/shape.Size, i%shape.Size
		switch {
		case ch == '.' || ch == '0':
			// already empty
		case ch >= '1' && ch <= '9':
			v := int(ch - '0')
			if v > shape.Size {
				issues.OutOfRange = append(issues.OutOfRange, domain.CellCoord{Row: r, Col: c})
				continue
			}
			b.Set(r, c, uint8(v))
		default:
			issues.OutOfRange = append(issues.OutOfRange, domain.CellCoord{Row: r, Col: c})
		}
	}
	if !issues.OK() {
		return b, issues, domain.ErrInvalidInput
	}
	return b, issues, nil
}
