package domain

// CellCoord identifies a cell on a board by 0-based row/column.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ValidationReport lists the offending units found while validating a parsed
// or carved board against the row/column/box invariant. An empty report
// means the board is consistent.
type ValidationReport struct {
	// Offenses lists every unit found to contain a duplicate digit.
	Offenses []UnitOffense
}

// UnitOffense names one unit that contains a duplicate digit.
type UnitOffense struct {
	Unit  string // human-readable label, e.g. "row 3", "column 0", "box 5"
	Digit int
	Cells []CellCoord
}

func (r ValidationReport) OK() bool { return len(r.Offenses) == 0 }
