package domain

import "errors"

// Sentinel errors shared across the engine. NoSolution is carried as data
// (SolverResult.SolutionCount == 0) far more often than it is returned as an
// error; it is exported here for the cases — Rater.Rate on an unsolvable
// puzzle — where a hard error is the right shape.
var (
	ErrInvalidShape     = errors.New("sudoku: board shape invalid: boxRows*boxCols must equal size")
	ErrInvalidInput     = errors.New("sudoku: parsed board contains out-of-range digits")
	ErrNoSolution       = errors.New("sudoku: puzzle has no solution")
	ErrGenerationFailed = errors.New("sudoku: generation exhausted its attempt budget")
)
