package sheetdsl

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Reference is a validated cell address. The set of implementations is
// closed: A1 and R1C1.
type Reference interface {
	fmt.Stringer
	// Coordinates returns the 1-based column and row of the cell.
	Coordinates() (column, row int)
	reference()
}

// A1 addresses a cell by column letter and row number, e.g. "B1".
type A1 struct {
	column rune
	row    int
}

// NewA1 creates an A1 reference. column must be in 'A'..'Z' and row must be
// greater than 0.
func NewA1(column rune, row int) (A1, error) {
	if column < 'A' || column > 'Z' {
		return A1{}, NewValidationError("A1", "column", string(column), ErrInvalidColumn)
	}
	if row <= 0 {
		return A1{}, NewValidationError("A1", "row", strconv.Itoa(row), ErrInvalidRow)
	}
	return A1{column: column, row: row}, nil
}

// MustA1 is like NewA1 but panics if the reference is invalid.
func MustA1(column rune, row int) A1 {
	ref, err := NewA1(column, row)
	if err != nil {
		panic(err)
	}
	return ref
}

// ParseA1 parses a cell name such as "B3" into an A1 reference.
// Multi-letter columns are rejected.
func ParseA1(name string) (A1, error) {
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return A1{}, NewValidationError("A1", "name", name, err)
	}
	if col > 26 {
		return A1{}, NewValidationError("A1", "column", name, ErrInvalidColumn)
	}
	return NewA1(rune('A'+col-1), row)
}

// Column returns the column letter.
func (r A1) Column() rune { return r.column }

// Row returns the row number.
func (r A1) Row() int { return r.row }

func (r A1) Coordinates() (column, row int) {
	return int(r.column-'A') + 1, r.row
}

func (r A1) String() string {
	return string(r.column) + strconv.Itoa(r.row)
}

func (A1) reference() {}

// R1C1 addresses a cell by row and column number.
type R1C1 struct {
	row    int
	column int
}

// NewR1C1 creates an R1C1 reference. Both row and column must be greater than 0.
func NewR1C1(row, column int) (R1C1, error) {
	if row <= 0 {
		return R1C1{}, NewValidationError("R1C1", "row", strconv.Itoa(row), ErrInvalidRow)
	}
	if column <= 0 {
		return R1C1{}, NewValidationError("R1C1", "column", strconv.Itoa(column), ErrInvalidColumn)
	}
	return R1C1{row: row, column: column}, nil
}

// MustR1C1 is like NewR1C1 but panics if the reference is invalid.
func MustR1C1(row, column int) R1C1 {
	ref, err := NewR1C1(row, column)
	if err != nil {
		panic(err)
	}
	return ref
}

// Row returns the row number.
func (r R1C1) Row() int { return r.row }

// Column returns the column number.
func (r R1C1) Column() int { return r.column }

func (r R1C1) Coordinates() (column, row int) {
	return r.column, r.row
}

// String renders "R<row><column>". There is no "C" between row and column,
// so R1C1(2, 1) and R1C1(21, ...) can collide; use A1Name when the text
// has to be read back.
func (r R1C1) String() string {
	return "R" + strconv.Itoa(r.row) + strconv.Itoa(r.column)
}

func (R1C1) reference() {}

// A1Name returns the conventional A1 cell name of ref, e.g. "AB2" for
// R1C1(2, 28).
func A1Name(ref Reference) (string, error) {
	col, row := ref.Coordinates()
	return excelize.CoordinatesToCellName(col, row)
}
