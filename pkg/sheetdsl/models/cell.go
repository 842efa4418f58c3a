// Package models defines the serializable snapshot of a spreadsheet.
package models

// CellData represents a single cell and its formula.
type CellData struct {
	// Ref is the rendered cell reference (e.g. "B1", "R22").
	Ref string `json:"ref"`
	// Notation is the notation Ref is written in ("A1" or "R1C1").
	Notation string `json:"notation"`
	// R is the row index (1-based).
	R int `json:"r"`
	// C is the column index (1-based).
	C int `json:"c"`
	// Formula is the formula text; empty when the cell has none.
	Formula string `json:"formula,omitempty"`
}
