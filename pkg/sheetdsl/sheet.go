package sheetdsl

// Sheet is a named, ordered collection of cells. Names are not validated
// and references may repeat within a sheet.
type Sheet struct {
	name  string
	cells []*Cell
}

// NewSheet creates a sheet and applies configure to it before returning.
// configure may be nil.
func NewSheet(name string, configure func(*Sheet)) *Sheet {
	s := &Sheet{name: name}
	if configure != nil {
		configure(s)
	}
	return s
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Cells returns the cells in insertion order.
func (s *Sheet) Cells() []*Cell {
	cells := make([]*Cell, len(s.cells))
	copy(cells, s.cells)
	return cells
}

// AddCell creates a cell for ref, applies configure and appends it.
func (s *Sheet) AddCell(ref Reference, configure func(*Cell)) {
	s.Append(NewCell(ref, configure))
}

// Append appends cells built elsewhere, e.g. with NewCell.
func (s *Sheet) Append(cells ...*Cell) {
	s.cells = append(s.cells, cells...)
}
