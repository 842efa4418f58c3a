package sheetdsl

// Spreadsheet is an ordered collection of sheets. Sheet names may repeat.
type Spreadsheet struct {
	sheets []*Sheet
}

// Sheets returns the sheets in insertion order.
func (s *Spreadsheet) Sheets() []*Sheet {
	sheets := make([]*Sheet, len(s.sheets))
	copy(sheets, s.sheets)
	return sheets
}

// AddSheet creates a sheet named name, applies configure and appends it.
func (s *Spreadsheet) AddSheet(name string, configure func(*Sheet)) {
	s.Append(NewSheet(name, configure))
}

// Append appends sheets built elsewhere, e.g. with NewSheet.
func (s *Spreadsheet) Append(sheets ...*Sheet) {
	s.sheets = append(s.sheets, sheets...)
}
