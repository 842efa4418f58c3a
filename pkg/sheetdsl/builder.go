// Package sheetdsl builds in-memory spreadsheet models: spreadsheets hold
// sheets, sheets hold cells, and cells hold formula strings built from
// typed cell references.
//
//	s := sheetdsl.Build(func(s *sheetdsl.Spreadsheet) {
//		s.AddSheet("Sheet1", func(sh *sheetdsl.Sheet) {
//			sh.AddCell(sheetdsl.MustA1('A', 1), func(c *sheetdsl.Cell) {
//				c.Sum(sheetdsl.MustA1('B', 1), sheetdsl.MustA1('B', 2))
//			})
//		})
//	})
package sheetdsl

// Build creates an empty spreadsheet, applies configure to it and returns it.
// configure may be nil.
func Build(configure func(*Spreadsheet)) *Spreadsheet {
	s := &Spreadsheet{}
	if configure != nil {
		configure(s)
	}
	return s
}
