package main

import "github.com/ukaji3/sheetdsl-go/pkg/sheetdsl"

// buildDemo builds the sample workbook: one sheet with a SUM, an AVERAGE
// and an IF cell.
func buildDemo() *sheetdsl.Spreadsheet {
	b1 := sheetdsl.MustA1('B', 1)
	r2c2 := sheetdsl.MustR1C1(2, 2)
	b3 := sheetdsl.MustA1('B', 3)

	return sheetdsl.Build(func(s *sheetdsl.Spreadsheet) {
		s.AddSheet("Sheet1", func(sh *sheetdsl.Sheet) {
			sh.AddCell(sheetdsl.MustA1('A', 1), func(c *sheetdsl.Cell) {
				c.Sum(b1, r2c2, b3)
			})
			sh.AddCell(sheetdsl.MustR1C1(2, 1), func(c *sheetdsl.Cell) {
				c.Average(b1, r2c2, b3)
			})
			sh.AddCell(sheetdsl.MustA1('A', 3), func(c *sheetdsl.Cell) {
				c.If("R1C2 > 10", "R1C2", "0")
			})
		})
	})
}
