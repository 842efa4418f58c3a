package sheetdsl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRefs() []Reference {
	return []Reference{MustA1('B', 1), MustR1C1(2, 2), MustA1('B', 3)}
}

func TestCellFormulas(t *testing.T) {
	refs := sampleRefs()

	tests := []struct {
		name      string
		configure func(*Cell)
		want      string
	}{
		{"sum", func(c *Cell) { c.Sum(refs...) }, "SUM(B1,R22,B3)"},
		{"average", func(c *Cell) { c.Average(refs...) }, "AVERAGE(B1,R22,B3)"},
		{"sum empty", func(c *Cell) { c.Sum() }, "SUM()"},
		{"average single", func(c *Cell) { c.Average(MustA1('C', 4)) }, "AVERAGE(C4)"},
		{"if", func(c *Cell) { c.If("R1C2 > 10", "R1C2", "0") }, "IF(R1C2 > 10, R1C2, 0)"},
		{"if verbatim", func(c *Cell) { c.If("", `"a,b"`, "") }, `IF(, "a,b", )`},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell(MustA1('A', 1), tt.configure)
			assert.Equal(t, tt.want, c.Formula())
			assert.Equal(t, MustA1('A', 1), c.Reference())
		})
	}
}

func TestCellFormulaJoinsReferenceStrings(t *testing.T) {
	refs := sampleRefs()
	c := NewCell(MustA1('A', 1), func(c *Cell) { c.Sum(refs...) })

	want := fmt.Sprintf("SUM(%s,%s,%s)", refs[0], refs[1], refs[2])
	assert.Equal(t, want, c.Formula())
}

func TestCellLastWriteWins(t *testing.T) {
	c := NewCell(MustA1('A', 1), func(c *Cell) {
		c.Sum(MustA1('B', 1))
		c.If("x", "y", "z")
	})
	assert.Equal(t, "IF(x, y, z)", c.Formula())

	c.Average(MustA1('B', 1), MustA1('B', 2))
	assert.Equal(t, "AVERAGE(B1,B2)", c.Formula())
}

func TestSheetPreservesInsertionOrder(t *testing.T) {
	const n = 30
	sheet := NewSheet("Data", func(s *Sheet) {
		for row := 1; row <= n; row++ {
			s.AddCell(MustA1('A', row), func(c *Cell) {
				c.Sum(MustA1('B', row))
			})
		}
		// Duplicate references are kept.
		s.AddCell(MustA1('A', 1), nil)
	})

	assert.Equal(t, "Data", sheet.Name())
	cells := sheet.Cells()
	require.Len(t, cells, n+1)
	for i := 0; i < n; i++ {
		assert.Equal(t, MustA1('A', i+1), cells[i].Reference())
		assert.Equal(t, fmt.Sprintf("SUM(B%d)", i+1), cells[i].Formula())
	}
	assert.Equal(t, MustA1('A', 1), cells[n].Reference())
	assert.Empty(t, cells[n].Formula())
}

func TestSheetCellsReturnsCopy(t *testing.T) {
	sheet := NewSheet("S", func(s *Sheet) {
		s.AddCell(MustA1('A', 1), nil)
	})

	cells := sheet.Cells()
	cells[0] = nil

	assert.Len(t, sheet.Cells(), 1)
	assert.NotNil(t, sheet.Cells()[0])
}

func TestSpreadsheetPreservesSheetOrder(t *testing.T) {
	names := []string{"Summary", "Data", "Summary", ""}
	s := Build(func(s *Spreadsheet) {
		for _, name := range names {
			s.AddSheet(name, nil)
		}
	})

	sheets := s.Sheets()
	require.Len(t, sheets, len(names))
	for i, name := range names {
		assert.Equal(t, name, sheets[i].Name())
		assert.Empty(t, sheets[i].Cells())
	}
}

func TestBuildNil(t *testing.T) {
	s := Build(nil)
	require.NotNil(t, s)
	assert.Empty(t, s.Sheets())
}

func TestAppendStandaloneBuilders(t *testing.T) {
	cell := NewCell(MustR1C1(1, 1), func(c *Cell) { c.Sum(MustA1('A', 2)) })
	sheet := NewSheet("Sheet2", func(s *Sheet) { s.Append(cell) })

	s := Build(func(s *Spreadsheet) {
		s.AddSheet("Sheet1", nil)
		s.Append(sheet)
	})

	sheets := s.Sheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Sheet2", sheets[1].Name())
	require.Len(t, sheets[1].Cells(), 1)
	assert.Same(t, cell, sheets[1].Cells()[0])
}

func TestBuildWorkedExample(t *testing.T) {
	b1, r2c2, b3 := MustA1('B', 1), MustR1C1(2, 2), MustA1('B', 3)

	s := Build(func(s *Spreadsheet) {
		s.AddSheet("Sheet1", func(sh *Sheet) {
			sh.AddCell(MustA1('A', 1), func(c *Cell) { c.Sum(b1, r2c2, b3) })
			sh.AddCell(MustR1C1(2, 1), func(c *Cell) { c.Average(b1, r2c2, b3) })
			sh.AddCell(MustA1('A', 3), func(c *Cell) { c.If("R1C2 > 10", "R1C2", "0") })
		})
	})

	sheets := s.Sheets()
	require.Len(t, sheets, 1)
	assert.Equal(t, "Sheet1", sheets[0].Name())

	want := []struct {
		ref     string
		formula string
	}{
		{"A1", "SUM(B1,R22,B3)"},
		{"R21", "AVERAGE(B1,R22,B3)"},
		{"A3", "IF(R1C2 > 10, R1C2, 0)"},
	}

	cells := sheets[0].Cells()
	require.Len(t, cells, len(want))
	for i, w := range want {
		assert.Equal(t, w.ref, cells[i].Reference().String())
		assert.Equal(t, w.formula, cells[i].Formula())
	}
}
