package sheetdsl

import (
	"github.com/ukaji3/sheetdsl-go/pkg/sheetdsl/models"
)

// Extract converts a built spreadsheet into its serializable snapshot.
// opts.Notation applies to cell references only; formula text is copied as
// built.
func Extract(s *Spreadsheet, bookName string, opts Options) (*models.WorkbookData, error) {
	wb := &models.WorkbookData{
		BookName: bookName,
		Sheets:   make([]models.SheetData, 0, len(s.sheets)),
	}

	for _, sheet := range s.sheets {
		cells, err := extractCells(sheet, opts)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, models.SheetData{
			Name:  sheet.name,
			Cells: cells,
		})
	}

	return wb, nil
}

func extractCells(sheet *Sheet, opts Options) ([]models.CellData, error) {
	includeEmpty := opts.ShouldIncludeEmpty()

	var result []models.CellData
	for _, cell := range sheet.cells {
		if cell.formula == "" && !includeEmpty {
			continue
		}

		col, row := cell.reference.Coordinates()
		data := models.CellData{
			Ref:      cell.reference.String(),
			Notation: notationOf(cell.reference),
			R:        row,
			C:        col,
			Formula:  cell.formula,
		}

		if opts.Notation == NotationA1 {
			name, err := A1Name(cell.reference)
			if err != nil {
				return nil, NewExtractionError(sheet.name, "references", err)
			}
			data.Ref = name
			data.Notation = "A1"
		}

		result = append(result, data)
	}

	return result, nil
}

// notationOf returns the notation name of ref's variant.
func notationOf(ref Reference) string {
	switch ref.(type) {
	case A1:
		return "A1"
	case R1C1:
		return "R1C1"
	}
	return ""
}
