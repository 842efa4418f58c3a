package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook name.
	BookName string `json:"book_name"`
	// Sheets lists the sheets in insertion order. Names may repeat.
	Sheets []SheetData `json:"sheets"`
}
