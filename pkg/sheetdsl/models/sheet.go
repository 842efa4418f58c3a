package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Cells contains the sheet's cells in insertion order.
	Cells []CellData `json:"cells,omitempty"`
}
