package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ukaji3/sheetdsl-go/pkg/sheetdsl/models"
)

// WriteText writes one "Sheet: <name>" line per sheet followed by one
// "Cell <ref>: <formula>" line per cell.
func WriteText(w io.Writer, wb *models.WorkbookData) error {
	bw := bufio.NewWriter(w)
	for _, sheet := range wb.Sheets {
		fmt.Fprintf(bw, "Sheet: %s\n", sheet.Name)
		for _, cell := range sheet.Cells {
			fmt.Fprintf(bw, "Cell %s: %s\n", cell.Ref, cell.Formula)
		}
	}
	return bw.Flush()
}
