package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet every workbook export writes to.
const SheetName = "Sheet1"

// WriteXLSX writes a header row plus one row per record to a workbook at
// path, overwriting any existing file there.
func WriteXLSX(path string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]any, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
