package inventory

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/farmos/crop-service/internal/stage"
)

const exportSheet = "Inventory"

var exportHeader = []interface{}{
	"Crop", "Planted", "Quantity", "Area", "Rainfall (mm)",
	"Stage", "Progress %", "Days Left", "Status",
}

// ExportXLSX writes the enriched inventory as a spreadsheet. Records with a
// parse error are exported with their raw fields and the error in the Status
// column so bad rows stay visible.
func ExportXLSX(w io.Writer, records []stage.EnrichedCropRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetSheetRow(exportSheet, cell, &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range records {
		r := &records[i]

		row := []interface{}{r.Name, r.Planted, r.Quantity, r.Area, r.RainfallMm}
		if r.Valid() {
			row = append(row, r.CurrentStageName, r.ProgressPercent, r.DaysLeft, r.Status)
		} else {
			row = append(row, "", "", "", r.ParseError)
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
