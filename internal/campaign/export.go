package campaign

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Date", "Hour", "Name", "Professional", "Phone"}

// ExcelExporter writes the flattened appointment set to a spreadsheet. The
// export is a checkpoint artifact produced before any message is sent and
// keeps every record, including those without a usable phone.
type ExcelExporter struct {
	path string
}

// NewExcelExporter creates an exporter targeting the given file path.
func NewExcelExporter(path string) *ExcelExporter {
	return &ExcelExporter{path: path}
}

// Export writes one row per record and returns the written file's path.
func (e *ExcelExporter) Export(records []Record) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("campaign: export header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return "", fmt.Errorf("campaign: export header: %w", err)
		}
	}

	for row, rec := range records {
		values := []string{rec.Date, rec.Hour, rec.Name, rec.Professional, rec.Phone}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("campaign: export cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("campaign: export row %d: %w", row+1, err)
			}
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return "", fmt.Errorf("campaign: save export %q: %w", e.path, err)
	}
	return e.path, nil
}
