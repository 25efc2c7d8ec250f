package format

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// formatXLSX renders the transposed table as an XLSX workbook.
func formatXLSX(records []LabeledRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Paystubs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	rows := transposeRows(records)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the field-name column; value columns share one width.
	_ = f.SetColWidth(sheet, "A", "A", 36)
	if n := len(records); n > 0 {
		last, _ := excelize.ColumnNumberToName(n + 1)
		_ = f.SetColWidth(sheet, "B", last, 14)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
