package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

// buildWorkbook renders the sheets as an xlsx workbook, one worksheet
// per sheet with a bold header row.
func buildWorkbook(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyData
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#EEEEEE"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
			}
		}
		if len(sheet.Rows) == 0 {
			continue
		}

		for col, field := range sheet.Rows[0] {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(name, cell, field.Key)
			f.SetCellStyle(name, cell, cell, headerStyle)
		}
		for r, row := range sheet.Rows {
			for col, key := range headerKeys(sheet.Rows[0]) {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				value, _ := row.Get(key)
				f.SetCellValue(name, cell, value)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return buf.Bytes(), nil
}

func headerKeys(first Row) []string {
	keys := make([]string, len(first))
	for i, f := range first {
		keys[i] = f.Key
	}
	return keys
}
