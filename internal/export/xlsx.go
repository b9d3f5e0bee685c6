package export

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"payment-insights-go/internal/types"
)

// WriteDashboardXLSX writes a workbook with one sheet per section. Cells in
// numeric columns are stored as numbers; labels always stay text.
func WriteDashboardXLSX(w io.Writer, d types.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, s := range Sections(d) {
		sheet := s.Name
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &s.Header); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(s.Header), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
		for r, row := range s.Rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, cellValue(v, s.IsNumeric(c))); err != nil {
					return err
				}
			}
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

func cellValue(v string, numeric bool) any {
	if !numeric {
		return v
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if x, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(x) && !math.IsInf(x, 0) {
		return x
	}
	return v
}
