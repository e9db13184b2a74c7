package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"temp-compliance-backend/internal/compliance"
	"temp-compliance-backend/internal/timefmt"
)

const sheetName = "Lecturas"

// metaRows is the number of spreadsheet rows occupied by the header block
// (title + metadata + one blank spacer) before the column header.
const metaRows = 6

var excelColWidths = []float64{18, 28, 12, 10, 18, 22, 40}

// Excel renders the report as an XLSX workbook with the same layout as the
// PDF export: metadata block, styled column header, one row per reading,
// alert rows flagged in bold red.
func Excel(rows []compliance.ReportRow, meta Meta) ([]byte, error) {
	f := excelize.NewFile()
	// WriteToBuffer needs the file open, so Close only runs on error paths.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	alertStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "CC0000"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create alert style: %w", err)
	}

	set := func(cell string, value any) error {
		return f.SetCellValue(sheetName, cell, value)
	}

	if err := set("A1", Title); err != nil {
		f.Close()
		return nil, fmt.Errorf("write title: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("style title: %w", err)
	}
	for i, line := range meta.headerLines() {
		if err := set(fmt.Sprintf("A%d", i+2), line); err != nil {
			f.Close()
			return nil, fmt.Errorf("write metadata: %w", err)
		}
	}

	for col, header := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, metaRows+1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		if err := set(cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("style header cell %s: %w", cell, err)
		}
		colName, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheetName, colName, colName, excelColWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, row := range rows {
		rowNum := metaRows + 2 + i
		status := "Normal"
		if row.Status == compliance.StatusAlert {
			status = "Alerta"
		}
		values := []any{
			timefmt.FullDateTime(row.RecordedAt),
			row.EquipmentName,
			row.Value,
			status,
			row.SnapshotRange,
			row.RecordedBy,
			row.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("convert coordinates: %w", err)
			}
			if err := set(cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("write data cell %s: %w", cell, err)
			}
		}
		if row.Status == compliance.StatusAlert {
			cell, _ := excelize.CoordinatesToCellName(4, rowNum)
			if err := f.SetCellStyle(sheetName, cell, cell, alertStyle); err != nil {
				f.Close()
				return nil, fmt.Errorf("style alert cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
