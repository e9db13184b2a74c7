package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"temp-compliance-backend/internal/compliance"
	"temp-compliance-backend/internal/timefmt"
)

var pdfColWidths = []float64{30, 52, 22, 22, 34, 48, 62}

// PDF renders the report as a landscape A4 document. Alert rows carry a bold
// red status cell so breaches stand out on a printed audit sheet. A zero-row
// report is still a valid document with the full metadata header.
func PDF(rows []compliance.ReportRow, meta Meta) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(Title))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range meta.headerLines() {
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 243, 255)
	for i, h := range columns {
		pdf.CellFormat(pdfColWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(rows) == 0 {
		pdf.CellFormat(tableWidth(), 7, tr("No hay registros para el periodo seleccionado."), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for _, row := range rows {
		pdf.CellFormat(pdfColWidths[0], 6, timefmt.FullDateTime(row.RecordedAt), "1", 0, "", false, 0, "")
		pdf.CellFormat(pdfColWidths[1], 6, tr(row.EquipmentName), "1", 0, "", false, 0, "")
		pdf.CellFormat(pdfColWidths[2], 6, tr(fmt.Sprintf("%g°C", row.Value)), "1", 0, "R", false, 0, "")
		writeStatusCell(pdf, tr, row.Status)
		pdf.CellFormat(pdfColWidths[4], 6, tr(row.SnapshotRange), "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfColWidths[5], 6, tr(row.RecordedBy), "1", 0, "", false, 0, "")
		pdf.CellFormat(pdfColWidths[6], 6, tr(row.Notes), "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeStatusCell(pdf *gofpdf.Fpdf, tr func(string) string, status compliance.Status) {
	if status == compliance.StatusAlert {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(204, 0, 0)
		pdf.CellFormat(pdfColWidths[3], 6, tr("Alerta"), "1", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		return
	}
	pdf.CellFormat(pdfColWidths[3], 6, tr("Normal"), "1", 0, "C", false, 0, "")
}

func tableWidth() float64 {
	var w float64
	for _, c := range pdfColWidths {
		w += c
	}
	return w
}
