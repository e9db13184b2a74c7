package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"temp-compliance-backend/internal/compliance"
)

func sampleMeta() Meta {
	return Meta{
		RestaurantName:  "La Terraza",
		EquipmentFilter: "Todos los equipos",
		GeneratedAt:     time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func sampleRows() []compliance.ReportRow {
	return []compliance.ReportRow{
		{
			RecordedAt:    time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC),
			EquipmentName: "Cámara Fría",
			Value:         7.5,
			Status:        compliance.StatusAlert,
			SnapshotRange: "1°C a 4°C",
			RecordedBy:    "Ana Ruiz",
			Notes:         "Puerta abierta durante la descarga",
		},
		{
			RecordedAt:    time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC),
			EquipmentName: "Cámara Fría",
			Value:         2.5,
			Status:        compliance.StatusNormal,
			SnapshotRange: "1°C a 4°C",
			RecordedBy:    "Luis",
		},
	}
}

func TestMeta_PeriodLabel(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Historial completo", Meta{}.PeriodLabel())
	assert.Equal(t, "Desde 01/08/2026", Meta{From: &from}.PeriodLabel())
	assert.Equal(t, "Hasta 15/08/2026", Meta{To: &to}.PeriodLabel())
	assert.Equal(t, "01/08/2026 - 15/08/2026", Meta{From: &from, To: &to}.PeriodLabel())
}

func TestPDF(t *testing.T) {
	data, err := PDF(sampleRows(), sampleMeta())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(data), 1000)
}

func TestPDF_ZeroRows(t *testing.T) {
	data, err := PDF(nil, sampleMeta())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExcel(t *testing.T) {
	data, err := Excel(sampleRows(), sampleMeta())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Lecturas"}, sheets)

	title, err := f.GetCellValue("Lecturas", "A1")
	require.NoError(t, err)
	assert.Equal(t, Title, title)

	restaurant, err := f.GetCellValue("Lecturas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Restaurante: La Terraza", restaurant)

	// Column header sits right below the metadata block.
	header, err := f.GetCellValue("Lecturas", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Fecha", header)

	equipment, err := f.GetCellValue("Lecturas", "B8")
	require.NoError(t, err)
	assert.Equal(t, "Cámara Fría", equipment)

	status, err := f.GetCellValue("Lecturas", "D8")
	require.NoError(t, err)
	assert.Equal(t, "Alerta", status)

	status, err = f.GetCellValue("Lecturas", "D9")
	require.NoError(t, err)
	assert.Equal(t, "Normal", status)
}

func TestExcel_ZeroRows(t *testing.T) {
	data, err := Excel(nil, sampleMeta())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Lecturas", "D7")
	require.NoError(t, err)
	assert.Equal(t, "Estado", header)

	// No data row below the header.
	value, err := f.GetCellValue("Lecturas", "A8")
	require.NoError(t, err)
	assert.Empty(t, value)
}
