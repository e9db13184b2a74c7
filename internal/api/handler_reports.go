package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/compliance"
	"temp-compliance-backend/internal/model"
	"temp-compliance-backend/internal/report"
	"temp-compliance-backend/internal/store"
)

// GetReport handles GET /api/restaurants/{restaurant_id}/reports. Zero
// matching readings is not an error: the response carries an empty row list.
func (h *Handler) GetReport(c *gin.Context) {
	filter, err := parseReportFilter(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, readings, users, ok := h.loadReportData(c)
	if !ok {
		return
	}

	filtered := compliance.FilterReadings(readings, equipment, filter)
	rows := compliance.BuildReportRows(filtered, equipment, users)
	c.JSON(http.StatusOK, gin.H{"total": len(rows), "rows": rows})
}

// ExportReport handles GET /api/restaurants/{restaurant_id}/reports/export.
// An empty result still produces a valid document with the full metadata
// header and zero data rows.
func (h *Handler) ExportReport(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "xlsx" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid format. Use pdf or xlsx."})
		return
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.store.GetRestaurant(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurant"})
		}
		return
	}

	equipment, readings, users, ok := h.loadReportData(c)
	if !ok {
		return
	}

	filtered := compliance.FilterReadings(readings, equipment, filter)
	rows := compliance.BuildReportRows(filtered, equipment, users)
	meta := report.Meta{
		RestaurantName:  restaurant.Name,
		EquipmentFilter: equipmentFilterLabel(filter, equipment),
		From:            filter.From,
		To:              filter.To,
		GeneratedAt:     time.Now(),
	}

	filename := fmt.Sprintf("reporte-temperaturas-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "pdf":
		data, err := report.PDF(rows, meta)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
			return
		}
		c.Data(http.StatusOK, "application/pdf", data)
	case "xlsx":
		data, err := report.Excel(rows, meta)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to render XLSX"})
			return
		}
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

// loadReportData fetches the restaurant-scoped collections the report needs.
// On failure it writes the error response and returns ok=false.
func (h *Handler) loadReportData(c *gin.Context) (equipment []model.Equipment, readings []model.TemperatureReading, users []model.User, ok bool) {
	restaurantID := c.Param("restaurant_id")
	ctx := c.Request.Context()

	equipment, err := h.store.ListEquipment(ctx, restaurantID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve equipment"})
		return nil, nil, nil, false
	}
	readings, err = h.store.ListReadings(ctx, restaurantID, 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve readings"})
		return nil, nil, nil, false
	}
	_, users, err = h.store.ListStaffAndUsers(ctx, restaurantID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff"})
		return nil, nil, nil, false
	}
	return equipment, readings, users, true
}

// parseReportFilter reads from/to/equipment_id query parameters. Dates accept
// RFC3339 or plain 2006-01-02; a date-only "to" extends to the end of that
// day so the bound stays inclusive.
func parseReportFilter(c *gin.Context) (compliance.ReportFilter, error) {
	filter := compliance.ReportFilter{
		EquipmentID: c.DefaultQuery("equipment_id", compliance.AllEquipment),
	}

	if raw := c.Query("from"); raw != "" {
		t, _, err := parseDateParam(raw)
		if err != nil {
			return compliance.ReportFilter{}, fmt.Errorf("invalid 'from' date %q", raw)
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, dateOnly, err := parseDateParam(raw)
		if err != nil {
			return compliance.ReportFilter{}, fmt.Errorf("invalid 'to' date %q", raw)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.To = &t
	}
	return filter, nil
}

func parseDateParam(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse("2006-01-02", raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, err
}

func equipmentFilterLabel(filter compliance.ReportFilter, equipment []model.Equipment) string {
	if filter.EquipmentID == "" || filter.EquipmentID == compliance.AllEquipment {
		return "Todos los equipos"
	}
	for _, eq := range equipment {
		if eq.ID == filter.EquipmentID {
			return eq.Name
		}
	}
	return compliance.UnknownEquipmentLabel
}
