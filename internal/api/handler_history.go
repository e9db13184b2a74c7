package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/compliance"
	"temp-compliance-backend/internal/store"
)

// GetHistory handles GET /api/equipment/{equipment_id}/history?range=7d.
// An empty series is a valid 200 response; callers render the "no data for
// this period" state themselves.
func (h *Handler) GetHistory(c *gin.Context) {
	timeRange, err := compliance.ParseTimeRange(c.DefaultQuery("range", string(compliance.Range7d)))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid range. Use 24h, 7d or 30d."})
		return
	}

	ctx := c.Request.Context()
	equipment, err := h.store.GetEquipment(ctx, c.Param("equipment_id"))
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve equipment"})
		}
		return
	}

	readings, err := h.store.ListReadings(ctx, equipment.RestaurantID, 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve readings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"equipment": equipment,
		"range":     timeRange,
		"points":    compliance.History(readings, equipment, timeRange, time.Now()),
	})
}
