package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/compliance"
)

// GetDashboard handles GET /api/restaurants/{restaurant_id}/dashboard.
// Derived state is recomputed in full on every request; there is no
// incremental update path.
func (h *Handler) GetDashboard(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")
	ctx := c.Request.Context()

	equipment, err := h.store.ListEquipment(ctx, restaurantID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve equipment"})
		return
	}

	readings, err := h.store.ListReadings(ctx, restaurantID, 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve readings"})
		return
	}

	c.JSON(http.StatusOK, compliance.DashboardItems(equipment, readings, time.Now()))
}
