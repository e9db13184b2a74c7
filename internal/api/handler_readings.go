package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/compliance"
	"temp-compliance-backend/internal/store"
)

type postReadingRequest struct {
	EquipmentID string   `json:"equipment_id" binding:"required"`
	Value       *float64 `json:"value" binding:"required"`
	Notes       string   `json:"notes"`
	CreatedBy   string   `json:"created_by" binding:"required"`
	TakenBy     string   `json:"taken_by"`
}

// PostReading handles POST /api/readings, the staff temperature entry. The
// stored reading carries the snapshot of the equipment's current range; when
// the value lands outside it, the alert notifier is kicked.
func (h *Handler) PostReading(c *gin.Context) {
	var req postReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := h.store.CreateReading(c.Request.Context(), store.NewReading{
		EquipmentID: req.EquipmentID,
		Value:       *req.Value,
		Notes:       req.Notes,
		CreatedBy:   req.CreatedBy,
		TakenBy:     req.TakenBy,
	})
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reading"})
		}
		return
	}

	if h.notifier != nil && compliance.ClassifySnapshot(reading, nil) == compliance.StatusAlert {
		h.notifier.Dispatch(reading.EquipmentID)
	}

	c.JSON(http.StatusCreated, reading)
}
