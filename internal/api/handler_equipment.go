package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/store"
)

// GetEquipmentList handles GET /api/restaurants/{restaurant_id}/equipment.
func (h *Handler) GetEquipmentList(c *gin.Context) {
	equipment, err := h.store.ListEquipment(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve equipment"})
		return
	}
	c.JSON(http.StatusOK, equipment)
}

type postEquipmentRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	// min <= max is expected from the admin form but not enforced here.
	MinTemp *float64 `json:"min_temp" binding:"required"`
	MaxTemp *float64 `json:"max_temp" binding:"required"`
}

// PostEquipment handles POST /api/restaurants/{restaurant_id}/equipment.
func (h *Handler) PostEquipment(c *gin.Context) {
	var req postEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.store.CreateEquipment(c.Request.Context(), store.NewEquipment{
		Code:         req.Code,
		Name:         req.Name,
		MinTemp:      *req.MinTemp,
		MaxTemp:      *req.MaxTemp,
		RestaurantID: c.Param("restaurant_id"),
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment"})
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

type putEquipmentRequest struct {
	Code    *string  `json:"code"`
	Name    *string  `json:"name"`
	MinTemp *float64 `json:"min_temp"`
	MaxTemp *float64 `json:"max_temp"`
}

// PutEquipment handles PUT /api/equipment/{equipment_id}. Editing thresholds
// changes the live range only; readings keep their snapshots.
func (h *Handler) PutEquipment(c *gin.Context) {
	var req putEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.store.UpdateEquipment(c.Request.Context(), c.Param("equipment_id"), store.EquipmentUpdate{
		Code:    req.Code,
		Name:    req.Name,
		MinTemp: req.MinTemp,
		MaxTemp: req.MaxTemp,
	})
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
		}
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment handles DELETE /api/equipment/{equipment_id}.
func (h *Handler) DeleteEquipment(c *gin.Context) {
	err := h.store.DeleteEquipment(c.Request.Context(), c.Param("equipment_id"))
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
