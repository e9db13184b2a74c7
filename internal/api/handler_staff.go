package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/store"
)

// GetStaff handles GET /api/restaurants/{restaurant_id}/staff. The entry
// form needs both identity kinds: roster staff (no login) and platform
// accounts, since either can be credited on a reading.
func (h *Handler) GetStaff(c *gin.Context) {
	staff, users, err := h.store.ListStaffAndUsers(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff, "users": users})
}

type postStaffMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

// PostStaffMember handles POST /api/restaurants/{restaurant_id}/staff.
func (h *Handler) PostStaffMember(c *gin.Context) {
	var req postStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.store.CreateStaffMember(c.Request.Context(), store.NewStaffMember{
		Name:         req.Name,
		RestaurantID: c.Param("restaurant_id"),
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

type postUserRequest struct {
	Name           string  `json:"name" binding:"required"`
	Role           string  `json:"role" binding:"required,oneof=admin manager staff"`
	OrganizationID string  `json:"organization_id" binding:"required"`
	RestaurantID   *string `json:"restaurant_id"`
}

// PostUser handles POST /api/users.
func (h *Handler) PostUser(c *gin.Context) {
	var req postUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), store.NewUser{
		Name:           req.Name,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		RestaurantID:   req.RestaurantID,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}
