package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"temp-compliance-backend/internal/compliance"
	"temp-compliance-backend/internal/store"
)

// GetRestaurants handles GET /api/restaurants. When the caller identifies
// itself with an X-User-ID header, the list is narrowed by the role
// visibility policy; authentication itself is the auth provider's problem,
// not ours.
func (h *Handler) GetRestaurants(c *gin.Context) {
	ctx := c.Request.Context()

	restaurants, err := h.store.ListRestaurants(ctx, c.Query("organization_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurants"})
		return
	}

	if userID := c.GetHeader("X-User-ID"); userID != "" {
		user, err := h.store.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}
		restaurants = compliance.VisibleRestaurants(user, restaurants)
	}

	c.JSON(http.StatusOK, restaurants)
}

type postRestaurantRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

// PostRestaurant handles POST /api/restaurants.
func (h *Handler) PostRestaurant(c *gin.Context) {
	var req postRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.store.CreateRestaurant(c.Request.Context(), store.NewRestaurant{
		Name:           req.Name,
		Address:        req.Address,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}
