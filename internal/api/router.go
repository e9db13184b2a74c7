package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"temp-compliance-backend/config"
	"temp-compliance-backend/internal/mw"
	"temp-compliance-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.ServerConfig, webpushOptions *webpush.Options, notifier Notifier) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, webpushOptions, notifier)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// Dashboard and history recompute everything per request; a short cache
	// keeps bursty polling cheap without hiding fresh readings for long.
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/restaurants", handler.GetRestaurants)
		api.POST("/restaurants", handler.PostRestaurant)

		api.GET("/restaurants/:restaurant_id/dashboard", caching, handler.GetDashboard)

		api.GET("/restaurants/:restaurant_id/equipment", handler.GetEquipmentList)
		api.POST("/restaurants/:restaurant_id/equipment", handler.PostEquipment)
		api.PUT("/equipment/:equipment_id", handler.PutEquipment)
		api.DELETE("/equipment/:equipment_id", handler.DeleteEquipment)
		api.GET("/equipment/:equipment_id/history", caching, handler.GetHistory)

		api.POST("/readings", handler.PostReading)

		api.GET("/restaurants/:restaurant_id/reports", handler.GetReport)
		api.GET("/restaurants/:restaurant_id/reports/export", handler.ExportReport)

		api.GET("/restaurants/:restaurant_id/staff", handler.GetStaff)
		api.POST("/restaurants/:restaurant_id/staff", handler.PostStaffMember)
		api.POST("/users", handler.PostUser)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
