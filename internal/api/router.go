package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"eventplanner-backend/config"
	"eventplanner-backend/internal/mw"
	"eventplanner-backend/internal/schedule"
	"eventplanner-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, sessions *schedule.Manager, webpushOptions *webpush.Options, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, sessions, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Reference lists: slow-changing, safe to cache.
		api.GET("/seasons", caching, handler.GetSeasons)
		api.GET("/vehicles", caching, handler.GetVehicles)
		api.GET("/airfields", caching, handler.GetAirfields)

		api.GET("/events", handler.GetEvents)

		// The schedule view is never cached: it must reflect optimistic
		// patches immediately.
		ev := api.Group("/events/:event_id/schedule")
		{
			ev.GET("", handler.GetSchedule)
			ev.POST("/reload", handler.ReloadSchedule)
			ev.POST("/drag", handler.StartDrag)
			ev.POST("/drag/hover", handler.HoverDrag)
			ev.POST("/drag/drop", handler.DropDrag)
			ev.POST("/drag/cancel", handler.CancelDrag)
			ev.POST("/picker", handler.OpenPicker)
			ev.POST("/picker/save", handler.SavePicker)
			ev.POST("/picker/cancel", handler.CancelPicker)
		}

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
