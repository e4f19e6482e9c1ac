package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"eventplanner-backend/internal/schedule"
	"eventplanner-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	sessions *schedule.Manager
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, sessions *schedule.Manager, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		webpush:  webpushOptions,
	}
}
