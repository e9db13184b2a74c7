package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"temp-compliance-backend/internal/store"
)

// Notifier dispatches an equipment id whose latest reading breached its
// range. Nil disables the push pipeline.
type Notifier interface {
	Dispatch(equipmentID string)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	webpush  *webpush.Options
	notifier Notifier
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, webpushOptions *webpush.Options, notifier Notifier) *Handler {
	return &Handler{
		store:    s,
		webpush:  webpushOptions,
		notifier: notifier,
	}
}
