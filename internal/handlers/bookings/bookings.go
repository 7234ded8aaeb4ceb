package bookings

import (
	"github.com/hillcrest/homestay-api/internal/db"
	"github.com/hillcrest/homestay-api/internal/mailer"
)

// Package bookings provides the lodging booking HTTP handler.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP method is implemented in a dedicated file:
// - create.go: Handler.Create

// Handler wires the booking endpoint to the data store and the mail notifier.
type Handler struct {
	db    *db.DB
	mail  mailer.Notifier
	from  string
	admin string
}

// NewHandler returns a new bookings handler. from is the sending account,
// admin the recipient of booking notifications.
func NewHandler(d *db.DB, n mailer.Notifier, from, admin string) *Handler {
	return &Handler{db: d, mail: n, from: from, admin: admin}
}
