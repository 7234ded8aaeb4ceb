package registrations

import "github.com/hillcrest/homestay-api/internal/db"

// Package registrations provides the event registration HTTP handler.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP method is implemented in a dedicated file:
// - create.go: Handler.Create

// Handler wires the registration endpoint to the data store.
type Handler struct{ db *db.DB }

// NewHandler returns a new registrations handler.
func NewHandler(d *db.DB) *Handler { return &Handler{db: d} }
