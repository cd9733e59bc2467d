package models

import "time"

// Reservation is a room booking owned by the authenticated user that
// created it. Fecha, Hora and Sala are kept as free-form strings; the API
// performs no scheduling or overlap checks.
type Reservation struct {
	ID        string
	Fecha     string
	Hora      string
	Sala      string
	UserID    string
	CreatedAt time.Time
}
