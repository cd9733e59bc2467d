// Package reservations persists room bookings. Creation is an
// unconditional write once the caller is authorized; there is no
// scheduling logic here.
package reservations

import (
	"context"

	"github.com/cmartinr/reservasalas/internal/server/models"
)

type Repository interface {
	// Create inserts a reservation and returns it with the
	// store-assigned id.
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
}
