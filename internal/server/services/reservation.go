package services

import (
	"context"

	"github.com/cmartinr/reservasalas/internal/server/models"
	"github.com/cmartinr/reservasalas/internal/server/repositories/reservations"
)

// ReservationService records room bookings on behalf of an authenticated
// user. No conflict detection: once the caller is authorized the write is
// unconditional.
type ReservationService struct {
	repo reservations.Repository
}

func NewReservationService(repo reservations.Repository) *ReservationService {
	return &ReservationService{repo: repo}
}

// Create stamps the reservation with the owning user id and persists it.
func (s *ReservationService) Create(ctx context.Context, userID string, fecha, hora, sala string) (*models.Reservation, error) {
	reservation := &models.Reservation{
		Fecha:  fecha,
		Hora:   hora,
		Sala:   sala,
		UserID: userID,
	}
	return s.repo.Create(ctx, reservation)
}
