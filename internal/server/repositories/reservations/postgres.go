package reservations

import (
	"context"
	"fmt"

	"github.com/cmartinr/reservasalas/internal/dbx"
	"github.com/cmartinr/reservasalas/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {

	query :=
		`INSERT INTO reservas (fecha, hora, sala, user_id)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		reservation.Fecha, reservation.Hora, reservation.Sala, reservation.UserID).Scan(&reservation.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reservation, nil
}
