package reservations

import (
	"context"
	"sync"
	"time"

	"github.com/cmartinr/reservasalas/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository appends reservations to a mutex-guarded slice.
// Used by tests and DSN-less runs.
type InMemoryRepository struct {
	mu   sync.Mutex
	rows []*models.Reservation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *reservation
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.rows = append(r.rows, &stored)

	out := stored
	return &out, nil
}

// All returns a snapshot of the stored reservations, oldest first.
func (r *InMemoryRepository) All() []*models.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Reservation, 0, len(r.rows))
	for _, row := range r.rows {
		copied := *row
		out = append(out, &copied)
	}
	return out
}
