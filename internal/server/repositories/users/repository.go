// Package users persists registered accounts. The only operations the
// service layer needs are insert and lookup-by-email.
package users

import (
	"context"

	"github.com/cmartinr/reservasalas/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the store-assigned id.
	// A duplicate email yields common.ErrorUserExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
