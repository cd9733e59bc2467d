package users

import (
	"context"
	"errors"
	"testing"

	"github.com/cmartinr/reservasalas/internal/common"
	"github.com/cmartinr/reservasalas/internal/server/models"
)

func TestInMemory_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Email: "a@b.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-assigned id")
	}

	got, err := repo.GetByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != created.ID || got.PasswordHash != "h" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestInMemory_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.User{Email: "a@b.com", PasswordHash: "h1"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	_, err := repo.Create(ctx, &models.User{Email: "a@b.com", PasswordHash: "h2"})
	if !errors.Is(err, common.ErrorUserExists) {
		t.Fatalf("want common.ErrorUserExists, got %v", err)
	}
}

func TestInMemory_GetMissing(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetByEmail(context.Background(), "ghost@b.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
