package petmock

import (
	"context"
	"errors"

	domain "petshop-backend/internal/domain/pet"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("petmock: method not implemented")

type Repo struct {
	GetByPetIDFn func(ctx context.Context, petID string) (*domain.Pet, error)
	ListActiveFn func(ctx context.Context) ([]domain.Pet, error)
}

func (m *Repo) GetByPetID(ctx context.Context, petID string) (*domain.Pet, error) {
	if m.GetByPetIDFn != nil {
		return m.GetByPetIDFn(ctx, petID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Pet, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, errUnimplemented
}
