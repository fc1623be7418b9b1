package uow

import (
	"context"

	"petshop-backend/internal/domain/bath"
	"petshop-backend/internal/domain/journey"
	"petshop-backend/internal/domain/pet"
)

type Repos struct {
	Baths    bath.Repository
	Pets     pet.Repository
	Journeys journey.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the bath row first, then pass it in
	WithinBathTx(ctx context.Context, bathID string, fn func(r Repos, b *bath.WeeklyBath) error) error
}
