package postgres

import (
	"context"

	"petshop-backend/internal/domain/bath"
	"petshop-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Baths:    &BathRepository{db: tx},
		Pets:     &PetRepository{db: tx},
		Journeys: &JourneyRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinBathTx(ctx context.Context, bathID string, fn func(r uow.Repos, b *bath.WeeklyBath) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the bath row up-front to prevent races
		b, err := r.Baths.GetByBathIDForUpdate(ctx, bathID)
		if err != nil {
			return err
		}
		return fn(r, b)
	})
}
