package postgres

import (
	"context"
	"errors"

	petDomain "petshop-backend/internal/domain/pet"

	"gorm.io/gorm"
)

type PetRepository struct{ db *gorm.DB }

func NewPetRepository(db *gorm.DB) *PetRepository { return &PetRepository{db: db} }

func (r *PetRepository) GetByPetID(ctx context.Context, petID string) (*petDomain.Pet, error) {
	var out petDomain.Pet
	res := r.db.WithContext(ctx).Where("pet_id = ?", petID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, petDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PetRepository) ListActive(ctx context.Context) ([]petDomain.Pet, error) {
	var out []petDomain.Pet
	res := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}
