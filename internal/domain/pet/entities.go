package pet

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("pet not found")
	ErrInactive = errors.New("pet is inactive")
)

type Pet struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	PetID   string `gorm:"column:pet_id;type:char(32);not null;uniqueIndex:ux_pets_pet_id_active"`
	Name    string `gorm:"column:name;size:120;not null"`
	Species string `gorm:"column:species;size:60"`
	Breed   string `gorm:"column:breed;size:120"`
	// Inactive pets stay queryable but cannot receive new journal links.
	Active bool `gorm:"column:active;not null;default:true"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Pet) TableName() string { return "pets" }
