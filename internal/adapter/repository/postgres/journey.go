package postgres

import (
	"context"
	"errors"

	journeyDomain "petshop-backend/internal/domain/journey"

	"gorm.io/gorm"
)

type JourneyRepository struct{ db *gorm.DB }

func NewJourneyRepository(db *gorm.DB) *JourneyRepository { return &JourneyRepository{db: db} }

func (r *JourneyRepository) CreateEvent(ctx context.Context, e *journeyDomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *JourneyRepository) AddPhoto(ctx context.Context, p *journeyDomain.Photo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *JourneyRepository) GetEventByEventID(ctx context.Context, eventID string) (*journeyDomain.Event, error) {
	var out journeyDomain.Event
	res := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, journeyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *JourneyRepository) ListPhotos(ctx context.Context, eventNumericID uint64) ([]journeyDomain.Photo, error) {
	var out []journeyDomain.Photo
	res := r.db.WithContext(ctx).
		Where("event_id = ?", eventNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// DeleteEventCascade removes photos first so a crash mid-way can never
// leave photo rows pointing at a deleted event.
func (r *JourneyRepository) DeleteEventCascade(ctx context.Context, eventID string) error {
	e, err := r.GetEventByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", e.ID).
		Delete(&journeyDomain.Photo{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(e).Error
}
