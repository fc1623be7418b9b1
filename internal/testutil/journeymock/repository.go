package journeymock

import (
	"context"
	"errors"

	domain "petshop-backend/internal/domain/journey"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("journeymock: method not implemented")

type Repo struct {
	CreateEventFn        func(ctx context.Context, e *domain.Event) error
	AddPhotoFn           func(ctx context.Context, p *domain.Photo) error
	GetEventByEventIDFn  func(ctx context.Context, eventID string) (*domain.Event, error)
	ListPhotosFn         func(ctx context.Context, eventNumericID uint64) ([]domain.Photo, error)
	DeleteEventCascadeFn func(ctx context.Context, eventID string) error
}

func (m *Repo) CreateEvent(ctx context.Context, e *domain.Event) error {
	if m.CreateEventFn != nil {
		return m.CreateEventFn(ctx, e)
	}
	return nil
}

func (m *Repo) AddPhoto(ctx context.Context, p *domain.Photo) error {
	if m.AddPhotoFn != nil {
		return m.AddPhotoFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetEventByEventID(ctx context.Context, eventID string) (*domain.Event, error) {
	if m.GetEventByEventIDFn != nil {
		return m.GetEventByEventIDFn(ctx, eventID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPhotos(ctx context.Context, eventNumericID uint64) ([]domain.Photo, error) {
	if m.ListPhotosFn != nil {
		return m.ListPhotosFn(ctx, eventNumericID)
	}
	return nil, nil
}

func (m *Repo) DeleteEventCascade(ctx context.Context, eventID string) error {
	if m.DeleteEventCascadeFn != nil {
		return m.DeleteEventCascadeFn(ctx, eventID)
	}
	return nil
}
