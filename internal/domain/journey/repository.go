package journey

import "context"

type Repository interface {
	CreateEvent(ctx context.Context, e *Event) error
	AddPhoto(ctx context.Context, p *Photo) error
	GetEventByEventID(ctx context.Context, eventID string) (*Event, error)
	ListPhotos(ctx context.Context, eventNumericID uint64) ([]Photo, error)
	// DeleteEventCascade removes the event's photos, then the event.
	DeleteEventCascade(ctx context.Context, eventID string) error
}
