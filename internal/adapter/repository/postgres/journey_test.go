package postgres

import (
	"context"
	"errors"
	"testing"

	domain "petshop-backend/internal/domain/journey"
	"petshop-backend/pkg/id"
)

func TestJourneyRepo_EventAndPhotos(t *testing.T) {
	db := openTestDB(t)
	repo := NewJourneyRepository(db)
	ctx := context.Background()

	e := &domain.Event{
		EventID:     id.NewID32(),
		PetID:       id.NewID32(),
		Title:       "Bath day for Luna",
		Description: "Ficou linda!",
		EventDate:   "2024-01-17",
		Location:    "Pet Shop",
	}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	for i := 0; i < 2; i++ {
		p := &domain.Photo{EventID: e.ID, PhotoURL: "https://cdn.test/j.jpg", PhotoPath: "journeys/j.jpg"}
		if err := repo.AddPhoto(ctx, p); err != nil {
			t.Fatalf("AddPhoto: %v", err)
		}
	}

	got, err := repo.GetEventByEventID(ctx, e.EventID)
	if err != nil {
		t.Fatalf("GetEventByEventID: %v", err)
	}
	if got.Description != "Ficou linda!" {
		t.Fatalf("unexpected event: %+v", got)
	}

	photos, err := repo.ListPhotos(ctx, e.ID)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("photos = %d, want 2", len(photos))
	}
}

func TestJourneyRepo_DeleteEventCascade(t *testing.T) {
	db := openTestDB(t)
	repo := NewJourneyRepository(db)
	ctx := context.Background()

	e := &domain.Event{EventID: id.NewID32(), PetID: id.NewID32(), Title: "t", Description: "d", EventDate: "2024-01-17"}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if err := repo.AddPhoto(ctx, &domain.Photo{EventID: e.ID, PhotoURL: "u", PhotoPath: "p"}); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}

	if err := repo.DeleteEventCascade(ctx, e.EventID); err != nil {
		t.Fatalf("DeleteEventCascade: %v", err)
	}

	if _, err := repo.GetEventByEventID(ctx, e.EventID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("event still retrievable: err = %v", err)
	}
	photos, err := repo.ListPhotos(ctx, e.ID)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("photos remain after cascade: %d", len(photos))
	}

	// second delete reports not found
	if err := repo.DeleteEventCascade(ctx, e.EventID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second cascade: err = %v, want ErrNotFound", err)
	}
}
