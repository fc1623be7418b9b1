package integration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petshop-backend/internal/domain/bath"
	"petshop-backend/internal/domain/journey"
	"petshop-backend/internal/domain/uow"
)

const (
	defaultDescription = "Bath day at the pet shop!"
	defaultLocation    = "Pet Shop"
)

// deriveEntry is the single derivation of a journal entry from a bath
// record. Both GeneratePreview and the creation path go through it.
func deriveEntry(b *bath.WeeklyBath, petName string) Preview {
	name := strings.TrimSpace(petName)
	if name == "" {
		name = b.PetName
	}
	desc := strings.TrimSpace(b.CuratorNotes)
	if desc == "" {
		desc = defaultDescription
	}
	return Preview{
		Title:       fmt.Sprintf("Bath day for %s", name),
		Description: desc,
		Date:        b.BathDate,
		PhotoURL:    b.ImageURL,
		Location:    defaultLocation,
	}
}

// TeardownLink removes the journey event linked to b (photos first,
// then the event) and clears the link fields on b. It does not save b;
// the caller persists within the same transaction. The returned paths
// are the removed photos' storage objects, for best-effort cleanup
// after commit. No-op when b is not linked.
func TeardownLink(ctx context.Context, r uow.Repos, b *bath.WeeklyBath) ([]string, error) {
	if !b.Linked() {
		b.AddToJourney = false
		return nil, nil
	}

	eventID := *b.JourneyEventID
	var paths []string

	e, err := r.Journeys.GetEventByEventID(ctx, eventID)
	switch {
	case errors.Is(err, journey.ErrNotFound):
		// dangling reference: nothing to delete, just clear it
	case err != nil:
		return nil, err
	default:
		photos, err := r.Journeys.ListPhotos(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range photos {
			paths = append(paths, p.PhotoPath)
		}
		if err := r.Journeys.DeleteEventCascade(ctx, eventID); err != nil {
			return nil, err
		}
	}

	b.JourneyEventID = nil
	b.AddToJourney = false
	return paths, nil
}
