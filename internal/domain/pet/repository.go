package pet

import "context"

type Repository interface {
	GetByPetID(ctx context.Context, petID string) (*Pet, error)
	// Active pets for the curation picker, name ascending.
	ListActive(ctx context.Context) ([]Pet, error)
}
