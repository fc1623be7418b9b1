package bath

import (
	"time"

	domain "petshop-backend/internal/domain/bath"
)

type CreateBathInput struct {
	PetName      string `json:"pet_name"`
	ImageURL     string `json:"image_url"`
	ImagePath    string `json:"image_path"`
	BathDate     string `json:"bath_date"`
	DisplayOrder int    `json:"display_order"`
	CuratorNotes string `json:"curator_notes"`
}

// UpdateBathInput is a partial update; nil fields are left untouched.
// Revision must be the value the operator read, or the update is
// refused with ErrRevisionConflict.
type UpdateBathInput struct {
	BathID   string
	Revision int64

	PetName      *string `json:"pet_name"`
	ImageURL     *string `json:"image_url"`
	ImagePath    *string `json:"image_path"`
	BathDate     *string `json:"bath_date"`
	DisplayOrder *int    `json:"display_order"`
	CuratorNotes *string `json:"curator_notes"`
}

type BathDTO struct {
	BathID         string     `json:"bath_id"`
	PetName        string     `json:"pet_name"`
	PetID          *string    `json:"pet_id,omitempty"`
	ImageURL       string     `json:"image_url"`
	ImagePath      string     `json:"image_path"`
	BathDate       string     `json:"bath_date"`
	WeekStart      string     `json:"week_start"`
	Approval       string     `json:"approval"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	DisplayOrder   int        `json:"display_order"`
	CuratorNotes   string     `json:"curator_notes,omitempty"`
	AddToJourney   bool       `json:"add_to_journey"`
	JourneyEventID *string    `json:"journey_event_id,omitempty"`
	Revision       int64      `json:"revision"`
	CreatedAt      time.Time  `json:"created_at"`
}

type WeekDTO struct {
	WeekStart string `json:"week_start"`
	Label     string `json:"label"`
}

func toDTO(b *domain.WeeklyBath) *BathDTO {
	return &BathDTO{
		BathID:         b.BathID,
		PetName:        b.PetName,
		PetID:          b.PetID,
		ImageURL:       b.ImageURL,
		ImagePath:      b.ImagePath,
		BathDate:       b.BathDate,
		WeekStart:      b.WeekStart,
		Approval:       string(b.Approval),
		ApprovedBy:     b.ApprovedBy,
		ApprovedAt:     b.ApprovedAt,
		DisplayOrder:   b.DisplayOrder,
		CuratorNotes:   b.CuratorNotes,
		AddToJourney:   b.AddToJourney,
		JourneyEventID: b.JourneyEventID,
		Revision:       b.Revision,
		CreatedAt:      b.CreatedAt,
	}
}
