package integration

import "time"

type LinkInput struct {
	BathID     string
	PetID      string
	ApprovedBy string
}

// LinkResult reports the outcome of approve-with-integration. Approval
// and linkage succeed or fail independently: when the journal write
// fails after approval committed, LinkWarning is set and JourneyEventID
// stays empty, but the bath remains approved.
type LinkResult struct {
	BathID         string     `json:"bath_id"`
	Approval       string     `json:"approval"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	PetID          *string    `json:"pet_id,omitempty"`
	JourneyEventID *string    `json:"journey_event_id,omitempty"`
	LinkWarning    string     `json:"warning,omitempty"`
}

// Preview is what the journal entry would look like; it shares its
// derivation with the real creation path so it can never mislead.
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	PhotoURL    string `json:"photo"`
	Location    string `json:"location"`
}

type PetDTO struct {
	PetID   string `json:"pet_id"`
	Name    string `json:"name"`
	Species string `json:"species,omitempty"`
	Breed   string `json:"breed,omitempty"`
}
