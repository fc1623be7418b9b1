package journey

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("journey event not found")

// Event is one entry in a pet's growth journal. Bath curation creates
// these when an operator links an approved bath to a registered pet.
type Event struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EventID string `gorm:"column:event_id;type:char(32);not null;uniqueIndex:ux_journey_events_event_id_active"`
	PetID   string `gorm:"column:pet_id;type:char(32);not null;index"`

	Title       string `gorm:"column:title;size:160;not null"`
	Description string `gorm:"column:description;type:text;not null"`
	// Date-only YYYY-MM-DD, copied from the bath's date on linkage.
	EventDate string `gorm:"column:event_date;type:char(10);not null"`
	Location  string `gorm:"column:location;size:160"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Event) TableName() string { return "journey_events" }

// Photo is an attachment on an Event; photos share the event's
// lifecycle and are removed with it.
type Photo struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EventID uint64 `gorm:"column:event_id;not null;index"`

	PhotoURL  string `gorm:"column:photo_url;type:text;not null"`
	PhotoPath string `gorm:"column:photo_path;type:text;not null"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Photo) TableName() string { return "journey_photos" }
