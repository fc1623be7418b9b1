package bath

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("weekly bath not found")
	ErrAlreadyApproved   = errors.New("weekly bath already approved")
	ErrAlreadyLinked     = errors.New("weekly bath already linked to a journey event")
	ErrRevisionConflict  = errors.New("weekly bath was modified by someone else")
	ErrInvalidTransition = errors.New("invalid approval transition")
)

// ApprovalState replaces the source data model's nullable boolean:
// a record is pending until an operator approves or rejects it.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// WeeklyBath is one photographed grooming event submitted for a week's
// public display.
type WeeklyBath struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	BathID string `gorm:"column:bath_id;type:char(32);not null;uniqueIndex:ux_weekly_baths_bath_id_active"`

	// Free-text name as submitted; a record need not reference a
	// registered pet until an operator links it.
	PetName string  `gorm:"column:pet_name;size:120;not null"`
	PetID   *string `gorm:"column:pet_id;type:char(32);index"`

	ImageURL  string `gorm:"column:image_url;type:text;not null"`
	ImagePath string `gorm:"column:image_path;type:text;not null"`

	// BathDate is the calendar day of the grooming, date-only YYYY-MM-DD.
	// WeekStart is derived: always the Monday of BathDate's ISO week,
	// recomputed whenever BathDate changes, never edited independently.
	BathDate  string `gorm:"column:bath_date;type:char(10);not null;index"`
	WeekStart string `gorm:"column:week_start;type:char(10);not null;index:idx_weekly_baths_week"`

	Approval   ApprovalState `gorm:"column:approval;size:16;not null;default:'pending'"`
	ApprovedBy *string       `gorm:"column:approved_by;type:char(32)"`
	ApprovedAt *time.Time    `gorm:"column:approved_at"`

	DisplayOrder int    `gorm:"column:display_order;not null;default:0"`
	CuratorNotes string `gorm:"column:curator_notes;type:text"`

	// AddToJourney records operator intent; JourneyEventID presence is
	// the source of truth for an existing link.
	AddToJourney   bool    `gorm:"column:add_to_journey;not null;default:false"`
	JourneyEventID *string `gorm:"column:journey_event_id;type:char(32)"`

	// Revision guards against two operators silently overwriting each
	// other; every update must carry the revision it read.
	Revision int64 `gorm:"column:revision;not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (WeeklyBath) TableName() string { return "weekly_baths" }

// Linked reports whether a journey event currently exists for this
// bath. AddToJourney alone never proves linkage.
func (b *WeeklyBath) Linked() bool {
	return b.JourneyEventID != nil && *b.JourneyEventID != ""
}
