package bath

import "context"

type Repository interface {
	Create(ctx context.Context, b *WeeklyBath) error
	GetByBathID(ctx context.Context, bathID string) (*WeeklyBath, error)
	// Row-locked fetch for use inside a unit-of-work transaction.
	GetByBathIDForUpdate(ctx context.Context, bathID string) (*WeeklyBath, error)
	Save(ctx context.Context, b *WeeklyBath) error
	// SaveWithRevision persists b only if the stored row still carries
	// expected; otherwise ErrRevisionConflict. b.Revision is bumped on
	// success.
	SaveWithRevision(ctx context.Context, b *WeeklyBath, expected int64) error
	Delete(ctx context.Context, b *WeeklyBath) error

	// Curation view: every record of the week regardless of approval,
	// bath_date then insertion order ascending.
	ListForWeek(ctx context.Context, weekStart string) ([]WeeklyBath, error)
	// Public view: approved records only, display_order ascending then
	// insertion order descending.
	ListApprovedForWeek(ctx context.Context, weekStart string) ([]WeeklyBath, error)
	// Distinct week_start keys across all records, newest first.
	ListWeekStarts(ctx context.Context) ([]string, error)
}
