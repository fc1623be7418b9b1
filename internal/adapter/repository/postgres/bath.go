package postgres

import (
	"context"
	"errors"

	bathDomain "petshop-backend/internal/domain/bath"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BathRepository struct{ db *gorm.DB }

func NewBathRepository(db *gorm.DB) *BathRepository { return &BathRepository{db: db} }

func (r *BathRepository) Create(ctx context.Context, b *bathDomain.WeeklyBath) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BathRepository) Save(ctx context.Context, b *bathDomain.WeeklyBath) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// SaveWithRevision is a guarded update: it only writes if the stored
// row still carries the revision the caller read. Zero rows affected
// means another operator got there first.
func (r *BathRepository) SaveWithRevision(ctx context.Context, b *bathDomain.WeeklyBath, expected int64) error {
	b.Revision = expected + 1
	res := r.db.WithContext(ctx).
		Model(b).
		Where("revision = ?", expected).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(b)
	if res.Error != nil {
		b.Revision = expected
		return res.Error
	}
	if res.RowsAffected == 0 {
		b.Revision = expected
		return bathDomain.ErrRevisionConflict
	}
	return nil
}

func (r *BathRepository) Delete(ctx context.Context, b *bathDomain.WeeklyBath) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

func (r *BathRepository) GetByBathID(ctx context.Context, bathID string) (*bathDomain.WeeklyBath, error) {
	var out bathDomain.WeeklyBath
	res := r.db.WithContext(ctx).Where("bath_id = ?", bathID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, bathDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BathRepository) GetByBathIDForUpdate(ctx context.Context, bathID string) (*bathDomain.WeeklyBath, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out bathDomain.WeeklyBath
	res := q.Where("bath_id = ?", bathID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, bathDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BathRepository) ListForWeek(ctx context.Context, weekStart string) ([]bathDomain.WeeklyBath, error) {
	var out []bathDomain.WeeklyBath
	res := r.db.WithContext(ctx).
		Where("week_start = ?", weekStart).
		Order("bath_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *BathRepository) ListApprovedForWeek(ctx context.Context, weekStart string) ([]bathDomain.WeeklyBath, error) {
	var out []bathDomain.WeeklyBath
	res := r.db.WithContext(ctx).
		Where("week_start = ? AND approval = ?", weekStart, bathDomain.ApprovalApproved).
		Order("display_order ASC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *BathRepository) ListWeekStarts(ctx context.Context) ([]string, error) {
	var out []string
	res := r.db.WithContext(ctx).
		Model(&bathDomain.WeeklyBath{}).
		Distinct("week_start").
		Order("week_start DESC").
		Pluck("week_start", &out)
	return out, res.Error
}
