package bathmock

import (
	"context"
	"errors"

	domain "petshop-backend/internal/domain/bath"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("bathmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, b *domain.WeeklyBath) error
	GetByBathIDFn          func(ctx context.Context, bathID string) (*domain.WeeklyBath, error)
	GetByBathIDForUpdateFn func(ctx context.Context, bathID string) (*domain.WeeklyBath, error)
	SaveFn                 func(ctx context.Context, b *domain.WeeklyBath) error
	SaveWithRevisionFn     func(ctx context.Context, b *domain.WeeklyBath, expected int64) error
	DeleteFn               func(ctx context.Context, b *domain.WeeklyBath) error
	ListForWeekFn          func(ctx context.Context, weekStart string) ([]domain.WeeklyBath, error)
	ListApprovedForWeekFn  func(ctx context.Context, weekStart string) ([]domain.WeeklyBath, error)
	ListWeekStartsFn       func(ctx context.Context) ([]string, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.WeeklyBath) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBathID(ctx context.Context, bathID string) (*domain.WeeklyBath, error) {
	if m.GetByBathIDFn != nil {
		return m.GetByBathIDFn(ctx, bathID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByBathIDForUpdate(ctx context.Context, bathID string) (*domain.WeeklyBath, error) {
	if m.GetByBathIDForUpdateFn != nil {
		return m.GetByBathIDForUpdateFn(ctx, bathID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, b *domain.WeeklyBath) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) SaveWithRevision(ctx context.Context, b *domain.WeeklyBath, expected int64) error {
	if m.SaveWithRevisionFn != nil {
		return m.SaveWithRevisionFn(ctx, b, expected)
	}
	b.Revision = expected + 1
	return nil
}

func (m *Repo) Delete(ctx context.Context, b *domain.WeeklyBath) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, b)
	}
	return nil
}

func (m *Repo) ListForWeek(ctx context.Context, weekStart string) ([]domain.WeeklyBath, error) {
	if m.ListForWeekFn != nil {
		return m.ListForWeekFn(ctx, weekStart)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListApprovedForWeek(ctx context.Context, weekStart string) ([]domain.WeeklyBath, error) {
	if m.ListApprovedForWeekFn != nil {
		return m.ListApprovedForWeekFn(ctx, weekStart)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListWeekStarts(ctx context.Context) ([]string, error) {
	if m.ListWeekStartsFn != nil {
		return m.ListWeekStartsFn(ctx)
	}
	return nil, errUnimplemented
}
