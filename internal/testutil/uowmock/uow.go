package uowmock

import (
	"context"
	"errors"

	"petshop-backend/internal/domain/bath"
	"petshop-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinBathTxFn func(ctx context.Context, bathID string, fn func(r uow.Repos, b *bath.WeeklyBath) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires the mock to run callbacks directly against the
// given repos, with baths resolved through GetByBathIDForUpdate. Most
// usecase tests want exactly that.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinBathTxFn: func(ctx context.Context, bathID string, fn func(uow.Repos, *bath.WeeklyBath) error) error {
			b, err := r.Baths.GetByBathIDForUpdate(ctx, bathID)
			if err != nil {
				return err
			}
			return fn(r, b)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinBathTx(ctx context.Context, bathID string, fn func(r uow.Repos, b *bath.WeeklyBath) error) error {
	if m.WithinBathTxFn != nil {
		return m.WithinBathTxFn(ctx, bathID, fn)
	}
	return errUnimplemented
}
