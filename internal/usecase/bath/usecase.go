package bath

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	domain "petshop-backend/internal/domain/bath"
	"petshop-backend/internal/domain/uow"
	"petshop-backend/internal/infrastructure/storage"
	"petshop-backend/internal/usecase/integration"
	"petshop-backend/pkg/id"
	"petshop-backend/pkg/week"
)

var ErrMissingField = errors.New("missing required field")

type Usecase struct {
	repo  domain.Repository
	uow   uow.UnitOfWork
	store storage.PhotoStore

	now func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, store storage.PhotoStore) *Usecase {
	return &Usecase{repo: r, uow: tx, store: store, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, in CreateBathInput) (*BathDTO, error) {
	if strings.TrimSpace(in.PetName) == "" || in.ImageURL == "" || in.ImagePath == "" || in.BathDate == "" {
		return nil, fmt.Errorf("%w: pet_name, image_url, image_path and bath_date are required", ErrMissingField)
	}
	ws, err := week.StartOfDateString(in.BathDate)
	if err != nil {
		return nil, err
	}

	b := &domain.WeeklyBath{
		BathID:       id.NewID32(),
		PetName:      strings.TrimSpace(in.PetName),
		ImageURL:     in.ImageURL,
		ImagePath:    in.ImagePath,
		BathDate:     in.BathDate,
		WeekStart:    ws,
		Approval:     domain.ApprovalPending,
		DisplayOrder: in.DisplayOrder,
		CuratorNotes: in.CuratorNotes,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, bathID string) (*BathDTO, error) {
	b, err := u.repo.GetByBathID(ctx, bathID)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// Update applies a partial edit. week_start is recomputed whenever
// bath_date changes, inside the same write, so it can never go stale.
func (u *Usecase) Update(ctx context.Context, in UpdateBathInput) (*BathDTO, error) {
	var dto *BathDTO
	err := u.uow.WithinBathTx(ctx, in.BathID, func(r uow.Repos, b *domain.WeeklyBath) error {
		if b.Revision != in.Revision {
			return domain.ErrRevisionConflict
		}
		if in.PetName != nil {
			if strings.TrimSpace(*in.PetName) == "" {
				return fmt.Errorf("%w: pet_name", ErrMissingField)
			}
			b.PetName = strings.TrimSpace(*in.PetName)
		}
		if in.ImageURL != nil {
			b.ImageURL = *in.ImageURL
		}
		if in.ImagePath != nil {
			b.ImagePath = *in.ImagePath
		}
		if in.BathDate != nil && *in.BathDate != b.BathDate {
			ws, err := week.StartOfDateString(*in.BathDate)
			if err != nil {
				return err
			}
			b.BathDate = *in.BathDate
			b.WeekStart = ws
		}
		if in.DisplayOrder != nil {
			b.DisplayOrder = *in.DisplayOrder
		}
		if in.CuratorNotes != nil {
			b.CuratorNotes = *in.CuratorNotes
		}
		if err := r.Baths.SaveWithRevision(ctx, b, in.Revision); err != nil {
			return err
		}
		dto = toDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Approve(ctx context.Context, bathID, approvedBy string) (*BathDTO, error) {
	var dto *BathDTO
	err := u.uow.WithinBathTx(ctx, bathID, func(r uow.Repos, b *domain.WeeklyBath) error {
		if b.Approval == domain.ApprovalApproved {
			return domain.ErrAlreadyApproved
		}
		rev := b.Revision
		now := u.now().UTC()
		b.Approval = domain.ApprovalApproved
		b.ApprovedBy = &approvedBy
		b.ApprovedAt = &now
		if err := r.Baths.SaveWithRevision(ctx, b, rev); err != nil {
			return err
		}
		dto = toDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject marks the record not-for-display and, in the same
// transaction, tears down any journal linkage: a rejected bath must
// neither show nor stay linked.
func (u *Usecase) Reject(ctx context.Context, bathID string) (*BathDTO, error) {
	var dto *BathDTO
	var orphanPaths []string
	err := u.uow.WithinBathTx(ctx, bathID, func(r uow.Repos, b *domain.WeeklyBath) error {
		rev := b.Revision
		paths, err := integration.TeardownLink(ctx, r, b)
		if err != nil {
			return err
		}
		orphanPaths = paths
		b.Approval = domain.ApprovalRejected
		b.ApprovedBy = nil
		b.ApprovedAt = nil
		if err := r.Baths.SaveWithRevision(ctx, b, rev); err != nil {
			return err
		}
		dto = toDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.cleanupObjects(ctx, orphanPaths)
	return dto, nil
}

// Delete removes the record. A linked bath gets its journal entry torn
// down first, but a failing teardown never blocks the deletion: it is
// returned as a warning for the operator instead of being swallowed.
func (u *Usecase) Delete(ctx context.Context, bathID string) (string, error) {
	b, err := u.repo.GetByBathID(ctx, bathID)
	if err != nil {
		return "", err
	}

	var warning string
	var orphanPaths []string
	if b.Linked() {
		err := u.uow.WithinBathTx(ctx, bathID, func(r uow.Repos, locked *domain.WeeklyBath) error {
			rev := locked.Revision
			paths, err := integration.TeardownLink(ctx, r, locked)
			if err != nil {
				return err
			}
			orphanPaths = paths
			return r.Baths.SaveWithRevision(ctx, locked, rev)
		})
		if err != nil {
			warning = fmt.Sprintf("journal teardown failed, event may remain: %v", err)
			orphanPaths = nil
		}
	}

	if err := u.repo.Delete(ctx, b); err != nil {
		return warning, err
	}
	u.cleanupObjects(ctx, append(orphanPaths, b.ImagePath))
	return warning, nil
}

func (u *Usecase) ListForWeek(ctx context.Context, weekStart string) ([]BathDTO, error) {
	// normalize: any date inside the week selects that week
	ws, err := week.StartOfDateString(weekStart)
	if err != nil {
		return nil, err
	}
	recs, err := u.repo.ListForWeek(ctx, ws)
	if err != nil {
		return nil, err
	}
	return toDTOs(recs), nil
}

// ListApprovedForDisplayWeek serves the public carousel: approved
// records of the previous week. Read failures degrade to a fixed
// placeholder set instead of an empty page.
func (u *Usecase) ListApprovedForDisplayWeek(ctx context.Context) ([]BathDTO, error) {
	ws := week.PreviousStart(u.now()).Format(week.DateLayout)
	recs, err := u.repo.ListApprovedForWeek(ctx, ws)
	if err != nil {
		log.Printf("bath: display listing for %s failed, serving placeholders: %v", ws, err)
		return displayFallback(ws), nil
	}
	return toDTOs(recs), nil
}

// ListAvailableWeeks returns every week that has records, newest
// first, always including the current week so curation can start
// before the first submission lands.
func (u *Usecase) ListAvailableWeeks(ctx context.Context) ([]WeekDTO, error) {
	starts, err := u.repo.ListWeekStarts(ctx)
	if err != nil {
		return nil, err
	}
	current := week.Start(u.now()).Format(week.DateLayout)
	found := false
	for _, s := range starts {
		if s == current {
			found = true
			break
		}
	}
	if !found {
		starts = append(starts, current)
		sort.Sort(sort.Reverse(sort.StringSlice(starts)))
	}

	out := make([]WeekDTO, 0, len(starts))
	for _, s := range starts {
		label, err := week.FormatRange(s)
		if err != nil {
			// tolerate a malformed legacy key rather than break the picker
			label = s
		}
		out = append(out, WeekDTO{WeekStart: s, Label: label})
	}
	return out, nil
}

func (u *Usecase) cleanupObjects(ctx context.Context, paths []string) {
	if u.store == nil {
		return
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := u.store.Delete(ctx, path); err != nil {
			log.Printf("bath: photo object %s not removed: %v", path, err)
		}
	}
}

func toDTOs(recs []domain.WeeklyBath) []BathDTO {
	out := make([]BathDTO, 0, len(recs))
	for i := range recs {
		out = append(out, *toDTO(&recs[i]))
	}
	return out
}

// displayFallback is the degraded-but-present set shown when the store
// is unreachable. No ids, so nothing here is ever mutable.
func displayFallback(weekStart string) []BathDTO {
	mk := func(name, img string, order int) BathDTO {
		return BathDTO{
			PetName:      name,
			ImageURL:     img,
			WeekStart:    weekStart,
			Approval:     string(domain.ApprovalApproved),
			DisplayOrder: order,
		}
	}
	return []BathDTO{
		mk("Luna", "/static/placeholders/bath-1.jpg", 0),
		mk("Thor", "/static/placeholders/bath-2.jpg", 1),
		mk("Mel", "/static/placeholders/bath-3.jpg", 2),
	}
}
