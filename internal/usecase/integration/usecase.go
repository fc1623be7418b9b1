package integration

import (
	"context"
	"fmt"
	"log"
	"time"

	domainBath "petshop-backend/internal/domain/bath"
	domainJourney "petshop-backend/internal/domain/journey"
	domainPet "petshop-backend/internal/domain/pet"
	"petshop-backend/internal/domain/uow"
	"petshop-backend/internal/infrastructure/storage"
	"petshop-backend/pkg/id"
)

type Usecase struct {
	baths    domainBath.Repository
	pets     domainPet.Repository
	journeys domainJourney.Repository
	uow      uow.UnitOfWork
	store    storage.PhotoStore

	now func() time.Time
}

func NewUsecase(baths domainBath.Repository, pets domainPet.Repository, journeys domainJourney.Repository, tx uow.UnitOfWork, store storage.PhotoStore) *Usecase {
	return &Usecase{
		baths:    baths,
		pets:     pets,
		journeys: journeys,
		uow:      tx,
		store:    store,
		now:      time.Now,
	}
}

// ValidatePet resolves petID to a registered, active pet.
func (u *Usecase) ValidatePet(ctx context.Context, petID string) (*domainPet.Pet, error) {
	p, err := u.pets.GetByPetID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domainPet.ErrInactive
	}
	return p, nil
}

// ApproveWithIntegration approves the bath and links it to the pet's
// growth journal. Approval commits first and is never rolled back by a
// failed journal write: the link failure comes back as LinkWarning for
// the operator to retry separately.
func (u *Usecase) ApproveWithIntegration(ctx context.Context, in LinkInput) (*LinkResult, error) {
	p, err := u.ValidatePet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}

	var approved *domainBath.WeeklyBath
	err = u.uow.WithinBathTx(ctx, in.BathID, func(r uow.Repos, b *domainBath.WeeklyBath) error {
		if b.Linked() {
			return domainBath.ErrAlreadyLinked
		}
		rev := b.Revision
		b.PetID = &in.PetID
		b.AddToJourney = true
		if b.Approval != domainBath.ApprovalApproved {
			now := u.now().UTC()
			b.Approval = domainBath.ApprovalApproved
			b.ApprovedBy = &in.ApprovedBy
			b.ApprovedAt = &now
		}
		if err := r.Baths.SaveWithRevision(ctx, b, rev); err != nil {
			return err
		}
		approved = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &LinkResult{
		BathID:     approved.BathID,
		Approval:   string(approved.Approval),
		ApprovedBy: approved.ApprovedBy,
		ApprovedAt: approved.ApprovedAt,
		PetID:      approved.PetID,
	}

	eventID, err := u.createLink(ctx, approved, p)
	if err != nil {
		log.Printf("integration: bath %s approved but journal link failed: %v", in.BathID, err)
		res.LinkWarning = fmt.Sprintf("approved, but journal link failed: %v", err)
		return res, nil
	}
	res.JourneyEventID = &eventID
	return res, nil
}

// createLink copies the bath photo, then creates the journal event,
// its photo row and the back-reference in one transaction.
func (u *Usecase) createLink(ctx context.Context, b *domainBath.WeeklyBath, p *domainPet.Pet) (string, error) {
	dstPath := "journeys/" + id.NewID32() + ".jpg"
	photoURL, err := u.store.Copy(ctx, b.ImagePath, dstPath)
	if err != nil {
		return "", err
	}

	eventID := id.NewID32()
	err = u.uow.WithinBathTx(ctx, b.BathID, func(r uow.Repos, locked *domainBath.WeeklyBath) error {
		if locked.Linked() {
			return domainBath.ErrAlreadyLinked
		}
		entry := deriveEntry(locked, p.Name)
		e := &domainJourney.Event{
			EventID:     eventID,
			PetID:       p.PetID,
			Title:       entry.Title,
			Description: entry.Description,
			EventDate:   entry.Date,
			Location:    entry.Location,
		}
		if err := r.Journeys.CreateEvent(ctx, e); err != nil {
			return err
		}
		if err := r.Journeys.AddPhoto(ctx, &domainJourney.Photo{
			EventID:   e.ID,
			PhotoURL:  photoURL,
			PhotoPath: dstPath,
		}); err != nil {
			return err
		}
		locked.JourneyEventID = &eventID
		return r.Baths.SaveWithRevision(ctx, locked, locked.Revision)
	})
	if err != nil {
		// don't leave the copied object behind
		if derr := u.store.Delete(ctx, dstPath); derr != nil {
			log.Printf("integration: orphan photo %s not removed: %v", dstPath, derr)
		}
		return "", err
	}
	return eventID, nil
}

// GeneratePreview shows what the journal entry would look like, with
// exactly the creation path's derivation. Read-only.
func (u *Usecase) GeneratePreview(ctx context.Context, bathID string) (*Preview, error) {
	b, err := u.baths.GetByBathID(ctx, bathID)
	if err != nil {
		return nil, err
	}
	name := ""
	if b.PetID != nil {
		if p, err := u.pets.GetByPetID(ctx, *b.PetID); err == nil {
			name = p.Name
		}
	}
	entry := deriveEntry(b, name)
	return &entry, nil
}

// RemoveIntegration deletes the linked journal event with its photos
// and clears the link fields, all in one transaction. Calling it on an
// unlinked bath is a successful no-op.
func (u *Usecase) RemoveIntegration(ctx context.Context, bathID string) error {
	var orphanPaths []string
	err := u.uow.WithinBathTx(ctx, bathID, func(r uow.Repos, b *domainBath.WeeklyBath) error {
		if !b.Linked() && !b.AddToJourney {
			return nil
		}
		paths, err := TeardownLink(ctx, r, b)
		if err != nil {
			return err
		}
		orphanPaths = paths
		return r.Baths.SaveWithRevision(ctx, b, b.Revision)
	})
	if err != nil {
		return err
	}
	u.cleanupObjects(ctx, orphanPaths)
	return nil
}

// IsIntegrated is the single linkage predicate: the journey event
// reference is authoritative, never the add_to_journey intent flag.
func (u *Usecase) IsIntegrated(ctx context.Context, bathID string) (bool, error) {
	b, err := u.baths.GetByBathID(ctx, bathID)
	if err != nil {
		return false, err
	}
	return b.Linked(), nil
}

// ListAvailablePets feeds the curation UI's pet picker.
func (u *Usecase) ListAvailablePets(ctx context.Context) ([]PetDTO, error) {
	pets, err := u.pets.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PetDTO, 0, len(pets))
	for _, p := range pets {
		out = append(out, PetDTO{PetID: p.PetID, Name: p.Name, Species: p.Species, Breed: p.Breed})
	}
	return out, nil
}

func (u *Usecase) cleanupObjects(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := u.store.Delete(ctx, path); err != nil {
			log.Printf("integration: photo object %s not removed: %v", path, err)
		}
	}
}
