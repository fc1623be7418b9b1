package integration

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	bathDomain "petshop-backend/internal/domain/bath"
	journeyDomain "petshop-backend/internal/domain/journey"
	petDomain "petshop-backend/internal/domain/pet"
	"petshop-backend/internal/domain/uow"
	"petshop-backend/internal/testutil/bathmock"
	"petshop-backend/internal/testutil/journeymock"
	"petshop-backend/internal/testutil/petmock"
	"petshop-backend/internal/testutil/storemock"
	"petshop-backend/internal/testutil/uowmock"
)

type fixture struct {
	uc       *Usecase
	rec      *bathDomain.WeeklyBath
	baths    *bathmock.Repo
	pets     *petmock.Repo
	journeys *journeymock.Repo
	store    *storemock.Store
	events   map[string]*journeyDomain.Event
	photos   []journeyDomain.Photo
}

func newFixture(rec *bathDomain.WeeklyBath, activePet *petDomain.Pet) *fixture {
	f := &fixture{rec: rec, events: make(map[string]*journeyDomain.Event)}

	f.baths = &bathmock.Repo{
		GetByBathIDFn: func(ctx context.Context, bathID string) (*bathDomain.WeeklyBath, error) {
			if rec != nil && rec.BathID == bathID {
				return rec, nil
			}
			return nil, bathDomain.ErrNotFound
		},
	}
	f.baths.GetByBathIDForUpdateFn = f.baths.GetByBathIDFn

	f.pets = &petmock.Repo{
		GetByPetIDFn: func(ctx context.Context, petID string) (*petDomain.Pet, error) {
			if activePet != nil && activePet.PetID == petID {
				return activePet, nil
			}
			return nil, petDomain.ErrNotFound
		},
	}

	var nextID uint64
	f.journeys = &journeymock.Repo{
		CreateEventFn: func(ctx context.Context, e *journeyDomain.Event) error {
			nextID++
			e.ID = nextID
			f.events[e.EventID] = e
			return nil
		},
		AddPhotoFn: func(ctx context.Context, p *journeyDomain.Photo) error {
			f.photos = append(f.photos, *p)
			return nil
		},
		GetEventByEventIDFn: func(ctx context.Context, eventID string) (*journeyDomain.Event, error) {
			if e, ok := f.events[eventID]; ok {
				return e, nil
			}
			return nil, journeyDomain.ErrNotFound
		},
		ListPhotosFn: func(ctx context.Context, eid uint64) ([]journeyDomain.Photo, error) {
			var out []journeyDomain.Photo
			for _, p := range f.photos {
				if p.EventID == eid {
					out = append(out, p)
				}
			}
			return out, nil
		},
		DeleteEventCascadeFn: func(ctx context.Context, eventID string) error {
			e, ok := f.events[eventID]
			if !ok {
				return journeyDomain.ErrNotFound
			}
			var kept []journeyDomain.Photo
			for _, p := range f.photos {
				if p.EventID != e.ID {
					kept = append(kept, p)
				}
			}
			f.photos = kept
			delete(f.events, eventID)
			return nil
		},
	}

	f.store = storemock.New()
	tx := uowmock.Passthrough(uow.Repos{Baths: f.baths, Pets: f.pets, Journeys: f.journeys})
	f.uc = NewUsecase(f.baths, f.pets, f.journeys, tx, f.store)
	f.uc.now = func() time.Time { return time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC) }
	return f
}

func pendingBath() *bathDomain.WeeklyBath {
	return &bathDomain.WeeklyBath{
		BathID:       strings.Repeat("b", 32),
		PetName:      "Luna (submitted)",
		ImageURL:     "https://cdn.test/weekly-baths/a.jpg",
		ImagePath:    "weekly-baths/a.jpg",
		BathDate:     "2024-01-17",
		WeekStart:    "2024-01-15",
		Approval:     bathDomain.ApprovalPending,
		CuratorNotes: "Ficou linda!",
	}
}

func activePet() *petDomain.Pet {
	return &petDomain.Pet{PetID: strings.Repeat("p", 32), Name: "Luna", Species: "dog", Active: true}
}

func TestValidatePet(t *testing.T) {
	p := activePet()
	f := newFixture(pendingBath(), p)

	if _, err := f.uc.ValidatePet(context.Background(), p.PetID); err != nil {
		t.Fatalf("ValidatePet(active): %v", err)
	}
	if _, err := f.uc.ValidatePet(context.Background(), strings.Repeat("0", 32)); !errors.Is(err, petDomain.ErrNotFound) {
		t.Fatalf("unknown pet: err = %v, want ErrNotFound", err)
	}

	p.Active = false
	if _, err := f.uc.ValidatePet(context.Background(), p.PetID); !errors.Is(err, petDomain.ErrInactive) {
		t.Fatalf("inactive pet: err = %v, want ErrInactive", err)
	}
}

func TestApproveWithIntegration_HappyPath(t *testing.T) {
	rec := pendingBath()
	p := activePet()
	f := newFixture(rec, p)
	_, _ = f.store.Put(context.Background(), rec.ImagePath, []byte("img"), "image/jpeg")

	res, err := f.uc.ApproveWithIntegration(context.Background(), LinkInput{
		BathID:     rec.BathID,
		PetID:      p.PetID,
		ApprovedBy: "op1",
	})
	if err != nil {
		t.Fatalf("ApproveWithIntegration: %v", err)
	}
	if res.Approval != string(bathDomain.ApprovalApproved) {
		t.Fatalf("approval = %s", res.Approval)
	}
	if res.LinkWarning != "" {
		t.Fatalf("unexpected warning: %s", res.LinkWarning)
	}
	if res.JourneyEventID == nil {
		t.Fatal("journey_event_id not returned")
	}
	if rec.JourneyEventID == nil || *rec.JourneyEventID != *res.JourneyEventID {
		t.Fatalf("back-reference missing: %+v", rec)
	}

	e := f.events[*res.JourneyEventID]
	if e == nil {
		t.Fatal("event not created")
	}
	if e.Description != "Ficou linda!" {
		t.Fatalf("description = %q, want curator notes", e.Description)
	}
	if e.EventDate != rec.BathDate {
		t.Fatalf("event date = %s, want %s", e.EventDate, rec.BathDate)
	}
	if e.PetID != p.PetID {
		t.Fatalf("event pet = %s, want %s", e.PetID, p.PetID)
	}
	if len(f.photos) != 1 || f.photos[0].EventID != e.ID {
		t.Fatalf("photo not attached: %+v", f.photos)
	}
	if !f.store.Has(f.photos[0].PhotoPath) {
		t.Fatal("photo object not copied")
	}
	if f.photos[0].PhotoPath == rec.ImagePath {
		t.Fatal("journal photo must be a copy, not the bath's own object")
	}
}

func TestApproveWithIntegration_PreviewNeverDiverges(t *testing.T) {
	rec := pendingBath()
	p := activePet()
	f := newFixture(rec, p)

	// Preview before linking: same derivation rules as creation.
	pre, err := f.uc.GeneratePreview(context.Background(), rec.BathID)
	if err != nil {
		t.Fatalf("GeneratePreview: %v", err)
	}

	res, err := f.uc.ApproveWithIntegration(context.Background(), LinkInput{BathID: rec.BathID, PetID: p.PetID, ApprovedBy: "op1"})
	if err != nil {
		t.Fatalf("ApproveWithIntegration: %v", err)
	}
	e := f.events[*res.JourneyEventID]

	if pre.Description != e.Description {
		t.Fatalf("preview %q != created %q", pre.Description, e.Description)
	}
	if pre.Date != e.EventDate || pre.Location != e.Location {
		t.Fatalf("preview diverged: %+v vs %+v", pre, e)
	}
}

func TestGeneratePreview_FallbackDescription(t *testing.T) {
	rec := pendingBath()
	rec.CuratorNotes = "   "
	f := newFixture(rec, nil)

	pre, err := f.uc.GeneratePreview(context.Background(), rec.BathID)
	if err != nil {
		t.Fatalf("GeneratePreview: %v", err)
	}
	if pre.Description != defaultDescription {
		t.Fatalf("description = %q, want fallback", pre.Description)
	}
	if !strings.Contains(pre.Title, rec.PetName) {
		t.Fatalf("title %q does not mention the submitted name", pre.Title)
	}
}

func TestApproveWithIntegration_JournalFailureKeepsApproval(t *testing.T) {
	rec := pendingBath()
	p := activePet()
	f := newFixture(rec, p)
	f.journeys.CreateEventFn = func(ctx context.Context, e *journeyDomain.Event) error {
		return errors.New("journal store down")
	}
	var deletedPaths []string
	f.store.DeleteFn = func(ctx context.Context, path string) error {
		deletedPaths = append(deletedPaths, path)
		return nil
	}

	res, err := f.uc.ApproveWithIntegration(context.Background(), LinkInput{BathID: rec.BathID, PetID: p.PetID, ApprovedBy: "op1"})
	if err != nil {
		t.Fatalf("partial success must not be an error: %v", err)
	}
	if res.Approval != string(bathDomain.ApprovalApproved) {
		t.Fatalf("approval rolled back: %s", res.Approval)
	}
	if res.JourneyEventID != nil {
		t.Fatal("journey_event_id set despite failed link")
	}
	if res.LinkWarning == "" {
		t.Fatal("link failure must surface as a distinct warning")
	}
	if rec.Approval != bathDomain.ApprovalApproved || rec.JourneyEventID != nil {
		t.Fatalf("record state: %+v", rec)
	}
	if len(deletedPaths) != 1 {
		t.Fatalf("copied photo not cleaned up: %v", deletedPaths)
	}
}

func TestApproveWithIntegration_InactivePetIsNoOp(t *testing.T) {
	rec := pendingBath()
	p := activePet()
	p.Active = false
	f := newFixture(rec, p)

	saved := false
	f.baths.SaveWithRevisionFn = func(ctx context.Context, b *bathDomain.WeeklyBath, expected int64) error {
		saved = true
		return nil
	}

	if _, err := f.uc.ApproveWithIntegration(context.Background(), LinkInput{BathID: rec.BathID, PetID: p.PetID, ApprovedBy: "op1"}); !errors.Is(err, petDomain.ErrInactive) {
		t.Fatalf("err = %v, want ErrInactive", err)
	}
	if saved {
		t.Fatal("failed validation must not mutate the record")
	}
	if rec.Approval != bathDomain.ApprovalPending {
		t.Fatalf("approval changed: %s", rec.Approval)
	}
}

func TestApproveWithIntegration_AlreadyLinked(t *testing.T) {
	rec := pendingBath()
	eventID := strings.Repeat("e", 32)
	rec.JourneyEventID = &eventID
	p := activePet()
	f := newFixture(rec, p)

	if _, err := f.uc.ApproveWithIntegration(context.Background(), LinkInput{BathID: rec.BathID, PetID: p.PetID, ApprovedBy: "op1"}); !errors.Is(err, bathDomain.ErrAlreadyLinked) {
		t.Fatalf("err = %v, want ErrAlreadyLinked", err)
	}
}

func TestRemoveIntegration_Idempotent(t *testing.T) {
	rec := pendingBath()
	p := activePet()
	f := newFixture(rec, p)
	_, _ = f.store.Put(context.Background(), rec.ImagePath, []byte("img"), "image/jpeg")

	res, err := f.uc.ApproveWithIntegration(context.Background(), LinkInput{BathID: rec.BathID, PetID: p.PetID, ApprovedBy: "op1"})
	if err != nil {
		t.Fatalf("ApproveWithIntegration: %v", err)
	}
	copiedPath := f.photos[0].PhotoPath

	if err := f.uc.RemoveIntegration(context.Background(), rec.BathID); err != nil {
		t.Fatalf("RemoveIntegration: %v", err)
	}
	if rec.JourneyEventID != nil || rec.AddToJourney {
		t.Fatalf("link fields not cleared: %+v", rec)
	}
	if _, ok := f.events[*res.JourneyEventID]; ok {
		t.Fatal("event not deleted")
	}
	if f.store.Has(copiedPath) {
		t.Fatal("copied photo object not deleted")
	}

	// second removal is a successful no-op
	if err := f.uc.RemoveIntegration(context.Background(), rec.BathID); err != nil {
		t.Fatalf("second RemoveIntegration: %v", err)
	}
}

func TestIsIntegrated_IgnoresIntentFlag(t *testing.T) {
	rec := pendingBath()
	rec.AddToJourney = true // intent only, no event yet
	f := newFixture(rec, nil)

	linked, err := f.uc.IsIntegrated(context.Background(), rec.BathID)
	if err != nil {
		t.Fatalf("IsIntegrated: %v", err)
	}
	if linked {
		t.Fatal("add_to_journey alone must never count as linked")
	}

	eventID := strings.Repeat("e", 32)
	rec.JourneyEventID = &eventID
	linked, err = f.uc.IsIntegrated(context.Background(), rec.BathID)
	if err != nil {
		t.Fatalf("IsIntegrated: %v", err)
	}
	if !linked {
		t.Fatal("journey_event_id presence must count as linked")
	}
}

func TestListAvailablePets(t *testing.T) {
	f := newFixture(pendingBath(), nil)
	f.pets.ListActiveFn = func(ctx context.Context) ([]petDomain.Pet, error) {
		return []petDomain.Pet{{PetID: strings.Repeat("1", 32), Name: "Amora", Species: "cat"}}, nil
	}

	pets, err := f.uc.ListAvailablePets(context.Background())
	if err != nil {
		t.Fatalf("ListAvailablePets: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "Amora" {
		t.Fatalf("got %+v", pets)
	}
}
