package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openplate/foodshare-api/internal/core/domain"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

// memListingRepo is an in-memory ListingRepository double that mirrors the
// store's contract: hex ids, upsert-on-update, delete-or-none, and the
// conditional claim.
type memListingRepo struct {
	mu       sync.Mutex
	seq      int
	listings map[string]*domain.Listing
}

func newMemListingRepo() *memListingRepo {
	return &memListingRepo{listings: make(map[string]*domain.Listing)}
}

func cloneListing(l *domain.Listing) *domain.Listing {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *memListingRepo) checkID(id string) error {
	if len(id) != 24 {
		return domain.ErrInvalidID
	}
	return nil
}

func (r *memListingRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("%024x", r.seq)
}

func (r *memListingRepo) Insert(_ context.Context, l *domain.Listing) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID()
	stored := cloneListing(l)
	stored.ID = id
	r.listings[id] = stored
	return id, nil
}

func (r *memListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return cloneListing(l), nil
}

func (r *memListingRepo) FindAvailable(_ context.Context) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, l := range r.listings {
		if l.Status == domain.StatusAvailable {
			out = append(out, cloneListing(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *memListingRepo) FindByDonator(_ context.Context, email string) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, l := range r.listings {
		if l.DonatorEmail == email {
			out = append(out, cloneListing(l))
		}
	}
	return out, nil
}

func (r *memListingRepo) FindTopByQuantity(_ context.Context, limit int) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, l := range r.listings {
		out = append(out, cloneListing(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memListingRepo) Upsert(_ context.Context, id string, fields ports.ListingFields) (*domain.Listing, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		l = &domain.Listing{ID: id}
		r.listings[id] = l
	}
	l.Photo = fields.Photo
	l.Status = fields.Status
	l.Name = fields.Name
	l.Quantity = fields.Quantity
	l.PickupLocation = fields.PickupLocation
	l.Date = fields.Date
	l.Notes = fields.Notes
	return cloneListing(l), nil
}

func (r *memListingRepo) Delete(_ context.Context, id string) (int64, error) {
	if err := r.checkID(id); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return 0, nil
	}
	delete(r.listings, id)
	return 1, nil
}

func (r *memListingRepo) ClaimForRequest(_ context.Context, id string) error {
	if err := r.checkID(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	if l.Status != domain.StatusAvailable {
		return domain.ErrAlreadyRequested
	}
	l.Status = domain.StatusRequested
	return nil
}

// memCache is an in-memory FeaturedCache double.
type memCache struct {
	mu          sync.Mutex
	entries     map[int][]*domain.Listing
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[int][]*domain.Listing)}
}

func (c *memCache) Get(_ context.Context, limit int) ([]*domain.Listing, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.entries[limit]
	return cached, ok, nil
}

func (c *memCache) Set(_ context.Context, limit int, listings []*domain.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[limit] = listings
	return nil
}

func (c *memCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int][]*domain.Listing)
	c.invalidated++
	return nil
}

func newListingService(repo *memListingRepo) (*ListingService, *memCache) {
	cache := newMemCache()
	return NewListingService(repo, cache, zerolog.Nop()), cache
}

func TestListingService_Create_DefaultsToAvailable(t *testing.T) {
	svc, _ := newListingService(newMemListingRepo())

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		Name:         "rice",
		Quantity:     3,
		DonatorEmail: "a@x.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if listing.ID == "" {
		t.Fatalf("expected generated id")
	}
	if listing.Status != domain.StatusAvailable {
		t.Fatalf("expected status available, got %s", listing.Status)
	}
}

func TestListingService_Create_KeepsExplicitStatus(t *testing.T) {
	svc, _ := newListingService(newMemListingRepo())

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		Name:         "bread",
		Quantity:     1,
		Status:       "requested",
		DonatorEmail: "a@x.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if listing.Status != domain.StatusRequested {
		t.Fatalf("expected status requested, got %s", listing.Status)
	}
}

func TestListingService_Update_UpsertsUnknownID(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	id := "aaaaaaaaaaaaaaaaaaaaaaaa"
	listing, err := svc.Update(context.Background(), id, ports.UpdateListingInput{
		Name:     "soup",
		Quantity: 2,
		Status:   "available",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if listing.ID != id {
		t.Fatalf("expected id %s, got %s", id, listing.ID)
	}

	stored, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID after upsert: %v", err)
	}
	if stored.Name != "soup" || stored.Quantity != 2 {
		t.Fatalf("unexpected stored listing: %+v", stored)
	}
}

func TestListingService_Update_DoesNotReassignOwner(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	created, err := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "pasta", Quantity: 4, DonatorEmail: "owner@x.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateListingInput{
		Name: "pasta (cooked)", Quantity: 4, Status: "available",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DonatorEmail != "owner@x.com" {
		t.Fatalf("owner email changed on update: %q", updated.DonatorEmail)
	}
}

func TestListingService_Delete_Idempotent(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	created, err := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "milk", Quantity: 1, DonatorEmail: "a@x.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}

	deleted, err = svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second Delete should succeed, got %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected 0 deleted on repeat, got %d", deleted)
	}
}

func TestListingService_ListAvailable_ExcludesRequested(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	avail, _ := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "apples", Quantity: 5, Date: "2024-02-01", DonatorEmail: "a@x.com",
	})
	taken, _ := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "pears", Quantity: 5, Date: "2024-03-01", DonatorEmail: "a@x.com",
	})
	if err := repo.ClaimForRequest(context.Background(), taken.ID); err != nil {
		t.Fatalf("claim: %v", err)
	}

	listings, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != avail.ID {
		t.Fatalf("expected only the available listing, got %+v", listings)
	}
}

func TestListingService_ListByOwner_Forbidden(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	// Data for A exists, but a claim for B must still be rejected.
	if _, err := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "beans", Quantity: 2, DonatorEmail: "a@x.com",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.ListByOwner(context.Background(), "b@x.com", "a@x.com"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListingService_ListByOwner_Match(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	_, _ = svc.Create(context.Background(), ports.CreateListingInput{
		Name: "beans", Quantity: 2, DonatorEmail: "a@x.com",
	})
	_, _ = svc.Create(context.Background(), ports.CreateListingInput{
		Name: "corn", Quantity: 2, DonatorEmail: "b@x.com",
	})

	listings, err := svc.ListByOwner(context.Background(), "a@x.com", "a@x.com")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(listings) != 1 || listings[0].DonatorEmail != "a@x.com" {
		t.Fatalf("expected only a@x.com listings, got %+v", listings)
	}
}

func TestListingService_Featured_TopSixByQuantity(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	for _, q := range []int{10, 1, 5, 8, 2, 9, 3} {
		if _, err := svc.Create(context.Background(), ports.CreateListingInput{
			Name: fmt.Sprintf("item-%d", q), Quantity: q, DonatorEmail: "a@x.com",
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	listings, err := svc.Featured(context.Background(), DefaultFeaturedLimit)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}

	want := []int{10, 9, 8, 5, 3, 2}
	if len(listings) != len(want) {
		t.Fatalf("expected %d listings, got %d", len(want), len(listings))
	}
	for i, l := range listings {
		if l.Quantity != want[i] {
			t.Fatalf("position %d: expected quantity %d, got %d", i, want[i], l.Quantity)
		}
	}
}

func TestListingService_Featured_IgnoresStatus(t *testing.T) {
	repo := newMemListingRepo()
	svc, _ := newListingService(repo)

	big, _ := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "feast", Quantity: 100, DonatorEmail: "a@x.com",
	})
	_, _ = svc.Create(context.Background(), ports.CreateListingInput{
		Name: "snack", Quantity: 1, DonatorEmail: "a@x.com",
	})
	if err := repo.ClaimForRequest(context.Background(), big.ID); err != nil {
		t.Fatalf("claim: %v", err)
	}

	listings, err := svc.Featured(context.Background(), DefaultFeaturedLimit)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(listings) != 2 || listings[0].ID != big.ID {
		t.Fatalf("expected requested listing to stay featured, got %+v", listings)
	}
}

func TestListingService_Featured_ServedFromCache(t *testing.T) {
	repo := newMemListingRepo()
	svc, cache := newListingService(repo)

	_, _ = svc.Create(context.Background(), ports.CreateListingInput{
		Name: "stew", Quantity: 7, DonatorEmail: "a@x.com",
	})

	first, err := svc.Featured(context.Background(), DefaultFeaturedLimit)
	if err != nil {
		t.Fatalf("first Featured: %v", err)
	}
	if _, ok := cache.entries[DefaultFeaturedLimit]; !ok {
		t.Fatalf("expected cache to be warmed")
	}

	// Mutate the repo behind the cache's back: the cached view must win.
	repo.mu.Lock()
	repo.listings = make(map[string]*domain.Listing)
	repo.mu.Unlock()

	second, err := svc.Featured(context.Background(), DefaultFeaturedLimit)
	if err != nil {
		t.Fatalf("second Featured: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached view, got %+v", second)
	}
}

func TestListingService_Writes_InvalidateFeaturedCache(t *testing.T) {
	repo := newMemListingRepo()
	svc, cache := newListingService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateListingInput{
		Name: "bread", Quantity: 2, DonatorEmail: "a@x.com",
	})
	if _, err := svc.Featured(context.Background(), DefaultFeaturedLimit); err != nil {
		t.Fatalf("Featured: %v", err)
	}

	if _, err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := cache.entries[DefaultFeaturedLimit]; ok {
		t.Fatalf("expected cache to be invalidated after delete")
	}
}
