package ports

import (
	"context"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

// CreateListingInput carries all data needed to create a new listing.
// Status is optional; the service enforces "available" when it is empty.
type CreateListingInput struct {
	Name           string
	Photo          string
	Quantity       int
	PickupLocation string
	Date           string
	Notes          string
	Status         string
	DonatorEmail   string
	DonatorName    string
	DonatorPhoto   string
}

// UpdateListingInput is the replacement payload for an update. All fields are
// written; absent values overwrite (full-replace semantics).
type UpdateListingInput struct {
	Name           string
	Photo          string
	Quantity       int
	PickupLocation string
	Date           string
	Notes          string
	Status         string
}

// ListingService defines use-case operations over food listings.
type ListingService interface {
	ListAvailable(ctx context.Context) ([]*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error)
	// Update replaces the mutable fields of the listing, creating it when the
	// id is unknown (upsert).
	Update(ctx context.Context, id string, input UpdateListingInput) (*domain.Listing, error)
	// Delete is idempotent; the returned count is 0 when nothing matched.
	Delete(ctx context.Context, id string) (int64, error)
	// ListByOwner returns the listings donated by email. The caller's
	// verified claim email must match email, otherwise domain.ErrForbidden.
	ListByOwner(ctx context.Context, claimEmail, email string) ([]*domain.Listing, error)
	// Featured returns up to limit listings with the largest quantities.
	Featured(ctx context.Context, limit int) ([]*domain.Listing, error)
}
