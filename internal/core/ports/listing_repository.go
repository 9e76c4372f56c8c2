package ports

import (
	"context"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

// ListingFields is the full set of mutable descriptive fields replaced by an
// update. The donator identity is deliberately absent: ownership is set at
// creation and never reassigned.
type ListingFields struct {
	Photo          string
	Status         domain.ListingStatus
	Name           string
	Quantity       int
	PickupLocation string
	Date           string
	Notes          string
}

// ListingRepository defines persistence operations for food listings.
// Every id-taking method returns domain.ErrInvalidID when the id cannot be
// parsed as the store's native identity format.
type ListingRepository interface {
	Insert(ctx context.Context, l *domain.Listing) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	// FindAvailable returns listings with status "available", most recent
	// date first.
	FindAvailable(ctx context.Context) ([]*domain.Listing, error)
	FindByDonator(ctx context.Context, email string) ([]*domain.Listing, error)
	// FindTopByQuantity returns up to limit listings ordered by quantity
	// descending, regardless of status.
	FindTopByQuantity(ctx context.Context, limit int) ([]*domain.Listing, error)
	// Upsert replaces the mutable fields of the listing with the given id,
	// creating the document when no listing with that id exists.
	Upsert(ctx context.Context, id string, fields ListingFields) (*domain.Listing, error)
	// Delete removes the listing and reports how many documents were
	// deleted. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) (int64, error)
	// ClaimForRequest flips the listing from "available" to "requested" as a
	// single conditional write. Returns domain.ErrListingNotFound when the id
	// does not exist and domain.ErrAlreadyRequested when the listing exists
	// but is no longer available.
	ClaimForRequest(ctx context.Context, id string) error
}
