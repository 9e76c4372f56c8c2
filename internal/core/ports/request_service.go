package ports

import (
	"context"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

// FileRequestInput carries all data needed to file a request for a listing.
type FileRequestInput struct {
	FoodID      string
	Email       string
	DisplayName string
	Location    string
	Date        string
	Deadline    string
}

// RequestService defines use-case operations over food requests.
type RequestService interface {
	// FileRequest claims the referenced listing (available → requested) and
	// records a Request for it. When the listing cannot be claimed no Request
	// is written.
	FileRequest(ctx context.Context, input FileRequestInput) error
	// ListByRequester returns the requests filed by email. The caller's
	// verified claim email must match email, otherwise domain.ErrForbidden.
	ListByRequester(ctx context.Context, claimEmail, email string) ([]*domain.Request, error)
}
