package ports

import (
	"context"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

// RequestRepository defines persistence operations for food requests.
// Requests are insert-only; there is no update or delete path.
type RequestRepository interface {
	Insert(ctx context.Context, r *domain.Request) (string, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Request, error)
}
