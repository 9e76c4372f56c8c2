package ports

import "github.com/openplate/foodshare-api/internal/core/domain"

// TokenService issues and verifies signed identity tokens (the session
// guard). Verification checks signature and expiry only; the per-route
// owner check is a separate step performed by the services.
type TokenService interface {
	Issue(email string) (string, *domain.IdentityClaim, error)
	Verify(token string) (*domain.IdentityClaim, error)
}
