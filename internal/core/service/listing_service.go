package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openplate/foodshare-api/internal/api/metrics"
	"github.com/openplate/foodshare-api/internal/core/domain"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

// DefaultFeaturedLimit caps the featured-listings view.
const DefaultFeaturedLimit = 6

// FeaturedCache abstracts the read-through cache for the featured view
// (Redis). Cache failures are never fatal; queries fall through to the
// repository.
type FeaturedCache interface {
	Get(ctx context.Context, limit int) ([]*domain.Listing, bool, error)
	Set(ctx context.Context, limit int, listings []*domain.Listing) error
	Invalidate(ctx context.Context) error
}

type ListingService struct {
	repo   ports.ListingRepository
	cache  FeaturedCache
	logger zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, cache FeaturedCache, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, cache: cache, logger: logger}
}

func (s *ListingService) ListAvailable(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new listing. Status defaults to "available" when the
// payload omits it; a freshly created listing is always offerable.
func (s *ListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	status := domain.ListingStatus(input.Status)
	if status == "" {
		status = domain.StatusAvailable
	}

	listing := &domain.Listing{
		Name:           input.Name,
		Photo:          input.Photo,
		Quantity:       input.Quantity,
		PickupLocation: input.PickupLocation,
		Date:           input.Date,
		Notes:          input.Notes,
		Status:         status,
		DonatorEmail:   input.DonatorEmail,
		DonatorName:    input.DonatorName,
		DonatorPhoto:   input.DonatorPhoto,
	}

	id, err := s.repo.Insert(ctx, listing)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create listing")
		return nil, err
	}
	listing.ID = id

	metrics.ListingsCreatedTotal.Inc()
	s.invalidateFeatured(ctx)
	s.logger.Info().Str("listing_id", id).Str("email", listing.DonatorEmail).Msg("listing created")
	return listing, nil
}

// Update replaces the mutable fields of the listing with id. An unknown id
// creates the listing instead of failing (upsert), mirroring the store's
// replace-or-insert semantics.
func (s *ListingService) Update(ctx context.Context, id string, input ports.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.Upsert(ctx, id, ports.ListingFields{
		Photo:          input.Photo,
		Status:         domain.ListingStatus(input.Status),
		Name:           input.Name,
		Quantity:       input.Quantity,
		PickupLocation: input.PickupLocation,
		Date:           input.Date,
		Notes:          input.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)
	s.logger.Info().Str("listing_id", id).Msg("listing updated")
	return listing, nil
}

// Delete removes the listing. Unknown ids succeed with a zero count.
func (s *ListingService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.invalidateFeatured(ctx)
	s.logger.Info().Str("listing_id", id).Int64("deleted", deleted).Msg("listing deleted")
	return deleted, nil
}

// ListByOwner returns email's own listings. The verified claim email must
// match the requested email; this check runs regardless of whether any data
// exists for either address.
func (s *ListingService) ListByOwner(ctx context.Context, claimEmail, email string) ([]*domain.Listing, error) {
	if claimEmail != email {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByDonator(ctx, email)
}

// Featured returns up to limit listings with the largest quantities,
// deliberately without a status filter. Served through the cache when warm.
func (s *ListingService) Featured(ctx context.Context, limit int) ([]*domain.Listing, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	if cached, ok, err := s.cache.Get(ctx, limit); err != nil {
		s.logger.Warn().Err(err).Msg("featured cache read failed, querying store")
	} else if ok {
		metrics.FeaturedCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.FeaturedCacheTotal.WithLabelValues("miss").Inc()
	}

	listings, err := s.repo.FindTopByQuantity(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, limit, listings); err != nil {
		s.logger.Warn().Err(err).Msg("failed to warm featured cache")
	}
	return listings, nil
}

func (s *ListingService) invalidateFeatured(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate featured cache")
	}
}
