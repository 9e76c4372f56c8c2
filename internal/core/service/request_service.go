package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openplate/foodshare-api/internal/api/metrics"
	"github.com/openplate/foodshare-api/internal/core/domain"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

type RequestService struct {
	listings ports.ListingRepository
	requests ports.RequestRepository
	cache    FeaturedCache
	logger   zerolog.Logger
}

func NewRequestService(
	listings ports.ListingRepository,
	requests ports.RequestRepository,
	cache FeaturedCache,
	logger zerolog.Logger,
) *RequestService {
	return &RequestService{listings: listings, requests: requests, cache: cache, logger: logger}
}

// FileRequest claims the referenced listing and records a Request for it.
//
// The claim is a single conditional write (status flips only when currently
// "available"), so two concurrent requests against the same listing cannot
// both succeed — the loser observes ErrAlreadyRequested. No Request document
// is written unless the claim succeeded. A failed insert after a successful
// claim leaves the listing "requested" with no Request row; that window is
// surfaced as an internal error and not rolled back.
func (s *RequestService) FileRequest(ctx context.Context, input ports.FileRequestInput) error {
	if err := s.listings.ClaimForRequest(ctx, input.FoodID); err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			metrics.RequestsFiledTotal.WithLabelValues("not_found").Inc()
		case errors.Is(err, domain.ErrAlreadyRequested):
			metrics.RequestsFiledTotal.WithLabelValues("conflict").Inc()
			s.logger.Info().Str("food_id", input.FoodID).Str("email", input.Email).Msg("request lost claim race")
		default:
			metrics.RequestsFiledTotal.WithLabelValues("error").Inc()
		}
		return fmt.Errorf("file request: %w", err)
	}

	request := &domain.Request{
		FoodID:      input.FoodID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Location:    input.Location,
		Date:        input.Date,
		Deadline:    input.Deadline,
	}
	if _, err := s.requests.Insert(ctx, request); err != nil {
		metrics.RequestsFiledTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("food_id", input.FoodID).Msg("listing claimed but request insert failed")
		return fmt.Errorf("file request: insert: %w", err)
	}

	metrics.RequestsFiledTotal.WithLabelValues("ok").Inc()
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate featured cache")
	}

	s.logger.Info().
		Str("food_id", input.FoodID).
		Str("email", input.Email).
		Msg("food requested")
	return nil
}

// ListByRequester returns the requests filed by email, guarded by the same
// owner check as listings.
func (s *RequestService) ListByRequester(ctx context.Context, claimEmail, email string) ([]*domain.Request, error) {
	if claimEmail != email {
		return nil, domain.ErrForbidden
	}
	return s.requests.FindByEmail(ctx, email)
}
