package handler

import (
	"github.com/openplate/foodshare-api/internal/core/domain"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createFoodRequest) ports.CreateListingInput {
	return ports.CreateListingInput{
		Name:           req.Name,
		Photo:          req.Photo,
		Quantity:       req.Quantity,
		PickupLocation: req.Location,
		Date:           req.Date,
		Notes:          req.Notes,
		Status:         req.Status,
		DonatorEmail:   req.Email,
		DonatorName:    req.DonatorName,
		DonatorPhoto:   req.DonatorPhoto,
	}
}

func toUpdateInput(req updateFoodRequest) ports.UpdateListingInput {
	return ports.UpdateListingInput{
		Name:           req.Name,
		Photo:          req.Photo,
		Quantity:       req.Quantity,
		PickupLocation: req.Location,
		Date:           req.Date,
		Notes:          req.Notes,
		Status:         req.Status,
	}
}

func toFileRequestInput(req fileFoodRequest) ports.FileRequestInput {
	return ports.FileRequestInput{
		FoodID:      req.FoodID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Location:    req.Location,
		Date:        req.Date,
		Deadline:    req.Deadline,
	}
}

// --- Domain → HTTP response ---

func toFoodResponse(l *domain.Listing) foodResponse {
	return foodResponse{
		ID:           l.ID,
		Name:         l.Name,
		Photo:        l.Photo,
		Quantity:     l.Quantity,
		Location:     l.PickupLocation,
		Date:         l.Date,
		Notes:        l.Notes,
		Status:       string(l.Status),
		Email:        l.DonatorEmail,
		DonatorName:  l.DonatorName,
		DonatorPhoto: l.DonatorPhoto,
	}
}

func toFoodListResponse(listings []*domain.Listing) []foodResponse {
	out := make([]foodResponse, len(listings))
	for i, l := range listings {
		out[i] = toFoodResponse(l)
	}
	return out
}

func toRequestResponse(r *domain.Request) foodRequestResponse {
	return foodRequestResponse{
		ID:          r.ID,
		FoodID:      r.FoodID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Location:    r.Location,
		Date:        r.Date,
		Deadline:    r.Deadline,
	}
}

func toRequestListResponse(requests []*domain.Request) []foodRequestResponse {
	out := make([]foodRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = toRequestResponse(r)
	}
	return out
}
