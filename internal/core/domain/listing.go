package domain

import "errors"

// ListingStatus represents the lifecycle state of a food listing.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusRequested ListingStatus = "requested"
)

var ErrListingNotFound = errors.New("listing not found")
var ErrInvalidID = errors.New("invalid listing id")
var ErrAlreadyRequested = errors.New("listing already requested")
var ErrForbidden = errors.New("access forbidden")

// Listing is the core aggregate: a food item offered for donation.
// The descriptive fields are opaque to the service layer — they are stored
// and returned verbatim, never interpreted. Date is an ISO-style string so
// the storage layer's lexicographic sort matches chronological order.
type Listing struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	Name           string        `json:"name" bson:"name"`
	Photo          string        `json:"photo" bson:"photo"`
	Quantity       int           `json:"quantity" bson:"quantity"`
	PickupLocation string        `json:"location" bson:"location"`
	Date           string        `json:"date" bson:"date"`
	Notes          string        `json:"notes" bson:"notes"`
	Status         ListingStatus `json:"status" bson:"status"`
	DonatorEmail   string        `json:"email" bson:"email"`
	DonatorName    string        `json:"donator_name,omitempty" bson:"donator_name,omitempty"`
	DonatorPhoto   string        `json:"donator_photo,omitempty" bson:"donator_photo,omitempty"`
}
