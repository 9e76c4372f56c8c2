package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Rendered by the central HTTP error handler.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createFoodRequest struct {
	Name         string `json:"name"          validate:"required"`
	Photo        string `json:"photo"`
	Quantity     int    `json:"quantity"      validate:"required,gt=0"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
	Status       string `json:"status"        validate:"omitempty,oneof=available requested"`
	Email        string `json:"email"         validate:"required,email"`
	DonatorName  string `json:"donator_name"`
	DonatorPhoto string `json:"donator_photo"`
}

// updateFoodRequest is a full replacement of the mutable fields. It carries
// no email: ownership cannot be reassigned through an update.
type updateFoodRequest struct {
	Photo    string `json:"photo"`
	Status   string `json:"status"   validate:"omitempty,oneof=available requested"`
	Name     string `json:"name"     validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

type fileFoodRequest struct {
	FoodID      string `json:"foodId"      validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	DisplayName string `json:"displayName"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Deadline    string `json:"deadline"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type foodResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	Quantity     int    `json:"quantity"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
	Email        string `json:"email"`
	DonatorName  string `json:"donator_name,omitempty"`
	DonatorPhoto string `json:"donator_photo,omitempty"`
}

type foodRequestResponse struct {
	ID          string `json:"id"`
	FoodID      string `json:"foodId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Location    string `json:"location,omitempty"`
	Date        string `json:"date,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
}

type deleteFoodResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type messageResponse struct {
	Message string `json:"message"`
}
