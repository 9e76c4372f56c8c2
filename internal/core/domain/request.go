package domain

// Request links a requester to a Listing. Requests are insert-only: they are
// created as a side effect of filing a request and never mutated afterwards.
type Request struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	FoodID      string `json:"foodId" bson:"foodId"`
	Email       string `json:"email" bson:"email"`
	DisplayName string `json:"displayName" bson:"displayName"`
	Location    string `json:"location" bson:"location"`
	Date        string `json:"date" bson:"date"`
	Deadline    string `json:"deadline" bson:"deadline"`
}
