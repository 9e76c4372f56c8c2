package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

const collectionRequests = "foodsRequest"

// RequestRepository implements ports.RequestRepository on the foodsRequest
// collection. Insert-only; requests are never updated.
type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FoodID      string             `bson:"foodId"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName"`
	Location    string             `bson:"location"`
	Date        string             `bson:"date"`
	Deadline    string             `bson:"deadline"`
}

func (d requestDoc) toDomain() *domain.Request {
	return &domain.Request{
		ID:          d.ID.Hex(),
		FoodID:      d.FoodID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Location:    d.Location,
		Date:        d.Date,
		Deadline:    d.Deadline,
	}
}

func (r *RequestRepository) Insert(ctx context.Context, req *domain.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := requestDoc{
		FoodID:      req.FoodID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Location:    req.Location,
		Date:        req.Date,
		Deadline:    req.Deadline,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert request: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert request: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *RequestRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find requests: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []requestDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}

	requests := make([]*domain.Request, len(docs))
	for i, d := range docs {
		requests[i] = d.toDomain()
	}
	return requests, nil
}

// EnsureIndexes creates the indexes backing the collection's query shapes.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "foodId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
