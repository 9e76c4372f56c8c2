package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openplate/foodshare-api/internal/core/domain"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

const collectionFoods = "foods"

// ListingRepository implements ports.ListingRepository on the foods collection.
type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection(collectionFoods)}
}

type listingDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Photo        string             `bson:"photo"`
	Quantity     int                `bson:"quantity"`
	Location     string             `bson:"location"`
	Date         string             `bson:"date"`
	Notes        string             `bson:"notes"`
	Status       string             `bson:"status"`
	Email        string             `bson:"email"`
	DonatorName  string             `bson:"donator_name,omitempty"`
	DonatorPhoto string             `bson:"donator_photo,omitempty"`
}

func toDoc(l *domain.Listing) listingDoc {
	return listingDoc{
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

func (d listingDoc) toDomain() *domain.Listing {
	return &domain.Listing{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Photo:          d.Photo,
		Quantity:       d.Quantity,
		PickupLocation: d.Location,
		Date:           d.Date,
		Notes:          d.Notes,
		Status:         domain.ListingStatus(d.Status),
		DonatorEmail:   d.Email,
		DonatorName:    d.DonatorName,
		DonatorPhoto:   d.DonatorPhoto,
	}
}

// parseID converts the route-level id into the store's native identity
// format. Anything that is not a valid ObjectID hex is a client error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// Insert adds a new listing document and returns its generated id.
func (r *ListingRepository) Insert(ctx context.Context, l *domain.Listing) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDoc(l))
	if err != nil {
		return "", fmt.Errorf("insert listing: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert listing: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d listingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return d.toDomain(), nil
}

// FindAvailable returns available listings, most recent date first.
func (r *ListingRepository) FindAvailable(ctx context.Context) ([]*domain.Listing, error) {
	filter := bson.M{"status": string(domain.StatusAvailable)}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.findMany(ctx, filter, opts)
}

func (r *ListingRepository) FindByDonator(ctx context.Context, email string) ([]*domain.Listing, error) {
	return r.findMany(ctx, bson.M{"email": email}, options.Find())
}

// FindTopByQuantity returns up to limit listings ordered by quantity
// descending. No status filter: requested listings stay featured.
func (r *ListingRepository) FindTopByQuantity(ctx context.Context, limit int) ([]*domain.Listing, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "quantity", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(ctx, bson.M{}, opts)
}

func (r *ListingRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []listingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	listings := make([]*domain.Listing, len(docs))
	for i, d := range docs {
		listings[i] = d.toDomain()
	}
	return listings, nil
}

// Upsert replaces the mutable fields of the listing with id, creating the
// document when the id is unknown. The email field is never touched here:
// ownership is fixed at creation.
func (r *ListingRepository) Upsert(ctx context.Context, id string, fields ports.ListingFields) (*domain.Listing, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"photo":    fields.Photo,
		"status":   string(fields.Status),
		"name":     fields.Name,
		"quantity": fields.Quantity,
		"location": fields.PickupLocation,
		"date":     fields.Date,
		"notes":    fields.Notes,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update, opts); err != nil {
		return nil, fmt.Errorf("upsert listing: %w", err)
	}

	var d listingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return nil, fmt.Errorf("upsert listing: read back: %w", err)
	}
	return d.toDomain(), nil
}

// Delete removes the listing. Unknown ids are a successful no-op, mirroring
// the store's delete-or-none semantics.
func (r *ListingRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete listing: %w", err)
	}
	return res.DeletedCount, nil
}

// ClaimForRequest conditionally flips the listing to "requested". The status
// predicate in the filter makes the claim atomic: of two concurrent callers
// only one can match the "available" document.
func (r *ListingRepository) ClaimForRequest(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(domain.StatusAvailable)}
	update := bson.M{"$set": bson.M{"status": string(domain.StatusRequested)}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("claim listing: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Nothing matched: either the listing is gone or someone else claimed it.
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("claim listing: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}
	return domain.ErrAlreadyRequested
}

// EnsureIndexes creates the indexes backing the collection's query shapes.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "quantity", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
