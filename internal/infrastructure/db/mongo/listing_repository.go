package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillx/skillx-api/internal/core/domain"
)

const listingsCollection = "skills"

type ListingRepository struct {
	listings *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{listings: db.Collection(listingsCollection)}
}

type listingDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Skill       string             `bson:"skill"`
	Description string             `bson:"description,omitempty"`
	City        string             `bson:"city,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *ListingRepository) Insert(ctx context.Context, l *domain.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := listingDoc{
		OwnerID:     l.OwnerID,
		Skill:       l.Skill,
		Description: l.Description,
		City:        l.City,
		CreatedAt:   l.CreatedAt,
	}
	res, err := r.listings.InsertOne(ctx, doc)
	if err != nil {
		return mapErr("insert listing", err)
	}
	l.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// List returns all listings, newest first.
func (r *ListingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.listings.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mapErr("list listings", err)
	}
	defer cur.Close(ctx)

	listings := []domain.Listing{}
	for cur.Next(ctx) {
		var doc listingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, mapErr("decode listing", err)
		}
		listings = append(listings, domain.Listing{
			ID:          doc.ID.Hex(),
			OwnerID:     doc.OwnerID,
			Skill:       doc.Skill,
			Description: doc.Description,
			City:        doc.City,
			CreatedAt:   doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, mapErr("list listings", err)
	}
	return listings, nil
}
