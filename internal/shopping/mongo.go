package shopping

import (
	"context"
	"errors"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over the products collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	col.Indexes().CreateMany(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Upsert(ctx context.Context, p Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()
	_, err := m.col.ReplaceOne(ctx, bson.M{"id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return errs.Store(err)
	}
	return nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Product{}, errs.NotFound("product not found")
		}
		return Product{}, errs.Store(err)
	}
	return p, nil
}

// List pushes the equality and range filters into the query; the free-text
// search stays a store-side case-insensitive regex over name and brand.
func (m *MongoRepo) List(ctx context.Context, f Filter) ([]Product, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	price := bson.M{}
	if f.MinPrice > 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		price["$lte"] = f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if f.FreeShipping {
		filter["isFreeShipping"] = true
	}
	if f.NewOnly {
		filter["isNew"] = true
	}
	if f.BestOnly {
		filter["isBest"] = true
	}
	if f.DiscountOnly {
		filter["discountRate"] = bson.M{"$gt": 0}
	}
	if f.SearchQuery != "" {
		rx := bson.M{"$regex": f.SearchQuery, "$options": "i"}
		filter["$or"] = bson.A{bson.M{"name": rx}, bson.M{"brand": rx}}
	}

	sortField := f.SortBy
	switch sortField {
	case SortPrice, SortRating, SortReviewCount:
	default:
		sortField = SortNewest
	}
	dir := -1
	if f.SortAsc {
		dir = 1
	}

	cur, err := m.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: sortField, Value: dir}}))
	if err != nil {
		return nil, errs.Store(err)
	}
	defer cur.Close(ctx)
	out := []Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errs.Store(err)
	}
	return out, nil
}
