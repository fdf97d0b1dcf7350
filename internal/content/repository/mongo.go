package repository

import (
	"context"
	"errors"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/internal/content"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over the prepared_contents collection.
// Documents carry an "id" string field (Firestore-era identifiers were
// migrated as-is) with a unique index; _id stays driver-managed.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "category", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "id", Value: -1}}},
	}
	col.Indexes().CreateMany(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, doc content.RawDoc) (string, error) {
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	record := bson.M{"id": doc.ID, "createdAt": now, "updatedAt": now}
	for k, v := range doc.Data {
		record[k] = v
	}
	if _, err := m.col.InsertOne(ctx, record); err != nil {
		return "", errs.Store(err)
	}
	return doc.ID, nil
}

func (m *MongoRepo) ListByCategory(ctx context.Context, category string, pageSize int, cursor string, tags []string) ([]content.RawDoc, bool, error) {
	filter := bson.M{"is_published": true}
	if category != "" {
		filter["category"] = category
	}
	if len(tags) > 0 {
		filter["tags"] = bson.M{"$all": tags}
	}

	if cursor != "" {
		// the anchor must belong to the same filtered set; a cursor from a
		// different category or an unpublished document is a caller error
		anchorFilter := bson.M{"id": cursor}
		for k, v := range filter {
			anchorFilter[k] = v
		}
		var anchor bson.M
		err := m.col.FindOne(ctx, anchorFilter).Decode(&anchor)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, false, errs.Validation("invalid pagination cursor")
			}
			return nil, false, errs.Store(err)
		}
		// resume strictly after the anchor's ordering position
		created := anchor["createdAt"]
		filter["$or"] = bson.A{
			bson.M{"createdAt": bson.M{"$lt": created}},
			bson.M{"createdAt": created, "id": bson.M{"$lt": cursor}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: -1}}).
		SetLimit(int64(pageSize + 1))

	docs, err := m.find(ctx, filter, opts)
	if err != nil {
		return nil, false, err
	}
	hasNext := len(docs) > pageSize
	if hasNext {
		docs = docs[:pageSize]
	}
	return docs, hasNext, nil
}

func (m *MongoRepo) ListRecommendations(ctx context.Context) ([]content.RawDoc, error) {
	filter := bson.M{"is_published": true, "contentType": RecommendationContentType}
	return m.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: -1}}))
}

func (m *MongoRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := m.col.Distinct(ctx, "category", bson.M{"is_published": true})
	if err != nil {
		return nil, errs.Store(err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MongoRepo) GetByID(ctx context.Context, id string) (content.RawDoc, error) {
	var raw bson.M
	err := m.col.FindOne(ctx, bson.M{"id": id, "is_published": true}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return content.RawDoc{}, errs.NotFound("content not found")
		}
		return content.RawDoc{}, errs.Store(err)
	}
	return toRawDoc(raw), nil
}

func (m *MongoRepo) IncrementViews(ctx context.Context, id string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id, "is_published": true}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return errs.Store(err)
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("content not found")
	}
	return nil
}

// ToggleLike adds the user to likedBy, or removes them when already
// present. Each step is a single-document atomic update; the toggle itself
// is advisory under concurrent toggles by the same user.
func (m *MongoRepo) ToggleLike(ctx context.Context, id, userID string) (int, bool, error) {
	filter := bson.M{"id": id, "is_published": true}
	var before bson.M
	err := m.col.FindOneAndUpdate(ctx, filter,
		bson.M{"$addToSet": bson.M{"likedBy": userID}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, errs.NotFound("content not found")
		}
		return 0, false, errs.Store(err)
	}

	prior, _ := before["likedBy"].(primitive.A)
	already := false
	for _, u := range prior {
		if u == userID {
			already = true
			break
		}
	}
	if !already {
		return len(prior) + 1, true, nil
	}

	// user had already liked: the $addToSet was a no-op, undo instead
	var after bson.M
	err = m.col.FindOneAndUpdate(ctx, filter,
		bson.M{"$pull": bson.M{"likedBy": userID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&after)
	if err != nil {
		return 0, false, errs.Store(err)
	}
	remaining, _ := after["likedBy"].(primitive.A)
	return len(remaining), false, nil
}

func (m *MongoRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]content.RawDoc, error) {
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.Store(err)
	}
	defer cur.Close(ctx)
	out := []content.RawDoc{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, errs.Store(err)
		}
		out = append(out, toRawDoc(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Store(err)
	}
	return out, nil
}

func toRawDoc(raw bson.M) content.RawDoc {
	id, _ := raw["id"].(string)
	data := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if k == "_id" || k == "id" {
			continue
		}
		data[k] = v
	}
	return content.RawDoc{ID: id, Data: data}
}
