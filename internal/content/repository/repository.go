package repository

import (
	"context"

	"github.com/harutrip/harutrip/backend/go-services/internal/content"
)

// Repository is the query surface over the prepared_contents collection.
//
// Listing contract shared by both implementations:
//   - only is_published == true documents are ever returned; the filter is
//     mandatory, not optional
//   - ordering is createdAt descending with id descending as tiebreak
//   - an empty category applies no category filter (all published content)
//   - a cursor is the id of the last item of the previous page and resumes
//     strictly after that ordering position; it is only valid against the
//     same filter and ordering, and a cursor naming a document outside the
//     filtered set is a ValidationError
//   - hasNext is computed by fetching pageSize+1 documents and checking for
//     the extra one, so it is never true when no further item exists
type Repository interface {
	ListByCategory(ctx context.Context, category string, pageSize int, cursor string, tags []string) ([]content.RawDoc, bool, error)
	ListRecommendations(ctx context.Context) ([]content.RawDoc, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (content.RawDoc, error)
	IncrementViews(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (likes int, liked bool, err error)
	Insert(ctx context.Context, doc content.RawDoc) (string, error)
}

// RecommendationContentType marks curated cross-category documents.
const RecommendationContentType = "recommendation"
