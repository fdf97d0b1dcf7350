package service

import (
	"context"

	"github.com/harutrip/harutrip/backend/go-services/internal/content"
	"github.com/harutrip/harutrip/backend/go-services/internal/content/repository"
)

const (
	// DefaultPageSize applies when a request omits or zeroes pageSize.
	DefaultPageSize = 10
	// MaxPageSize is the server-side clamp for list queries.
	MaxPageSize = 50
	// DefaultCategoryLimit is the page size of the category convenience lists.
	DefaultCategoryLimit = 20
)

// Service exposes the content read operations consumed by the handlers.
type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// ClampPageSize bounds a requested page size to [1, MaxPageSize].
func ClampPageSize(n int) int {
	if n <= 0 {
		return DefaultPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// ListByCategory returns one normalized page of published documents in the
// given category, newest first.
func (s *Service) ListByCategory(ctx context.Context, category string, pageSize int, cursor string, tags []string) (*content.Page, error) {
	pageSize = ClampPageSize(pageSize)
	docs, hasNext, err := s.repo.ListByCategory(ctx, category, pageSize, cursor, tags)
	if err != nil {
		return nil, err
	}
	page := &content.Page{
		Docs:    make([]content.ContentDetail, 0, len(docs)),
		HasNext: hasNext,
		Size:    len(docs),
	}
	for _, d := range docs {
		page.Docs = append(page.Docs, content.ToDetail(d))
	}
	if len(docs) > 0 {
		page.LastVisibleID = docs[len(docs)-1].ID
	}
	return page, nil
}

// Recommendations returns curated published documents whose category is in
// the allowed set. The category check runs after the fetch on purpose: an
// IN-style store filter combined with the published and contentType
// equality filters would demand a composite index that the collection does
// not carry.
func (s *Service) Recommendations(ctx context.Context, allowed []string) ([]content.ContentDetail, error) {
	docs, err := s.repo.ListRecommendations(ctx)
	if err != nil {
		return nil, err
	}
	allowedSet := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		allowedSet[c] = true
	}
	out := make([]content.ContentDetail, 0, len(docs))
	for _, d := range docs {
		cat, _ := d.Data["category"].(string)
		if cat == "" || !allowedSet[cat] {
			continue
		}
		out = append(out, content.ToDetail(d))
	}
	return out, nil
}

// Categories returns the distinct non-empty category labels across
// published documents. An empty result is normal; callers substitute their
// default label list.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

// GetDetail returns one published document, fully normalized.
func (s *Service) GetDetail(ctx context.Context, id string) (content.ContentDetail, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return content.ToDetail(doc), nil
}

// Accommodations lists published 숙소 documents as typed items.
func (s *Service) Accommodations(ctx context.Context, limit int) ([]content.AccommodationItem, error) {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}
	docs, _, err := s.repo.ListByCategory(ctx, content.LabelLodging, ClampPageSize(limit), "", nil)
	if err != nil {
		return nil, err
	}
	out := make([]content.AccommodationItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, content.ToAccommodation(d))
	}
	return out, nil
}

// Attractions lists published 명소 documents as typed items.
func (s *Service) Attractions(ctx context.Context, limit int) ([]content.AttractionItem, error) {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}
	docs, _, err := s.repo.ListByCategory(ctx, content.LabelAttraction, ClampPageSize(limit), "", nil)
	if err != nil {
		return nil, err
	}
	out := make([]content.AttractionItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, content.ToAttraction(d))
	}
	return out, nil
}

// RecordView bumps the advisory view counter.
func (s *Service) RecordView(ctx context.Context, id string) error {
	return s.repo.IncrementViews(ctx, id)
}

// ToggleLike flips the user's like on a document and reports the new state.
func (s *Service) ToggleLike(ctx context.Context, id, userID string) (int, bool, error) {
	return s.repo.ToggleLike(ctx, id, userID)
}

// AddSample inserts a published sample document (development seeding).
func (s *Service) AddSample(ctx context.Context, doc content.RawDoc) (string, error) {
	return s.repo.Insert(ctx, doc)
}
