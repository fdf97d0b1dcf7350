package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/internal/content"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Repository used for unit tests and for running
// the service without a store. It mirrors the Mongo implementation's
// filter, ordering and cursor semantics exactly.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]content.RawDoc
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]content.RawDoc)}
}

func (m *MemoryRepo) Insert(_ context.Context, doc content.RawDoc) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if doc.Data == nil {
		doc.Data = map[string]interface{}{}
	}
	if _, ok := doc.Data["createdAt"]; !ok {
		doc.Data["createdAt"] = time.Now().UTC()
	}
	if _, ok := doc.Data["updatedAt"]; !ok {
		doc.Data["updatedAt"] = doc.Data["createdAt"]
	}
	m.docs[doc.ID] = cloneDoc(doc)
	return doc.ID, nil
}

// published returns the published documents ordered createdAt desc, id desc.
func (m *MemoryRepo) published() []content.RawDoc {
	out := make([]content.RawDoc, 0, len(m.docs))
	for _, d := range m.docs {
		if pub, _ := d.Data["is_published"].(bool); pub {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := docTime(out[i]), docTime(out[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func docTime(d content.RawDoc) time.Time {
	if t, ok := d.Data["createdAt"].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func (m *MemoryRepo) ListByCategory(_ context.Context, category string, pageSize int, cursor string, tags []string) ([]content.RawDoc, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]content.RawDoc, 0)
	for _, d := range m.published() {
		if cat, _ := d.Data["category"].(string); category != "" && cat != category {
			continue
		}
		if !hasAllTags(d, tags) {
			continue
		}
		matched = append(matched, d)
	}

	start := 0
	if cursor != "" {
		found := false
		for i, d := range matched {
			if d.ID == cursor {
				start = i + 1
				found = true
				break
			}
		}
		if !found {
			return nil, false, errs.Validation("invalid pagination cursor")
		}
	}

	rest := matched[start:]
	hasNext := len(rest) > pageSize
	if hasNext {
		rest = rest[:pageSize]
	}
	out := make([]content.RawDoc, len(rest))
	for i, d := range rest {
		out[i] = cloneDoc(d)
	}
	return out, hasNext, nil
}

func hasAllTags(d content.RawDoc, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	have := map[string]bool{}
	switch stored := d.Data["tags"].(type) {
	case []interface{}:
		for _, t := range stored {
			if s, ok := t.(string); ok {
				have[s] = true
			}
		}
	case []string:
		for _, s := range stored {
			have[s] = true
		}
	}
	for _, t := range tags {
		if !have[t] {
			return false
		}
	}
	return true
}

func (m *MemoryRepo) ListRecommendations(_ context.Context) ([]content.RawDoc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]content.RawDoc, 0)
	for _, d := range m.published() {
		if ct, _ := d.Data["contentType"].(string); ct == RecommendationContentType {
			out = append(out, cloneDoc(d))
		}
	}
	return out, nil
}

func (m *MemoryRepo) DistinctCategories(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, d := range m.published() {
		cat, _ := d.Data["category"].(string)
		if cat != "" && !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out, nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (content.RawDoc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	if !ok {
		return content.RawDoc{}, errs.NotFound("content not found")
	}
	if pub, _ := d.Data["is_published"].(bool); !pub {
		return content.RawDoc{}, errs.NotFound("content not found")
	}
	return cloneDoc(d), nil
}

func (m *MemoryRepo) IncrementViews(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return errs.NotFound("content not found")
	}
	views, _ := d.Data["views"].(int)
	d.Data["views"] = views + 1
	return nil
}

func (m *MemoryRepo) ToggleLike(_ context.Context, id, userID string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return 0, false, errs.NotFound("content not found")
	}
	likedBy, _ := d.Data["likedBy"].([]interface{})
	for i, u := range likedBy {
		if u == userID {
			d.Data["likedBy"] = append(likedBy[:i:i], likedBy[i+1:]...)
			return len(likedBy) - 1, false, nil
		}
	}
	d.Data["likedBy"] = append(likedBy, userID)
	return len(likedBy) + 1, true, nil
}

func cloneDoc(d content.RawDoc) content.RawDoc {
	data := make(map[string]interface{}, len(d.Data))
	for k, v := range d.Data {
		data[k] = v
	}
	return content.RawDoc{ID: d.ID, Data: data}
}
