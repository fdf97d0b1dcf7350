package shopping

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
)

// MemoryRepo is an in-memory product repository for tests and local runs.
type MemoryRepo struct {
	mu       sync.RWMutex
	products map[string]Product
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{products: make(map[string]Product)}
}

func (m *MemoryRepo) Upsert(_ context.Context, p Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()
	m.products[p.ID] = p
	return nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return Product{}, errs.NotFound("product not found")
	}
	return p, nil
}

func (m *MemoryRepo) List(_ context.Context, f Filter) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Product{}
	for _, p := range m.products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	sortProducts(out, f)
	return out, nil
}

func matches(p Product, f Filter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.FreeShipping && !p.IsFreeShipping {
		return false
	}
	if f.NewOnly && !p.IsNew {
		return false
	}
	if f.BestOnly && !p.IsBest {
		return false
	}
	if f.DiscountOnly && p.DiscountRate <= 0 {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.SearchQuery)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	return true
}

func sortProducts(out []Product, f Filter) {
	less := func(a, b Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	switch f.SortBy {
	case SortPrice:
		less = func(a, b Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case SortReviewCount:
		less = func(a, b Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.SortAsc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
}
