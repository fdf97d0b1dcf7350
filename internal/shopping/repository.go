package shopping

import "context"

// Repository is the query surface over the products collection.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Upsert(ctx context.Context, p Product) error
}
