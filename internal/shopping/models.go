package shopping

import "time"

// Product is a shopping catalog entry. The category label set here is
// free-form and independent of the content categories.
type Product struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	Price          int       `json:"price" bson:"price"`
	OriginalPrice  int       `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	DiscountRate   int       `json:"discountRate,omitempty" bson:"discountRate,omitempty"`
	ImageURL       string    `json:"imageUrl" bson:"imageUrl"`
	Rating         float64   `json:"rating" bson:"rating"`
	ReviewCount    int       `json:"reviewCount" bson:"reviewCount"`
	Category       string    `json:"category" bson:"category"`
	IsFreeShipping bool      `json:"isFreeShipping" bson:"isFreeShipping"`
	IsNew          bool      `json:"isNew" bson:"isNew"`
	IsBest         bool      `json:"isBest" bson:"isBest"`
	Brand          string    `json:"brand,omitempty" bson:"brand,omitempty"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Tags           []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// EffectivePrice is the sale price after the discount rate is applied,
// rounded to the nearest won. A zero or absent rate leaves the base price
// untouched.
func (p Product) EffectivePrice() int {
	if p.DiscountRate <= 0 {
		return p.Price
	}
	return (p.Price*(100-p.DiscountRate) + 50) / 100
}

// Sort orders accepted by ListProducts.
const (
	SortNewest      = "createdAt"
	SortPrice       = "price"
	SortRating      = "rating"
	SortReviewCount = "reviewCount"
)

// Filter narrows and orders a product listing. Zero values mean "no
// constraint"; MaxPrice of 0 is treated as unbounded.
type Filter struct {
	Category     string
	MinPrice     int
	MaxPrice     int
	FreeShipping bool
	NewOnly      bool
	BestOnly     bool
	DiscountOnly bool
	SearchQuery  string
	SortBy       string
	SortAsc      bool
}
