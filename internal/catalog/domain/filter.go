package domain

import "github.com/shopspring/decimal"

// Orderable product list fields.
const (
	OrderByPrice     = "price"
	OrderByCreatedAt = "created_at"
	OrderByTitle     = "title"
)

type Ordering struct {
	Field      string
	Descending bool
}

// DefaultOrdering is most-recently-created first.
func DefaultOrdering() Ordering {
	return Ordering{Field: OrderByCreatedAt, Descending: true}
}

// ProductFilter is the typed form of the product list query parameters.
// Zero values mean "no constraint": empty slug sets, nil price bounds and
// false flags all leave their filter off. FeaturedOnly and OnSaleOnly can
// only switch a constraint on, never select the negated set.
type ProductFilter struct {
	CategorySlugs []string
	BrandSlugs    []string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	FeaturedOnly  bool
	OnSaleOnly    bool
	Search        string
	Ordering      Ordering
}
