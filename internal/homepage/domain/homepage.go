package domain

import (
	"time"

	cDomain "github.com/galihpp/storefront-catalog/internal/catalog/domain"
)

type Banner struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	ImageURL    string                  `json:"image_url"`
	LinkProduct *cDomain.ProductSummary `json:"link_product,omitempty"`
	IsActive    bool                    `json:"is_active"`
	StartsAt    *time.Time              `json:"starts_at,omitempty"`
	EndsAt      *time.Time              `json:"ends_at,omitempty"`
}

// IsCurrentlyActive reports whether the banner should be shown at the given
// instant. The activation window is inclusive at both ends and either bound
// may be absent. This is derived state: it is always evaluated against the
// request timestamp, never stored.
func (b Banner) IsCurrentlyActive(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartsAt != nil && now.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && now.After(*b.EndsAt) {
		return false
	}
	return true
}

type FeaturedSection struct {
	ID       string                   `json:"id"`
	Title    string                   `json:"title"`
	Category *cDomain.CategorySummary `json:"category,omitempty"`
	Products []cDomain.ProductSummary `json:"products"`
}

// Feed is the homepage payload: four independently computed slices.
type Feed struct {
	Banners          []Banner           `json:"banners"`
	FeaturedSections []FeaturedSection  `json:"featured_sections"`
	Categories       []cDomain.Category `json:"categories"`
	Brands           []cDomain.Brand    `json:"brands"`
}
