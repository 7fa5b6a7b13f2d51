package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prices use decimal to keep money exact; sale prices are nullable because
// most records have none.

type CategorySummary struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type BrandSummary struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type Category struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type Brand struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logo_url,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type Image struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order"`
}

// VariantAttribute is a resolved attribute assignment, e.g. {Type: "size", Value: "42"}.
type VariantAttribute struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Variant struct {
	ID         string              `json:"id"`
	SKU        string              `json:"sku"`
	Price      decimal.Decimal     `json:"price"`
	SalePrice  decimal.NullDecimal `json:"sale_price"`
	Attributes []VariantAttribute  `json:"attributes"`
}

// ProductSummary is the list-endpoint projection of a product.
type ProductSummary struct {
	ID           string              `json:"id"`
	Slug         string              `json:"slug"`
	Title        string              `json:"title"`
	Price        decimal.Decimal     `json:"price"`
	SalePrice    decimal.NullDecimal `json:"sale_price"`
	PrimaryImage string              `json:"primary_image,omitempty"`
	Category     *CategorySummary    `json:"category,omitempty"`
	Brand        *BrandSummary       `json:"brand,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

type ProductDetail struct {
	ProductSummary
	Description string    `json:"description"`
	IsFeatured  bool      `json:"is_featured"`
	Images      []Image   `json:"images"`
	Variants    []Variant `json:"variants"`
}

type CategoryDetail struct {
	Category
	Products []ProductDetail `json:"products"`
}

type BrandDetail struct {
	Brand
	Products []ProductDetail `json:"products"`
}

// CatalogStats is the payload of the periodic stats report job.
type CatalogStats struct {
	ActiveProducts   int
	ActiveCategories int
	ActiveBrands     int
}
