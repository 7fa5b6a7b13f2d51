package repository

import (
	"testing"

	"github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildProductPredicate(t *testing.T) {
	t.Run("No filters means active-only", func(t *testing.T) {
		where, args := buildProductPredicate(domain.ProductFilter{})
		assert.Equal(t, "p.is_active = TRUE", where)
		assert.Empty(t, args)
	})

	t.Run("Slug sets use array membership", func(t *testing.T) {
		f := domain.ProductFilter{
			CategorySlugs: []string{"shoes", "bags"},
			BrandSlugs:    []string{"acme"},
		}
		where, args := buildProductPredicate(f)
		assert.Contains(t, where, "c.slug = ANY($1)")
		assert.Contains(t, where, "b.slug = ANY($2)")
		assert.Len(t, args, 2)
		assert.Equal(t, pq.Array([]string{"shoes", "bags"}), args[0])
		assert.Equal(t, pq.Array([]string{"acme"}), args[1])
	})

	t.Run("Price bounds match product or variant", func(t *testing.T) {
		min := decimal.NewFromInt(85)
		max := decimal.NewFromInt(95)
		f := domain.ProductFilter{MinPrice: &min, MaxPrice: &max}
		where, args := buildProductPredicate(f)
		assert.Contains(t, where,
			"(p.price >= $1 OR EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = p.id AND pv.price >= $1))")
		assert.Contains(t, where,
			"(p.price <= $2 OR EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = p.id AND pv.price <= $2))")
		// each bound binds once and is reused by both branches
		assert.Len(t, args, 2)
		assert.Equal(t, min, args[0])
		assert.Equal(t, max, args[1])
	})

	t.Run("Min only leaves max unconstrained", func(t *testing.T) {
		min := decimal.NewFromInt(10)
		where, _ := buildProductPredicate(domain.ProductFilter{MinPrice: &min})
		assert.Contains(t, where, "p.price >= $1")
		assert.NotContains(t, where, "p.price <=")
	})

	t.Run("Featured flag", func(t *testing.T) {
		where, args := buildProductPredicate(domain.ProductFilter{FeaturedOnly: true})
		assert.Contains(t, where, "p.is_featured = TRUE")
		assert.Empty(t, args)
	})

	t.Run("Sale flag checks product discount or variant sale price presence", func(t *testing.T) {
		where, _ := buildProductPredicate(domain.ProductFilter{OnSaleOnly: true})
		assert.Contains(t, where, "(p.sale_price IS NOT NULL AND p.sale_price < p.price)")
		assert.Contains(t, where, "pv.sale_price IS NOT NULL")
		// the variant branch intentionally has no pv.sale_price < pv.price check
		assert.NotContains(t, where, "pv.sale_price < pv.price")
	})

	t.Run("Search binds one wildcard pattern for both columns", func(t *testing.T) {
		where, args := buildProductPredicate(domain.ProductFilter{Search: "sneaker"})
		assert.Contains(t, where, "(p.title ILIKE $1 OR p.description ILIKE $1)")
		assert.Equal(t, []any{"%sneaker%"}, args)
	})

	t.Run("All filters compose with AND", func(t *testing.T) {
		min := decimal.NewFromInt(10)
		f := domain.ProductFilter{
			CategorySlugs: []string{"shoes"},
			MinPrice:      &min,
			FeaturedOnly:  true,
			OnSaleOnly:    true,
			Search:        "run",
		}
		where, args := buildProductPredicate(f)
		assert.Contains(t, where, "p.is_active = TRUE AND c.slug = ANY($1) AND ")
		assert.Len(t, args, 3)
	})
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		ordering domain.Ordering
		want     string
	}{
		{"Default is newest first", domain.DefaultOrdering(), "p.created_at DESC, p.id ASC"},
		{"Price ascending", domain.Ordering{Field: domain.OrderByPrice}, "p.price ASC, p.id ASC"},
		{"Title descending", domain.Ordering{Field: domain.OrderByTitle, Descending: true}, "p.title DESC, p.id ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.ordering))
		})
	}
}

func TestDedupeProducts(t *testing.T) {
	a := domain.ProductSummary{ID: "a", Slug: "prod-a"}
	b := domain.ProductSummary{ID: "b", Slug: "prod-b"}
	c := domain.ProductSummary{ID: "c", Slug: "prod-c"}

	t.Run("Keeps first occurrence and order", func(t *testing.T) {
		got := dedupeProducts([]domain.ProductSummary{a, b, a, c, b, a})
		assert.Equal(t, []domain.ProductSummary{a, b, c}, got)
	})

	t.Run("No duplicates is a no-op", func(t *testing.T) {
		got := dedupeProducts([]domain.ProductSummary{a, b, c})
		assert.Equal(t, []domain.ProductSummary{a, b, c}, got)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, dedupeProducts([]domain.ProductSummary{}))
	})
}
