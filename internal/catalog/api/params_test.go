package api

import (
	"net/url"
	"testing"

	"github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseProductFilter(t *testing.T) {
	t.Run("Empty query imposes no constraints", func(t *testing.T) {
		filter, err := parseProductFilter(url.Values{})
		assert.NoError(t, err)
		assert.Empty(t, filter.CategorySlugs)
		assert.Empty(t, filter.BrandSlugs)
		assert.Nil(t, filter.MinPrice)
		assert.Nil(t, filter.MaxPrice)
		assert.False(t, filter.FeaturedOnly)
		assert.False(t, filter.OnSaleOnly)
		assert.Empty(t, filter.Search)
		assert.Equal(t, domain.DefaultOrdering(), filter.Ordering)
	})

	t.Run("Comma lists are split and trimmed", func(t *testing.T) {
		q := url.Values{"category": {" shoes , bags,, "}, "brand": {"acme"}}
		filter, err := parseProductFilter(q)
		assert.NoError(t, err)
		assert.Equal(t, []string{"shoes", "bags"}, filter.CategorySlugs)
		assert.Equal(t, []string{"acme"}, filter.BrandSlugs)
	})

	t.Run("Valid price bounds", func(t *testing.T) {
		q := url.Values{"min_price": {"19.99"}, "max_price": {"120"}}
		filter, err := parseProductFilter(q)
		assert.NoError(t, err)
		if assert.NotNil(t, filter.MinPrice) {
			assert.Equal(t, "19.99", filter.MinPrice.String())
		}
		if assert.NotNil(t, filter.MaxPrice) {
			assert.Equal(t, "120", filter.MaxPrice.String())
		}
	})

	t.Run("Malformed price bounds fail the request", func(t *testing.T) {
		_, err := parseProductFilter(url.Values{"min_price": {"cheap"}})
		assert.ErrorContains(t, err, "min_price")

		_, err = parseProductFilter(url.Values{"max_price": {"12,50"}})
		assert.ErrorContains(t, err, "max_price")
	})

	t.Run("Flag filters only activate on literal true", func(t *testing.T) {
		on := []string{"true", "TRUE", "True", " true "}
		for _, v := range on {
			filter, err := parseProductFilter(url.Values{"is_featured": {v}, "on_sale": {v}})
			assert.NoError(t, err)
			assert.True(t, filter.FeaturedOnly, "value %q", v)
			assert.True(t, filter.OnSaleOnly, "value %q", v)
		}

		// "false" is a no-op, not a negated filter
		off := []string{"false", "FALSE", "1", "yes", "0", ""}
		for _, v := range off {
			filter, err := parseProductFilter(url.Values{"is_featured": {v}, "on_sale": {v}})
			assert.NoError(t, err)
			assert.False(t, filter.FeaturedOnly, "value %q", v)
			assert.False(t, filter.OnSaleOnly, "value %q", v)
		}
	})

	t.Run("Ordering accepts whitelisted fields with optional minus", func(t *testing.T) {
		filter, err := parseProductFilter(url.Values{"ordering": {"-price"}})
		assert.NoError(t, err)
		assert.Equal(t, domain.Ordering{Field: domain.OrderByPrice, Descending: true}, filter.Ordering)

		filter, err = parseProductFilter(url.Values{"ordering": {"title"}})
		assert.NoError(t, err)
		assert.Equal(t, domain.Ordering{Field: domain.OrderByTitle}, filter.Ordering)
	})

	t.Run("Unknown ordering field fails the request", func(t *testing.T) {
		_, err := parseProductFilter(url.Values{"ordering": {"stock"}})
		assert.ErrorContains(t, err, "ordering")
	})

	t.Run("Search text is trimmed", func(t *testing.T) {
		filter, err := parseProductFilter(url.Values{"search": {"  running shoes "}})
		assert.NoError(t, err)
		assert.Equal(t, "running shoes", filter.Search)
	})
}
