package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// parseProductFilter turns the raw product-list query string into a typed
// filter. Malformed numeric bounds and unknown ordering fields fail the
// request instead of being dropped.
func parseProductFilter(q url.Values) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{Ordering: domain.DefaultOrdering()}

	filter.CategorySlugs = splitSlugList(q.Get("category"))
	filter.BrandSlugs = splitSlugList(q.Get("brand"))

	if raw := q.Get("min_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid min_price %q", raw)
		}
		filter.MinPrice = &d
	}
	if raw := q.Get("max_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid max_price %q", raw)
		}
		filter.MaxPrice = &d
	}

	filter.FeaturedOnly = isFilterEnabled(q.Get("is_featured"))
	filter.OnSaleOnly = isFilterEnabled(q.Get("on_sale"))
	filter.Search = strings.TrimSpace(q.Get("search"))

	if raw := q.Get("ordering"); raw != "" {
		ordering, err := parseOrdering(raw)
		if err != nil {
			return filter, err
		}
		filter.Ordering = ordering
	}
	return filter, nil
}

// Only the literal value "true" (case-insensitive) switches a flag filter
// on. Everything else, "false" included, is a no-op: these parameters can
// narrow the result set but never select the negated set.
func isFilterEnabled(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}

// splitSlugList splits a comma-separated slug parameter, trimming tokens and
// discarding empty ones.
func splitSlugList(raw string) []string {
	if raw == "" {
		return nil
	}
	var slugs []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			slugs = append(slugs, token)
		}
	}
	return slugs
}

// parseOrdering accepts a whitelisted field name with an optional leading
// "-" for descending, e.g. "-price".
func parseOrdering(raw string) (domain.Ordering, error) {
	field, desc := strings.CutPrefix(raw, "-")
	switch field {
	case domain.OrderByPrice, domain.OrderByCreatedAt, domain.OrderByTitle:
		return domain.Ordering{Field: field, Descending: desc}, nil
	}
	return domain.Ordering{}, fmt.Errorf("unknown ordering field %q", raw)
}
