package repository

import (
	"fmt"
	"strings"

	"github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/lib/pq"
)

// buildProductPredicate folds the optional filters into one parameterized
// WHERE clause over products p joined to categories c and brands b. Absent
// filters contribute nothing; present filters are ANDed together. The price
// and sale filters each accept a product through its own columns OR through
// one of its variants, expressed as per-condition EXISTS subqueries so that
// min_price and max_price can be satisfied by different variants.
func buildProductPredicate(f domain.ProductFilter) (string, []any) {
	conds := []string{"p.is_active = TRUE"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.CategorySlugs) > 0 {
		conds = append(conds, "c.slug = ANY("+arg(pq.Array(f.CategorySlugs))+")")
	}
	if len(f.BrandSlugs) > 0 {
		conds = append(conds, "b.slug = ANY("+arg(pq.Array(f.BrandSlugs))+")")
	}
	if f.MinPrice != nil {
		ph := arg(*f.MinPrice)
		conds = append(conds, fmt.Sprintf(
			"(p.price >= %s OR EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = p.id AND pv.price >= %s))", ph, ph))
	}
	if f.MaxPrice != nil {
		ph := arg(*f.MaxPrice)
		conds = append(conds, fmt.Sprintf(
			"(p.price <= %s OR EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = p.id AND pv.price <= %s))", ph, ph))
	}
	if f.FeaturedOnly {
		conds = append(conds, "p.is_featured = TRUE")
	}
	if f.OnSaleOnly {
		// The variant branch only requires a sale price to be set, it does not
		// compare it against the variant's own price like the product branch
		// does. TODO: confirm with catalog owners whether the variant branch
		// should also require pv.sale_price < pv.price.
		conds = append(conds,
			"((p.sale_price IS NOT NULL AND p.sale_price < p.price) OR EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = p.id AND pv.sale_price IS NOT NULL))")
	}
	if f.Search != "" {
		ph := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf("(p.title ILIKE %s OR p.description ILIKE %s)", ph, ph))
	}

	return strings.Join(conds, " AND "), args
}

// orderClause maps a validated ordering onto product columns, with p.id as a
// tiebreaker so the result order is deterministic for a given snapshot.
func orderClause(o domain.Ordering) string {
	var col string
	switch o.Field {
	case domain.OrderByPrice:
		col = "p.price"
	case domain.OrderByTitle:
		col = "p.title"
	default:
		col = "p.created_at"
	}
	dir := "ASC"
	if o.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, p.id ASC", col, dir)
}

// dedupeProducts drops repeated product identities, keeping the first
// occurrence. Any query that reaches into variants for an OR-branch can in
// principle yield a product more than once, so the list path always runs
// this before handing rows to the caller.
func dedupeProducts(products []domain.ProductSummary) []domain.ProductSummary {
	seen := make(map[string]struct{}, len(products))
	out := products[:0]
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
