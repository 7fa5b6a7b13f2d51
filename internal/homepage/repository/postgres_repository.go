package repository

import (
	"context"
	"database/sql"

	cDomain "github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/galihpp/storefront-catalog/internal/homepage/domain"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
	"github.com/lib/pq"
)

type HomepageRepository interface {
	// ListActiveBanners returns flag-active banners only; the time-window
	// check is derived state and stays with the caller.
	ListActiveBanners(ctx context.Context) ([]domain.Banner, error)
	ListFeaturedSections(ctx context.Context) ([]domain.FeaturedSection, error)
	TopCategories(ctx context.Context, limit int) ([]cDomain.Category, error)
	TopBrands(ctx context.Context, limit int) ([]cDomain.Brand, error)
}

type postgresHomepageRepository struct {
	db *sql.DB
}

func NewPostgresHomepageRepository(db *sql.DB) HomepageRepository {
	return &postgresHomepageRepository{db: db}
}

func (r *postgresHomepageRepository) ListActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	query := `SELECT bn.id, bn.title, bn.image_url, bn.is_active, bn.starts_at, bn.ends_at,
		p.id, p.slug, p.title, p.price, p.sale_price, p.created_at
	FROM banners bn
	LEFT JOIN products p ON p.id = bn.link_product_id AND p.is_active = TRUE
	WHERE bn.is_active = TRUE
	ORDER BY bn.sort_order, bn.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListActiveBanners: query failed", err)
		return nil, err
	}
	defer rows.Close()

	banners := []domain.Banner{}
	for rows.Next() {
		var b domain.Banner
		var startsAt, endsAt sql.NullTime
		var prodID, prodSlug, prodTitle sql.NullString
		var prodPrice sql.NullString
		var prodSalePrice sql.NullString
		var prodCreatedAt sql.NullTime
		err := rows.Scan(
			&b.ID, &b.Title, &b.ImageURL, &b.IsActive, &startsAt, &endsAt,
			&prodID, &prodSlug, &prodTitle, &prodPrice, &prodSalePrice, &prodCreatedAt,
		)
		if err != nil {
			logger.Error("ListActiveBanners: scan failed", err)
			return nil, err
		}
		if startsAt.Valid {
			b.StartsAt = &startsAt.Time
		}
		if endsAt.Valid {
			b.EndsAt = &endsAt.Time
		}
		if prodID.Valid {
			summary, err := linkedProductSummary(prodID.String, prodSlug.String, prodTitle.String, prodPrice, prodSalePrice, prodCreatedAt)
			if err != nil {
				logger.Error("ListActiveBanners: linked product decode failed", err)
				return nil, err
			}
			b.LinkProduct = summary
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func linkedProductSummary(id, slug, title string, price, salePrice sql.NullString, createdAt sql.NullTime) (*cDomain.ProductSummary, error) {
	summary := &cDomain.ProductSummary{ID: id, Slug: slug, Title: title, CreatedAt: createdAt.Time}
	if price.Valid {
		if err := summary.Price.Scan(price.String); err != nil {
			return nil, err
		}
	}
	if salePrice.Valid {
		if err := summary.SalePrice.Scan(salePrice.String); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

func (r *postgresHomepageRepository) ListFeaturedSections(ctx context.Context) ([]domain.FeaturedSection, error) {
	query := `SELECT fs.id, fs.title, c.id, c.slug, c.name
	FROM featured_sections fs
	LEFT JOIN categories c ON c.id = fs.category_id AND c.is_active = TRUE
	WHERE fs.is_active = TRUE
	ORDER BY fs.sort_order, fs.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListFeaturedSections: query failed", err)
		return nil, err
	}
	defer rows.Close()

	sections := []domain.FeaturedSection{}
	sectionIDs := []string{}
	for rows.Next() {
		var s domain.FeaturedSection
		var catID, catSlug, catName sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &catID, &catSlug, &catName); err != nil {
			logger.Error("ListFeaturedSections: scan failed", err)
			return nil, err
		}
		if catID.Valid {
			s.Category = &cDomain.CategorySummary{ID: catID.String, Slug: catSlug.String, Name: catName.String}
		}
		s.Products = []cDomain.ProductSummary{}
		sections = append(sections, s)
		sectionIDs = append(sectionIDs, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sectionIDs) == 0 {
		return sections, nil
	}

	products, err := r.sectionProducts(ctx, sectionIDs)
	if err != nil {
		logger.Error("ListFeaturedSections: products query failed", err)
		return nil, err
	}
	for i := range sections {
		if ps, ok := products[sections[i].ID]; ok {
			sections[i].Products = ps
		}
	}
	return sections, nil
}

// sectionProducts bulk-fetches the active products linked to each section.
// A section's product list is curated independently of the products' own
// featured flags.
func (r *postgresHomepageRepository) sectionProducts(ctx context.Context, sectionIDs []string) (map[string][]cDomain.ProductSummary, error) {
	query := `SELECT sp.section_id, p.id, p.slug, p.title, p.price, p.sale_price, p.created_at,
		(SELECT i.url FROM product_images i WHERE i.product_id = p.id ORDER BY i.sort_order, i.id LIMIT 1)
	FROM featured_section_products sp
	JOIN products p ON p.id = sp.product_id AND p.is_active = TRUE
	WHERE sp.section_id = ANY($1)
	ORDER BY sp.section_id, sp.sort_order, p.id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(sectionIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := map[string][]cDomain.ProductSummary{}
	for rows.Next() {
		var sectionID string
		var p cDomain.ProductSummary
		var primaryImage sql.NullString
		err := rows.Scan(&sectionID, &p.ID, &p.Slug, &p.Title, &p.Price, &p.SalePrice, &p.CreatedAt, &primaryImage)
		if err != nil {
			return nil, err
		}
		p.PrimaryImage = primaryImage.String
		products[sectionID] = append(products[sectionID], p)
	}
	return products, rows.Err()
}

func (r *postgresHomepageRepository) TopCategories(ctx context.Context, limit int) ([]cDomain.Category, error) {
	query := `SELECT c.id, c.slug, c.name, COALESCE(c.image_url, ''), c.created_at,
		(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id AND p.is_active = TRUE)
	FROM categories c
	WHERE c.is_active = TRUE
	ORDER BY c.created_at ASC, c.id ASC
	LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.Error("TopCategories: query failed", err)
		return nil, err
	}
	defer rows.Close()

	categories := []cDomain.Category{}
	for rows.Next() {
		var c cDomain.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.ImageURL, &c.CreatedAt, &c.ProductCount); err != nil {
			logger.Error("TopCategories: scan failed", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresHomepageRepository) TopBrands(ctx context.Context, limit int) ([]cDomain.Brand, error) {
	query := `SELECT b.id, b.slug, b.name, COALESCE(b.logo_url, ''), b.created_at,
		(SELECT COUNT(*) FROM products p WHERE p.brand_id = b.id AND p.is_active = TRUE)
	FROM brands b
	WHERE b.is_active = TRUE
	ORDER BY b.created_at ASC, b.id ASC
	LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.Error("TopBrands: query failed", err)
		return nil, err
	}
	defer rows.Close()

	brands := []cDomain.Brand{}
	for rows.Next() {
		var b cDomain.Brand
		if err := rows.Scan(&b.ID, &b.Slug, &b.Name, &b.LogoURL, &b.CreatedAt, &b.ProductCount); err != nil {
			logger.Error("TopBrands: scan failed", err)
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}
