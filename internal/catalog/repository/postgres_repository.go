package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
	"github.com/lib/pq"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
)

type CatalogRepository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductSummary, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.ProductDetail, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.CategoryDetail, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*domain.BrandDetail, error)
	CountCatalog(ctx context.Context) (*domain.CatalogStats, error)
}

type postgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) CatalogRepository {
	return &postgresCatalogRepository{db: db}
}

const productSummarySelect = `SELECT p.id, p.slug, p.title, p.price, p.sale_price, p.created_at,
	c.id, c.slug, c.name,
	b.id, b.slug, b.name,
	(SELECT i.url FROM product_images i WHERE i.product_id = p.id ORDER BY i.sort_order, i.id LIMIT 1)
FROM products p
JOIN categories c ON c.id = p.category_id
LEFT JOIN brands b ON b.id = p.brand_id`

func (r *postgresCatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductSummary, error) {
	where, args := buildProductPredicate(filter)
	query := productSummarySelect + " WHERE " + where + " ORDER BY " + orderClause(filter.Ordering)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.ProductSummary{}
	for rows.Next() {
		p, err := scanProductSummary(rows)
		if err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}

	// Mandatory: a product may satisfy a variant OR-branch more than once.
	return dedupeProducts(products), nil
}

func scanProductSummary(rows *sql.Rows) (domain.ProductSummary, error) {
	var p domain.ProductSummary
	var cat domain.CategorySummary
	var brandID, brandSlug, brandName, primaryImage sql.NullString
	err := rows.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Price, &p.SalePrice, &p.CreatedAt,
		&cat.ID, &cat.Slug, &cat.Name,
		&brandID, &brandSlug, &brandName,
		&primaryImage,
	)
	if err != nil {
		return domain.ProductSummary{}, err
	}
	p.Category = &cat
	if brandID.Valid {
		p.Brand = &domain.BrandSummary{ID: brandID.String, Slug: brandSlug.String, Name: brandName.String}
	}
	p.PrimaryImage = primaryImage.String
	return p, nil
}

func (r *postgresCatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	details, err := r.productDetailsWhere(ctx, "p.is_active = TRUE AND p.slug = $1", slug)
	if err != nil {
		logger.Error("GetProductBySlug: query failed", err)
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrProductNotFound
	}
	return &details[0], nil
}

const productDetailSelect = `SELECT p.id, p.slug, p.title, p.description, p.price, p.sale_price, p.is_featured, p.created_at,
	c.id, c.slug, c.name,
	b.id, b.slug, b.name
FROM products p
JOIN categories c ON c.id = p.category_id
LEFT JOIN brands b ON b.id = p.brand_id`

// productDetailsWhere loads full product projections matching the given
// condition, then resolves their images and variants in bulk.
func (r *postgresCatalogRepository) productDetailsWhere(ctx context.Context, where string, args ...any) ([]domain.ProductDetail, error) {
	query := productDetailSelect + " WHERE " + where + " ORDER BY p.created_at DESC, p.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []domain.ProductDetail{}
	ids := []string{}
	for rows.Next() {
		var d domain.ProductDetail
		var cat domain.CategorySummary
		var brandID, brandSlug, brandName sql.NullString
		err := rows.Scan(
			&d.ID, &d.Slug, &d.Title, &d.Description, &d.Price, &d.SalePrice, &d.IsFeatured, &d.CreatedAt,
			&cat.ID, &cat.Slug, &cat.Name,
			&brandID, &brandSlug, &brandName,
		)
		if err != nil {
			return nil, err
		}
		d.Category = &cat
		if brandID.Valid {
			d.Brand = &domain.BrandSummary{ID: brandID.String, Slug: brandSlug.String, Name: brandName.String}
		}
		d.Images = []domain.Image{}
		d.Variants = []domain.Variant{}
		details = append(details, d)
		ids = append(ids, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return details, nil
	}

	images, err := r.imagesByProduct(ctx, ids)
	if err != nil {
		return nil, err
	}
	variants, err := r.variantsByProduct(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range details {
		if imgs, ok := images[details[i].ID]; ok {
			details[i].Images = imgs
		}
		if vars, ok := variants[details[i].ID]; ok {
			details[i].Variants = vars
		}
	}
	return details, nil
}

func (r *postgresCatalogRepository) imagesByProduct(ctx context.Context, productIDs []string) (map[string][]domain.Image, error) {
	query := `SELECT i.product_id, i.url, COALESCE(i.alt_text, ''), i.sort_order
		FROM product_images i
		WHERE i.product_id = ANY($1)
		ORDER BY i.product_id, i.sort_order, i.id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := map[string][]domain.Image{}
	for rows.Next() {
		var productID string
		var img domain.Image
		if err := rows.Scan(&productID, &img.URL, &img.AltText, &img.SortOrder); err != nil {
			return nil, err
		}
		images[productID] = append(images[productID], img)
	}
	return images, rows.Err()
}

func (r *postgresCatalogRepository) variantsByProduct(ctx context.Context, productIDs []string) (map[string][]domain.Variant, error) {
	query := `SELECT v.id, v.product_id, COALESCE(v.sku, ''), v.price, v.sale_price
		FROM product_variants v
		WHERE v.product_id = ANY($1)
		ORDER BY v.product_id, v.id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := map[string][]domain.Variant{}
	variantIDs := []string{}
	owners := map[string]string{} // variant id -> product id
	for rows.Next() {
		var v domain.Variant
		var productID string
		if err := rows.Scan(&v.ID, &productID, &v.SKU, &v.Price, &v.SalePrice); err != nil {
			return nil, err
		}
		v.Attributes = []domain.VariantAttribute{}
		variants[productID] = append(variants[productID], v)
		variantIDs = append(variantIDs, v.ID)
		owners[v.ID] = productID
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(variantIDs) == 0 {
		return variants, nil
	}

	attrs, err := r.attributesByVariant(ctx, variantIDs)
	if err != nil {
		return nil, err
	}
	for variantID, productID := range owners {
		assigned, ok := attrs[variantID]
		if !ok {
			continue
		}
		vs := variants[productID]
		for i := range vs {
			if vs[i].ID == variantID {
				vs[i].Attributes = assigned
				break
			}
		}
	}
	return variants, nil
}

// attributesByVariant resolves attribute assignments to readable
// attribute-type / attribute-value pairs.
func (r *postgresCatalogRepository) attributesByVariant(ctx context.Context, variantIDs []string) (map[string][]domain.VariantAttribute, error) {
	query := `SELECT va.variant_id, t.name, av.value
		FROM variant_attributes va
		JOIN attribute_values av ON av.id = va.attribute_value_id
		JOIN attribute_types t ON t.id = av.attribute_type_id
		WHERE va.variant_id = ANY($1)
		ORDER BY va.variant_id, t.name`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(variantIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attrs := map[string][]domain.VariantAttribute{}
	for rows.Next() {
		var variantID string
		var a domain.VariantAttribute
		if err := rows.Scan(&variantID, &a.Type, &a.Value); err != nil {
			return nil, err
		}
		attrs[variantID] = append(attrs[variantID], a)
	}
	return attrs, rows.Err()
}

const categorySelect = `SELECT c.id, c.slug, c.name, COALESCE(c.image_url, ''), c.created_at,
	(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id AND p.is_active = TRUE)
FROM categories c`

func (r *postgresCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := categorySelect + " WHERE c.is_active = TRUE ORDER BY c.created_at ASC, c.id ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCategories: query failed", err)
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.ImageURL, &c.CreatedAt, &c.ProductCount); err != nil {
			logger.Error("ListCategories: scan failed", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresCatalogRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.CategoryDetail, error) {
	query := categorySelect + " WHERE c.is_active = TRUE AND c.slug = $1"

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&c.ID, &c.Slug, &c.Name, &c.ImageURL, &c.CreatedAt, &c.ProductCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		logger.Error("GetCategoryBySlug: query failed", err)
		return nil, err
	}

	products, err := r.productDetailsWhere(ctx, "p.is_active = TRUE AND p.category_id = $1", c.ID)
	if err != nil {
		logger.Error("GetCategoryBySlug: products query failed", err)
		return nil, err
	}
	return &domain.CategoryDetail{Category: c, Products: products}, nil
}

const brandSelect = `SELECT b.id, b.slug, b.name, COALESCE(b.logo_url, ''), b.created_at,
	(SELECT COUNT(*) FROM products p WHERE p.brand_id = b.id AND p.is_active = TRUE)
FROM brands b`

func (r *postgresCatalogRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	query := brandSelect + " WHERE b.is_active = TRUE ORDER BY b.created_at ASC, b.id ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListBrands: query failed", err)
		return nil, err
	}
	defer rows.Close()

	brands := []domain.Brand{}
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Slug, &b.Name, &b.LogoURL, &b.CreatedAt, &b.ProductCount); err != nil {
			logger.Error("ListBrands: scan failed", err)
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *postgresCatalogRepository) GetBrandBySlug(ctx context.Context, slug string) (*domain.BrandDetail, error) {
	query := brandSelect + " WHERE b.is_active = TRUE AND b.slug = $1"

	var b domain.Brand
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&b.ID, &b.Slug, &b.Name, &b.LogoURL, &b.CreatedAt, &b.ProductCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		logger.Error("GetBrandBySlug: query failed", err)
		return nil, err
	}

	products, err := r.productDetailsWhere(ctx, "p.is_active = TRUE AND p.brand_id = $1", b.ID)
	if err != nil {
		logger.Error("GetBrandBySlug: products query failed", err)
		return nil, err
	}
	return &domain.BrandDetail{Brand: b, Products: products}, nil
}

func (r *postgresCatalogRepository) CountCatalog(ctx context.Context) (*domain.CatalogStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM products WHERE is_active = TRUE),
		(SELECT COUNT(*) FROM categories WHERE is_active = TRUE),
		(SELECT COUNT(*) FROM brands WHERE is_active = TRUE)`

	var stats domain.CatalogStats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.ActiveProducts, &stats.ActiveCategories, &stats.ActiveBrands)
	if err != nil {
		logger.Error("CountCatalog: query failed", err)
		return nil, err
	}
	return &stats, nil
}
