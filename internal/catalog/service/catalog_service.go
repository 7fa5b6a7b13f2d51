package service

import (
	"context"
	"fmt"
	"time"

	"github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/galihpp/storefront-catalog/internal/catalog/repository"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
	"github.com/robfig/cron/v3"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductSummary, error)
	GetProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryDetail(ctx context.Context, slug string) (*domain.CategoryDetail, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	GetBrandDetail(ctx context.Context, slug string) (*domain.BrandDetail, error)
	ReportCatalogStats(ctx context.Context)
}

type catalogServiceImpl struct {
	repo      repository.CatalogRepository
	scheduler *cron.Cron
}

func NewCatalogService(repo repository.CatalogRepository, statsInterval time.Duration) CatalogService {
	s := &catalogServiceImpl{
		repo:      repo,
		scheduler: cron.New(),
	}
	s.initScheduler(statsInterval)
	return s
}

func (s *catalogServiceImpl) initScheduler(statsInterval time.Duration) {
	spec := fmt.Sprintf("@every %s", statsInterval)
	s.scheduler.AddFunc(spec, func() {
		s.ReportCatalogStats(context.Background())
	})
	s.scheduler.Start()
	logger.Info(fmt.Sprintf("Catalog stats scheduler initialized with spec '%s'", spec))
}

// ReportCatalogStats logs active record counts so operators can spot a
// catalog sync gone wrong without querying the database by hand.
func (s *catalogServiceImpl) ReportCatalogStats(ctx context.Context) {
	stats, err := s.repo.CountCatalog(ctx)
	if err != nil {
		logger.Error("ReportCatalogStats: repo error", err, nil)
		return
	}
	logger.Info(fmt.Sprintf("Catalog stats: %d active products, %d active categories, %d active brands",
		stats.ActiveProducts, stats.ActiveCategories, stats.ActiveBrands))
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductSummary, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		logger.Error("Svc.ListProducts: repo error", err, nil)
		return nil, err
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	return s.repo.GetProductBySlug(ctx, slug)
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogServiceImpl) GetCategoryDetail(ctx context.Context, slug string) (*domain.CategoryDetail, error) {
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *catalogServiceImpl) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.repo.ListBrands(ctx)
}

func (s *catalogServiceImpl) GetBrandDetail(ctx context.Context, slug string) (*domain.BrandDetail, error) {
	return s.repo.GetBrandBySlug(ctx, slug)
}
