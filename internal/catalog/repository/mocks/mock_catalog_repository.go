package mocks

import (
	"context"

	cDomain "github.com/galihpp/storefront-catalog/internal/catalog/domain"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, filter cDomain.ProductFilter) ([]cDomain.ProductSummary, error) {
	args := m.Called(ctx, filter)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.ProductSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*cDomain.ProductDetail, error) {
	args := m.Called(ctx, slug)
	if res := args.Get(0); res != nil {
		return res.(*cDomain.ProductDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]cDomain.Category, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetCategoryBySlug(ctx context.Context, slug string) (*cDomain.CategoryDetail, error) {
	args := m.Called(ctx, slug)
	if res := args.Get(0); res != nil {
		return res.(*cDomain.CategoryDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) ListBrands(ctx context.Context) ([]cDomain.Brand, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetBrandBySlug(ctx context.Context, slug string) (*cDomain.BrandDetail, error) {
	args := m.Called(ctx, slug)
	if res := args.Get(0); res != nil {
		return res.(*cDomain.BrandDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) CountCatalog(ctx context.Context) (*cDomain.CatalogStats, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*cDomain.CatalogStats), args.Error(1)
	}
	return nil, args.Error(1)
}
