package mocks

import (
	"context"

	cDomain "github.com/galihpp/storefront-catalog/internal/catalog/domain"
	hDomain "github.com/galihpp/storefront-catalog/internal/homepage/domain"

	"github.com/stretchr/testify/mock"
)

type MockHomepageRepository struct {
	mock.Mock
}

func (m *MockHomepageRepository) ListActiveBanners(ctx context.Context) ([]hDomain.Banner, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]hDomain.Banner), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHomepageRepository) ListFeaturedSections(ctx context.Context) ([]hDomain.FeaturedSection, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]hDomain.FeaturedSection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHomepageRepository) TopCategories(ctx context.Context, limit int) ([]cDomain.Category, error) {
	args := m.Called(ctx, limit)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHomepageRepository) TopBrands(ctx context.Context, limit int) ([]cDomain.Brand, error) {
	args := m.Called(ctx, limit)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}
