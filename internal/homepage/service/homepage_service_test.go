package service

import (
	"context"
	"errors"
	"testing"
	"time"

	cDomain "github.com/galihpp/storefront-catalog/internal/catalog/domain"
	hDomain "github.com/galihpp/storefront-catalog/internal/homepage/domain"
	"github.com/galihpp/storefront-catalog/internal/homepage/repository/mocks"
	"github.com/stretchr/testify/assert"
)

func newServiceAt(repo *mocks.MockHomepageRepository, now time.Time) HomepageService {
	svc := NewHomepageService(repo).(*homepageServiceImpl)
	svc.nowFn = func() time.Time { return now }
	return svc
}

func expectEmptySlices(m *mocks.MockHomepageRepository, ctx context.Context) {
	m.On("ListFeaturedSections", ctx).Return([]hDomain.FeaturedSection{}, nil)
	m.On("TopCategories", ctx, sliceLimit).Return([]cDomain.Category{}, nil)
	m.On("TopBrands", ctx, sliceLimit).Return([]cDomain.Brand{}, nil)
}

func TestHomepageService_BannerWindow(t *testing.T) {
	ctx := context.TODO()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	windowed := hDomain.Banner{ID: "bn1", Title: "June Sale", IsActive: true, StartsAt: &start, EndsAt: &end}

	tests := []struct {
		name     string
		now      time.Time
		included bool
	}{
		{"Just before start excludes", start.Add(-time.Second), false},
		{"At start includes", start, true},
		{"Mid window includes", start.AddDate(0, 0, 14), true},
		{"At end includes", end, true},
		{"Just after end excludes", end.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockHomepageRepository)
			mockRepo.On("ListActiveBanners", ctx).Return([]hDomain.Banner{windowed}, nil).Once()
			expectEmptySlices(mockRepo, ctx)

			feed, err := newServiceAt(mockRepo, tt.now).GetHomepage(ctx)

			assert.NoError(t, err)
			if tt.included {
				assert.Len(t, feed.Banners, 1)
			} else {
				assert.Empty(t, feed.Banners)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHomepageService_BannerWithoutWindow(t *testing.T) {
	ctx := context.TODO()
	open := hDomain.Banner{ID: "bn2", Title: "Evergreen", IsActive: true}
	flaggedOff := hDomain.Banner{ID: "bn3", Title: "Disabled", IsActive: false}

	mockRepo := new(mocks.MockHomepageRepository)
	mockRepo.On("ListActiveBanners", ctx).Return([]hDomain.Banner{open, flaggedOff}, nil).Once()
	expectEmptySlices(mockRepo, ctx)

	feed, err := newServiceAt(mockRepo, time.Now()).GetHomepage(ctx)

	assert.NoError(t, err)
	if assert.Len(t, feed.Banners, 1) {
		assert.Equal(t, "bn2", feed.Banners[0].ID)
	}
}

func TestHomepageService_AssemblesAllSlices(t *testing.T) {
	ctx := context.TODO()
	banners := []hDomain.Banner{{ID: "bn1", IsActive: true}}
	sections := []hDomain.FeaturedSection{{ID: "fs1", Title: "Staff Picks", Products: []cDomain.ProductSummary{{ID: "prod1"}}}}
	categories := []cDomain.Category{{ID: "cat1", Slug: "shoes"}}
	brands := []cDomain.Brand{{ID: "brand1", Slug: "acme"}}

	mockRepo := new(mocks.MockHomepageRepository)
	mockRepo.On("ListActiveBanners", ctx).Return(banners, nil).Once()
	mockRepo.On("ListFeaturedSections", ctx).Return(sections, nil).Once()
	mockRepo.On("TopCategories", ctx, sliceLimit).Return(categories, nil).Once()
	mockRepo.On("TopBrands", ctx, sliceLimit).Return(brands, nil).Once()

	feed, err := newServiceAt(mockRepo, time.Now()).GetHomepage(ctx)

	assert.NoError(t, err)
	assert.Equal(t, banners, feed.Banners)
	assert.Equal(t, sections, feed.FeaturedSections)
	assert.Equal(t, categories, feed.Categories)
	assert.Equal(t, brands, feed.Brands)
	mockRepo.AssertExpectations(t)
}

func TestHomepageService_SliceFailureFailsWholeFeed(t *testing.T) {
	ctx := context.TODO()

	t.Run("Banner fetch error", func(t *testing.T) {
		mockRepo := new(mocks.MockHomepageRepository)
		mockRepo.On("ListActiveBanners", ctx).Return(nil, errors.New("db error"))
		expectEmptySlices(mockRepo, ctx)

		feed, err := newServiceAt(mockRepo, time.Now()).GetHomepage(ctx)

		assert.Error(t, err)
		assert.Nil(t, feed)
	})

	t.Run("Brand fetch error", func(t *testing.T) {
		mockRepo := new(mocks.MockHomepageRepository)
		mockRepo.On("ListActiveBanners", ctx).Return([]hDomain.Banner{}, nil)
		mockRepo.On("ListFeaturedSections", ctx).Return([]hDomain.FeaturedSection{}, nil)
		mockRepo.On("TopCategories", ctx, sliceLimit).Return([]cDomain.Category{}, nil)
		mockRepo.On("TopBrands", ctx, sliceLimit).Return(nil, errors.New("db error"))

		feed, err := newServiceAt(mockRepo, time.Now()).GetHomepage(ctx)

		assert.Error(t, err)
		assert.Nil(t, feed)
	})
}
