package service

import (
	"context"
	"sync"
	"time"

	cDomain "github.com/galihpp/storefront-catalog/internal/catalog/domain"
	"github.com/galihpp/storefront-catalog/internal/homepage/domain"
	"github.com/galihpp/storefront-catalog/internal/homepage/repository"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
)

// Homepage shows at most this many categories and brands.
const sliceLimit = 20

type HomepageService interface {
	GetHomepage(ctx context.Context) (*domain.Feed, error)
}

type homepageServiceImpl struct {
	repo  repository.HomepageRepository
	nowFn func() time.Time
}

func NewHomepageService(repo repository.HomepageRepository) HomepageService {
	return &homepageServiceImpl{
		repo:  repo,
		nowFn: time.Now,
	}
}

// GetHomepage assembles the feed from four independent slices. The slices
// are fetched concurrently; if any of them fails the whole request fails,
// since a silently partial homepage would mislead the client.
func (s *homepageServiceImpl) GetHomepage(ctx context.Context) (*domain.Feed, error) {
	// One timestamp for the whole request so every banner in the slice is
	// judged against the same instant.
	now := s.nowFn()

	var (
		wg       sync.WaitGroup
		banners  []domain.Banner
		sections []domain.FeaturedSection
		cats     []cDomain.Category
		brands   []cDomain.Brand
	)
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		banners, errs[0] = s.repo.ListActiveBanners(ctx)
	}()
	go func() {
		defer wg.Done()
		sections, errs[1] = s.repo.ListFeaturedSections(ctx)
	}()
	go func() {
		defer wg.Done()
		cats, errs[2] = s.repo.TopCategories(ctx, sliceLimit)
	}()
	go func() {
		defer wg.Done()
		brands, errs[3] = s.repo.TopBrands(ctx, sliceLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logger.Error("GetHomepage: slice fetch failed", err, nil)
			return nil, err
		}
	}

	// Fetch-then-filter: the window predicate is derived state the store
	// cannot be relied on to push down.
	active := make([]domain.Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsCurrentlyActive(now) {
			active = append(active, b)
		}
	}

	return &domain.Feed{
		Banners:          active,
		FeaturedSections: sections,
		Categories:       cats,
		Brands:           brands,
	}, nil
}
