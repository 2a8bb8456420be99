package service_test

import (
	"errors"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceProducts(t *testing.T) {
	t.Run("PropagatesBackendError", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Products", t.Context(), domain.ProductQuery{}.Normalize()).
			Return(domain.ProductPage{}, domain.ErrBackendUnavailable)

		s := service.NewCatalogService(backend)
		_, err := s.Products(t.Context(), domain.ProductQuery{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})

	t.Run("NormalizesPageDefaults", func(t *testing.T) {
		backend := new(MockBackend)
		want := domain.ProductQuery{
			Page:    1,
			PerPage: domain.DefaultPageSize,
			Search:  "tote",
		}
		backend.On("Products", t.Context(), want).
			Return(domain.ProductPage{}, nil)

		s := service.NewCatalogService(backend)
		_, err := s.Products(t.Context(), domain.ProductQuery{Search: "tote"})
		require.NoError(t, err)
		backend.AssertExpectations(t)
	})
}

func TestCatalogServiceProduct(t *testing.T) {
	t.Run("FoundBySlug", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("ProductBySlug", t.Context(), "canvas-tote-bag").
			Return(domain.Product{ProductID: 42, Slug: "canvas-tote-bag"}, nil)

		s := service.NewCatalogService(backend)
		p, err := s.Product(t.Context(), "canvas-tote-bag")
		require.NoError(t, err)
		assert.Equal(t, 42, p.ProductID)
	})

	t.Run("BackendFailureBecomesNotFound", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("ProductBySlug", t.Context(), "canvas-tote-bag").
			Return(domain.Product{}, errors.New("connection refused"))

		s := service.NewCatalogService(backend)
		_, err := s.Product(t.Context(), "canvas-tote-bag")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("EmptySlugIsAbsentWithoutBackendCall", func(t *testing.T) {
		backend := new(MockBackend)

		s := service.NewCatalogService(backend)
		_, err := s.Product(t.Context(), "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		backend.AssertNotCalled(t, "ProductBySlug", mock.Anything, mock.Anything)
	})
}

func TestCatalogServiceRecommendations(t *testing.T) {
	t.Run("UsesRelatedIDsLimitedToFour", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("ProductByID", t.Context(), 42).Return(domain.Product{
			ProductID:  42,
			RelatedIDs: []int{43, 44, 45, 46, 47},
		}, nil)
		for _, id := range []int{43, 44, 45, 46} {
			backend.On("ProductByID", t.Context(), id).
				Return(domain.Product{ProductID: id}, nil)
		}

		s := service.NewCatalogService(backend)
		ps, err := s.Recommendations(t.Context(), 42)
		require.NoError(t, err)
		require.Len(t, ps, 4)
		backend.AssertNotCalled(t, "ProductByID", t.Context(), 47)
	})

	t.Run("SkipsFailedRelatedLookups", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("ProductByID", t.Context(), 42).Return(domain.Product{
			ProductID:  42,
			RelatedIDs: []int{43, 44},
		}, nil)
		backend.On("ProductByID", t.Context(), 43).
			Return(domain.Product{}, domain.ErrNotFound)
		backend.On("ProductByID", t.Context(), 44).
			Return(domain.Product{ProductID: 44}, nil)

		s := service.NewCatalogService(backend)
		ps, err := s.Recommendations(t.Context(), 42)
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, 44, ps[0].ProductID)
	})

	t.Run("FallsBackToFirstCategory", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("ProductByID", t.Context(), 42).Return(domain.Product{
			ProductID: 42,
			Categories: []domain.ProductCategory{
				{CategoryID: 2, Slug: "accessories"},
			},
		}, nil)
		backend.On("Products", t.Context(), domain.ProductQuery{
			Category: "accessories",
			PerPage:  5,
		}.Normalize()).Return(domain.ProductPage{
			Products: []domain.Product{
				{ProductID: 42}, {ProductID: 44}, {ProductID: 47},
			},
		}, nil)

		s := service.NewCatalogService(backend)
		ps, err := s.Recommendations(t.Context(), 42)
		require.NoError(t, err)
		require.Len(t, ps, 2)
		for _, p := range ps {
			assert.NotEqual(t, 42, p.ProductID)
		}
	})

	t.Run("SourceLookupFailureYieldsEmpty", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("ProductByID", t.Context(), 42).
			Return(domain.Product{}, domain.ErrBackendUnavailable)

		s := service.NewCatalogService(backend)
		ps, err := s.Recommendations(t.Context(), 42)
		require.NoError(t, err)
		assert.Empty(t, ps)
		assert.NotNil(t, ps)
	})
}

func TestCatalogServiceCollections(t *testing.T) {
	t.Run("BackendFailureYieldsEmpty", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Categories", t.Context()).
			Return([]domain.Collection(nil), domain.ErrBackendUnavailable)

		s := service.NewCatalogService(backend)
		cs, err := s.Collections(t.Context())
		require.NoError(t, err)
		assert.Empty(t, cs)
		assert.NotNil(t, cs)
	})
}

func TestCatalogServiceCollectionProducts(t *testing.T) {
	t.Run("ForwardsSortAndSlug", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Products", t.Context(), domain.ProductQuery{
			Page:     1,
			PerPage:  100,
			Category: "apparel",
			SortKey:  domain.SortPrice,
			Reverse:  true,
		}).Return(domain.ProductPage{}, nil)

		s := service.NewCatalogService(backend)
		_, err := s.CollectionProducts(
			t.Context(), "apparel", domain.SortPrice, true,
		)
		require.NoError(t, err)
		backend.AssertExpectations(t)
	})

	t.Run("BackendFailureYieldsEmptyPage", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Products", t.Context(), mock.Anything).
			Return(domain.ProductPage{}, domain.ErrBackendUnavailable)

		s := service.NewCatalogService(backend)
		page, err := s.CollectionProducts(
			t.Context(), "apparel", domain.SortDefault, false,
		)
		require.NoError(t, err)
		assert.Empty(t, page.Products)
		assert.NotNil(t, page.Products)
	})
}
