package mock_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/adapter/mock"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartLifecycle(t *testing.T) {
	t.Run("AddThenSnapshotCountsQuantities", func(t *testing.T) {
		backend := mock.New()
		store := service.NewCartService(backend, nil)

		require.Equal(t, 0, store.ItemCount())

		cart, err := store.AddItem(t.Context(), 42, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, cart.ItemCount)
		assert.Equal(t, 2, store.ItemCount())
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 42, cart.Items[0].ProductID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, "Canvas Tote Bag", cart.Items[0].Name)
		assert.Equal(t, "4800", cart.Totals.TotalPrice)
		assert.True(t, cart.NeedsPayment)
	})

	t.Run("ZeroQuantityEmptiesSingleLineCart", func(t *testing.T) {
		backend := mock.New()
		store := service.NewCartService(backend, nil)

		cart, err := store.AddItem(t.Context(), 42, 2, nil)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)

		cart, err = store.SetItemQuantity(t.Context(), cart.Items[0].Key, 0)
		require.NoError(t, err)

		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.ItemCount)
		assert.Equal(t, "0", cart.Totals.TotalPrice)
		assert.False(t, cart.NeedsPayment)
	})

	t.Run("RepeatedAddMergesIntoOneLine", func(t *testing.T) {
		backend := mock.New()

		require.NoError(t, backend.AddItem(t.Context(), 42, 1, nil))
		require.NoError(t, backend.AddItem(t.Context(), 42, 2, nil))

		cart, err := backend.Cart(t.Context())
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("VariationsKeepSeparateLines", func(t *testing.T) {
		backend := mock.New()
		sizeM := []domain.ItemVariation{{Attribute: "size", Value: "M"}}
		sizeL := []domain.ItemVariation{{Attribute: "size", Value: "L"}}

		require.NoError(t, backend.AddItem(t.Context(), 43, 1, sizeM))
		require.NoError(t, backend.AddItem(t.Context(), 43, 1, sizeL))

		cart, err := backend.Cart(t.Context())
		require.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.NotEqual(t, cart.Items[0].Key, cart.Items[1].Key)
	})

	t.Run("UnknownProductRejected", func(t *testing.T) {
		backend := mock.New()

		err := backend.AddItem(t.Context(), 9999, 1, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("RemoveUnknownKeyRejected", func(t *testing.T) {
		backend := mock.New()

		err := backend.RemoveItem(t.Context(), "no-such-key")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateSetsAbsoluteQuantity", func(t *testing.T) {
		backend := mock.New()

		require.NoError(t, backend.AddItem(t.Context(), 42, 5, nil))
		cart, err := backend.Cart(t.Context())
		require.NoError(t, err)

		require.NoError(t, backend.UpdateItem(t.Context(), cart.Items[0].Key, 1))
		cart, err = backend.Cart(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestProducts(t *testing.T) {
	t.Run("SecondPageOfSinglePageCatalog", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 2, PerPage: domain.DefaultPageSize,
		})
		require.NoError(t, err)

		assert.Empty(t, page.Products)
		assert.False(t, page.PageInfo.HasNextPage)
		assert.True(t, page.PageInfo.HasPreviousPage)
	})

	t.Run("ZeroValueQueryGetsPageDefaults", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{})
		require.NoError(t, err)

		assert.Len(t, page.Products, 6)
		assert.False(t, page.PageInfo.HasNextPage)
		assert.False(t, page.PageInfo.HasPreviousPage)
		assert.Equal(t, "1", page.PageInfo.EndCursor)
	})

	t.Run("FirstPageHasNoPreviousPage", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: domain.DefaultPageSize,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, page.Products)
		assert.False(t, page.PageInfo.HasPreviousPage)
		assert.Equal(t, "1", page.PageInfo.EndCursor)
	})

	t.Run("SmallPageSizePaginates", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: 2,
		})
		require.NoError(t, err)
		assert.Len(t, page.Products, 2)
		assert.True(t, page.PageInfo.HasNextPage)
	})

	t.Run("PriceSortReverseIsAscending", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: 100,
			SortKey: domain.SortPrice, Reverse: true,
		})
		require.NoError(t, err)
		require.NotEmpty(t, page.Products)

		for i := 1; i < len(page.Products); i++ {
			prev := page.Products[i-1].Price
			cur := page.Products[i].Price
			assert.LessOrEqual(t, prev, cur,
				"products out of ascending price order")
		}
	})

	t.Run("BestSellingSortIsDescendingByDefault", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: 100,
			SortKey: domain.SortBestSelling,
		})
		require.NoError(t, err)
		require.NotEmpty(t, page.Products)

		for i := 1; i < len(page.Products); i++ {
			assert.GreaterOrEqual(t,
				page.Products[i-1].TotalSales, page.Products[i].TotalSales)
		}
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: 100, Category: "home-goods",
		})
		require.NoError(t, err)
		require.NotEmpty(t, page.Products)
		for _, p := range page.Products {
			require.NotEmpty(t, p.Categories)
			found := false
			for _, c := range p.Categories {
				if c.Slug == "home-goods" {
					found = true
				}
			}
			assert.True(t, found, "product %d outside category", p.ProductID)
		}
	})

	t.Run("SearchMatchesNameCaseInsensitively", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: 100, Search: "TOTE",
		})
		require.NoError(t, err)
		require.Len(t, page.Products, 1)
		assert.Equal(t, 42, page.Products[0].ProductID)
	})

	t.Run("PriceRangeFilter", func(t *testing.T) {
		backend := mock.New()

		page, err := backend.Products(t.Context(), domain.ProductQuery{
			Page: 1, PerPage: 100, MinPrice: "20", MaxPrice: "40",
		})
		require.NoError(t, err)
		require.Len(t, page.Products, 3)
		for _, p := range page.Products {
			assert.NotEqual(t, 45, p.ProductID)
			assert.NotEqual(t, 46, p.ProductID)
		}
	})
}

func TestProductLookups(t *testing.T) {
	t.Run("BySlug", func(t *testing.T) {
		backend := mock.New()

		p, err := backend.ProductBySlug(t.Context(), "wool-beanie")
		require.NoError(t, err)
		assert.Equal(t, 44, p.ProductID)
	})

	t.Run("BySlugAbsent", func(t *testing.T) {
		backend := mock.New()

		_, err := backend.ProductBySlug(t.Context(), "no-such-slug")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ByID", func(t *testing.T) {
		backend := mock.New()

		p, err := backend.ProductByID(t.Context(), 42)
		require.NoError(t, err)
		assert.Equal(t, "canvas-tote-bag", p.Slug)
	})
}

func TestCategories(t *testing.T) {
	backend := mock.New()

	cs, err := backend.Categories(t.Context())
	require.NoError(t, err)

	bySlug := make(map[string]domain.Collection, len(cs))
	for _, c := range cs {
		bySlug[c.Slug] = c
	}

	require.Contains(t, bySlug, "apparel")
	require.Contains(t, bySlug, "accessories")
	require.Contains(t, bySlug, "home-goods")
	assert.Equal(t, 2, bySlug["home-goods"].Count)
	assert.Equal(t, 3, bySlug["accessories"].Count)
}
