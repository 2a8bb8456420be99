package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewService(t *testing.T) {
	t.Run("DefaultsToCardLayout", func(t *testing.T) {
		view := service.NewViewService()
		assert.Equal(t, domain.LayoutCard, view.Layout())
	})

	t.Run("SetLayout", func(t *testing.T) {
		view := service.NewViewService()

		require.NoError(t, view.SetLayout(domain.LayoutList))
		assert.Equal(t, domain.LayoutList, view.Layout())
	})

	t.Run("RejectsUnknownLayout", func(t *testing.T) {
		view := service.NewViewService()

		err := view.SetLayout(domain.LayoutView("grid"))
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInvalidLayout)
		assert.Equal(t, domain.LayoutCard, view.Layout())
	})
}
