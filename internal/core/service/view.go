package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ViewStore = (*ViewService)(nil)

var ErrInvalidLayout = errors.New("invalid layout view")

// ViewService holds the UI-only listing layout preference. It shares
// nothing with the cart state beyond the store mechanism.
type ViewService struct {
	mu     sync.Mutex
	layout domain.LayoutView
}

func NewViewService() *ViewService {
	return &ViewService{layout: domain.LayoutCard}
}

func (s *ViewService) Layout() domain.LayoutView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

func (s *ViewService) SetLayout(v domain.LayoutView) error {
	const op = "ViewService.SetLayout"

	if !v.Valid() {
		return fmt.Errorf("%s: %w", op, ErrInvalidLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = v
	return nil
}
