package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartStore = (*CartService)(nil)

// CartService owns the single in-process cart snapshot and drives the
// reconcile protocol: every accepted mutation is followed by a full
// refresh from the backend, never by a locally computed merge.
//
// Mutation plus refresh run as one critical section per service
// instance, so concurrent mutations cannot interleave their refresh
// reads.
type CartService struct {
	mu       sync.Mutex
	notifyMu sync.Mutex
	backend  port.CommerceBackend
	events   port.CartEventsProducer
	snapshot domain.Cart
	subs     []func(domain.Cart)
}

// NewCartService creates the store with an empty snapshot. The events
// producer is optional; pass nil to disable telemetry.
func NewCartService(
	backend port.CommerceBackend, events port.CartEventsProducer,
) *CartService {
	return &CartService{
		backend:  backend,
		events:   events,
		snapshot: domain.EmptyCart(),
	}
}

// Snapshot returns the current cart value. It is stale-but-consistent
// between refreshes; callers must not edit it.
func (s *CartService) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// ItemCount is derived from the snapshot and has no independent storage.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.ItemCount
}

// Subscribe registers an observer called with every new snapshot, in
// mutation order. Observers may read the store from the callback but
// must not mutate it.
func (s *CartService) Subscribe(fn func(domain.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Refresh re-reads authoritative state from the backend. An
// unreachable backend yields the defined empty cart, never an error;
// the same policy applies to post-mutation refreshes.
func (s *CartService) Refresh(ctx context.Context) domain.Cart {
	s.mu.Lock()
	return s.reconcileLocked(ctx)
}

// reconcileLocked re-reads authoritative state and replaces the
// snapshot, falling back to the empty cart when the backend is
// unreachable. It is entered holding mu and returns with mu released:
// the notify lock is chained before mu drops, so observers see
// snapshots in mutation order and may read the store while notified.
func (s *CartService) reconcileLocked(ctx context.Context) domain.Cart {
	const op = "CartService.reconcileLocked"

	cart, err := s.backend.Cart(ctx)
	if err != nil {
		slog.With("op", op).Warn(
			"falling back to empty cart", "err", err,
		)
		cart = domain.EmptyCart()
	}

	s.snapshot = cart
	subs := slices.Clone(s.subs)

	s.notifyMu.Lock()
	s.mu.Unlock()
	for _, fn := range subs {
		fn(cart)
	}
	s.notifyMu.Unlock()
	return cart
}

// AddItem adds a product to the cart and reconciles. A missing
// product identity is rejected locally without a network call.
func (s *CartService) AddItem(
	ctx context.Context,
	productID, quantity int,
	variation []domain.ItemVariation,
) (domain.Cart, error) {
	const op = "CartService.AddItem"

	if productID <= 0 {
		return s.Snapshot(), fmt.Errorf("%s: %w", op, domain.ErrMissingProductID)
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if err := s.backend.AddItem(ctx, productID, quantity, variation); err != nil {
		cart := s.snapshot
		s.mu.Unlock()
		return cart, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.reconcileLocked(ctx)
	s.emit(ctx, domain.CartEvent{
		Type:      domain.CartEventAdd,
		ProductID: productID,
		Quantity:  quantity,
		ItemCount: cart.ItemCount,
	})
	return cart, nil
}

// RemoveItem removes a cart line by key and reconciles. An empty key
// is rejected locally without a network call.
func (s *CartService) RemoveItem(
	ctx context.Context, itemKey string,
) (domain.Cart, error) {
	const op = "CartService.RemoveItem"

	if itemKey == "" {
		return s.Snapshot(), fmt.Errorf("%s: %w", op, domain.ErrMissingItemKey)
	}

	s.mu.Lock()
	return s.removeLocked(ctx, op, itemKey)
}

// removeLocked is entered holding mu and returns with mu released.
func (s *CartService) removeLocked(
	ctx context.Context, op, itemKey string,
) (domain.Cart, error) {
	if err := s.backend.RemoveItem(ctx, itemKey); err != nil {
		cart := s.snapshot
		s.mu.Unlock()
		return cart, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.reconcileLocked(ctx)
	s.emit(ctx, domain.CartEvent{
		Type:      domain.CartEventRemove,
		ItemKey:   itemKey,
		ItemCount: cart.ItemCount,
	})
	return cart, nil
}

// SetItemQuantity updates a cart line quantity and reconciles.
// Quantity zero is not a storable line state and redirects to removal.
func (s *CartService) SetItemQuantity(
	ctx context.Context, itemKey string, quantity int,
) (domain.Cart, error) {
	const op = "CartService.SetItemQuantity"

	if itemKey == "" {
		return s.Snapshot(), fmt.Errorf("%s: %w", op, domain.ErrMissingItemKey)
	}

	s.mu.Lock()

	if quantity == 0 {
		return s.removeLocked(ctx, op, itemKey)
	}

	if err := s.backend.UpdateItem(ctx, itemKey, quantity); err != nil {
		cart := s.snapshot
		s.mu.Unlock()
		return cart, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.reconcileLocked(ctx)
	s.emit(ctx, domain.CartEvent{
		Type:      domain.CartEventUpdate,
		ItemKey:   itemKey,
		Quantity:  quantity,
		ItemCount: cart.ItemCount,
	})
	return cart, nil
}

func (s *CartService) emit(ctx context.Context, ev domain.CartEvent) {
	const op = "CartService.emit"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceCartEvent(ctx, ev); err != nil {
		slog.With("op", op).Warn("failed to produce cart event", "err", err)
	}
}
