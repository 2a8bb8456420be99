package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// CommerceBackend is the single capability interface over the remote
// commerce system. Two variants exist: the live adapter and the
// in-memory mock; the choice is fixed at construction and never flips
// mid-session. Implementations are stateless per invocation and hold
// no cart state across calls.
type CommerceBackend interface {
	Cart(context.Context) (domain.Cart, error)
	AddItem(ctx context.Context, productID, quantity int, variation []domain.ItemVariation) error
	RemoveItem(ctx context.Context, itemKey string) error
	UpdateItem(ctx context.Context, itemKey string, quantity int) error

	Products(context.Context, domain.ProductQuery) (domain.ProductPage, error)
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)
	ProductByID(ctx context.Context, productID int) (domain.Product, error)
	Categories(context.Context) ([]domain.Collection, error)
}

// CartStore exposes the reconciled cart snapshot and the mutation
// entry points to inbound adapters. Subscribed observers are called
// in mutation order; they may read the store but must not mutate it
// from the callback.
type CartStore interface {
	Snapshot() domain.Cart
	ItemCount() int
	Refresh(context.Context) domain.Cart
	AddItem(ctx context.Context, productID, quantity int, variation []domain.ItemVariation) (domain.Cart, error)
	RemoveItem(ctx context.Context, itemKey string) (domain.Cart, error)
	SetItemQuantity(ctx context.Context, itemKey string, quantity int) (domain.Cart, error)
	Subscribe(func(domain.Cart))
}

// Catalog exposes the read-only product and collection queries.
type Catalog interface {
	Products(context.Context, domain.ProductQuery) (domain.ProductPage, error)
	Product(ctx context.Context, slug string) (domain.Product, error)
	Recommendations(ctx context.Context, productID int) ([]domain.Product, error)
	Collections(context.Context) ([]domain.Collection, error)
	CollectionProducts(ctx context.Context, collectionSlug string, sortKey domain.SortKey, reverse bool) (domain.ProductPage, error)
}

// CartEventsProducer publishes cart mutation telemetry. Publishing is
// best-effort: a failure never fails the mutation that triggered it.
type CartEventsProducer interface {
	ProduceCartEvent(context.Context, domain.CartEvent) error
}

// ViewStore holds the UI layout preference.
type ViewStore interface {
	Layout() domain.LayoutView
	SetLayout(domain.LayoutView) error
}
