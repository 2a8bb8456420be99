package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Catalog = (*CatalogService)(nil)

const (
	maxRecommendations = 4
	collectionPageSize = 100
)

// CatalogService translates the stable query vocabulary into backend
// calls and applies the per-call failure policy: page listings
// propagate backend errors, single-entity lookups degrade to absent,
// collection and recommendation reads degrade to empty results.
type CatalogService struct {
	backend port.CommerceBackend
}

func NewCatalogService(backend port.CommerceBackend) CatalogService {
	return CatalogService{backend}
}

// Products returns one page of the catalog. Backend errors propagate:
// a storefront must not render a silently empty listing page.
func (s CatalogService) Products(
	ctx context.Context, q domain.ProductQuery,
) (domain.ProductPage, error) {
	const op = "CatalogService.Products"

	page, err := s.backend.Products(ctx, q.Normalize())
	if err != nil {
		return domain.ProductPage{}, fmt.Errorf("%s: %w", op, err)
	}
	return page, nil
}

// Product looks a product up by slug. Backend failures are absorbed
// into ErrNotFound so callers see one absent shape.
func (s CatalogService) Product(
	ctx context.Context, slug string,
) (domain.Product, error) {
	const op = "CatalogService.Product"
	log := slog.With("op", op)

	if slug == "" {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	p, err := s.backend.ProductBySlug(ctx, slug)
	if err != nil {
		log.Warn("product lookup failed", "slug", slug, "err", err)
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return p, nil
}

// Recommendations returns related products for a product id: the
// product's own related list first, products from its first category
// otherwise. Any failure yields an empty sequence.
func (s CatalogService) Recommendations(
	ctx context.Context, productID int,
) ([]domain.Product, error) {
	const op = "CatalogService.Recommendations"
	log := slog.With("op", op)

	p, err := s.backend.ProductByID(ctx, productID)
	if err != nil {
		log.Warn("recommendation source lookup failed",
			"productID", productID, "err", err)
		return []domain.Product{}, nil
	}

	if len(p.RelatedIDs) > 0 {
		return s.relatedProducts(ctx, p.RelatedIDs), nil
	}

	if len(p.Categories) > 0 {
		return s.categoryProducts(ctx, p.Categories[0].Slug, productID), nil
	}

	return []domain.Product{}, nil
}

func (s CatalogService) relatedProducts(
	ctx context.Context, relatedIDs []int,
) []domain.Product {
	const op = "CatalogService.relatedProducts"
	log := slog.With("op", op)

	ids := relatedIDs
	if len(ids) > maxRecommendations {
		ids = ids[:maxRecommendations]
	}

	ps := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.backend.ProductByID(ctx, id)
		if err != nil {
			log.Warn("skipping related product", "productID", id, "err", err)
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

func (s CatalogService) categoryProducts(
	ctx context.Context, categorySlug string, excludeID int,
) []domain.Product {
	const op = "CatalogService.categoryProducts"
	log := slog.With("op", op)

	page, err := s.backend.Products(ctx, domain.ProductQuery{
		Category: categorySlug,
		PerPage:  maxRecommendations + 1,
	}.Normalize())
	if err != nil {
		log.Warn("category recommendations failed",
			"category", categorySlug, "err", err)
		return []domain.Product{}
	}

	ps := make([]domain.Product, 0, maxRecommendations)
	for _, p := range page.Products {
		if p.ProductID == excludeID {
			continue
		}
		ps = append(ps, p)
		if len(ps) == maxRecommendations {
			break
		}
	}
	return ps
}

// Collections lists all product categories, empty on backend failure.
func (s CatalogService) Collections(
	ctx context.Context,
) ([]domain.Collection, error) {
	const op = "CatalogService.Collections"

	cs, err := s.backend.Categories(ctx)
	if err != nil {
		slog.With("op", op).Warn("collections fetch failed", "err", err)
		return []domain.Collection{}, nil
	}
	return cs, nil
}

// CollectionProducts lists a full collection in the requested order,
// empty on backend failure.
func (s CatalogService) CollectionProducts(
	ctx context.Context,
	collectionSlug string,
	sortKey domain.SortKey,
	reverse bool,
) (domain.ProductPage, error) {
	const op = "CatalogService.CollectionProducts"

	page, err := s.backend.Products(ctx, domain.ProductQuery{
		Category: collectionSlug,
		SortKey:  sortKey,
		Reverse:  reverse,
		PerPage:  collectionPageSize,
	}.Normalize())
	if err != nil {
		slog.With("op", op).Warn("collection listing failed",
			"collection", collectionSlug, "err", err)
		return domain.ProductPage{Products: []domain.Product{}}, nil
	}
	return page, nil
}
