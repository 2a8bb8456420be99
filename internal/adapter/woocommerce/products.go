package woocommerce

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
)

// orderBy translates the stable sort vocabulary into the backend's
// native order-by parameter. The table is fixed, not call-configurable.
func orderBy(k domain.SortKey) string {
	switch k {
	case domain.SortPrice:
		return "price"
	case domain.SortBestSelling:
		return "popularity"
	case domain.SortCreatedAt:
		return "date"
	default:
		return "date"
	}
}

// order maps the direction flag: reverse requests ascending backend
// order, the default is newest-first descending.
func order(reverse bool) string {
	if reverse {
		return "asc"
	}
	return "desc"
}

const (
	totalPagesHeader = "X-WP-TotalPages"
	totalHeader      = "X-WP-Total"
)

// Products lists one catalog page. Page position is derived from the
// response pagination headers, not guessed from the result-set size.
// Transport failures propagate: callers decide fallback.
func (c *Client) Products(
	ctx context.Context, q domain.ProductQuery,
) (domain.ProductPage, error) {
	const op = "Client.Products"

	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("per_page", strconv.Itoa(q.PerPage))
	query.Set("orderby", orderBy(q.SortKey))
	query.Set("order", order(q.Reverse))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Tag != "" {
		query.Set("tag", q.Tag)
	}
	if q.MinPrice != "" {
		query.Set("min_price", q.MinPrice)
	}
	if q.MaxPrice != "" {
		query.Set("max_price", q.MaxPrice)
	}

	var payload []productPayload
	header, err := c.getJSON(ctx, catalogAPIPath+"/products", query, true, &payload)
	if err != nil {
		return domain.ProductPage{}, fmt.Errorf("%s: %w", op, err)
	}

	totalPages, err := strconv.Atoi(header.Get(totalPagesHeader))
	if err != nil {
		totalPages = 1
	}

	page := domain.ProductPage{
		Products: make([]domain.Product, len(payload)),
		PageInfo: domain.PageInfo{
			HasNextPage:     q.Page < totalPages,
			HasPreviousPage: q.Page > 1,
			EndCursor:       strconv.Itoa(q.Page),
		},
	}
	for i, p := range payload {
		page.Products[i] = p.toDomain()
	}
	return page, nil
}

// ProductBySlug resolves a single product by its unique slug.
func (c *Client) ProductBySlug(
	ctx context.Context, slug string,
) (domain.Product, error) {
	const op = "Client.ProductBySlug"

	query := url.Values{}
	query.Set("slug", slug)

	var payload []productPayload
	_, err := c.getJSON(ctx, catalogAPIPath+"/products", query, true, &payload)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(payload) == 0 {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return payload[0].toDomain(), nil
}

func (c *Client) ProductByID(
	ctx context.Context, productID int,
) (domain.Product, error) {
	const op = "Client.ProductByID"

	path := fmt.Sprintf("%s/products/%d", catalogAPIPath, productID)

	var payload productPayload
	_, err := c.getJSON(ctx, path, nil, true, &payload)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return payload.toDomain(), nil
}

// Categories lists all product categories in one page.
func (c *Client) Categories(
	ctx context.Context,
) ([]domain.Collection, error) {
	const op = "Client.Categories"

	query := url.Values{}
	query.Set("per_page", "100")

	var payload []categoryPayload
	_, err := c.getJSON(ctx, catalogAPIPath+"/products/categories", query, true, &payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Collection, len(payload))
	for i, p := range payload {
		cs[i] = p.toDomain()
	}
	return cs, nil
}
