// Package mock is an in-memory commerce backend used when the live
// backend is unconfigured. It preserves the live call contract,
// including key-identified cart lines and backend-computed totals.
package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CommerceBackend = (*Backend)(nil)

type cartLine struct {
	key       string
	productID int
	quantity  int
	variation []domain.ItemVariation
}

// Backend holds the mock dataset and one session cart. Cart state is
// backend-owned here exactly as it is for the live adapter: callers
// observe it only through Cart().
type Backend struct {
	mu       sync.Mutex
	products []domain.Product
	lines    []cartLine
}

func New() *Backend {
	return &Backend{products: catalog()}
}

// Cart computes the full snapshot from the stored lines: pricing in
// currency minor units, item count as the quantity sum.
func (b *Backend) Cart(context.Context) (domain.Cart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cart := domain.EmptyCart()
	var totalCents int

	for _, line := range b.lines {
		p, ok := b.productByID(line.productID)
		if !ok {
			continue
		}
		unitCents := priceCents(p.Price)
		lineCents := unitCents * line.quantity

		cart.Items = append(cart.Items, domain.CartItem{
			Key:       line.key,
			ProductID: p.ProductID,
			Quantity:  line.quantity,
			Name:      p.Name,
			SKU:       p.SKU,
			Permalink: p.Permalink,
			Images:    p.Images,
			Variation: line.variation,
			Prices: domain.ItemPrices{
				Price:        strconv.Itoa(unitCents),
				RegularPrice: strconv.Itoa(priceCents(p.RegularPrice)),
				SalePrice:    strconv.Itoa(priceCents(p.SalePrice)),
			},
			Totals: domain.ItemTotals{
				LineSubtotal: strconv.Itoa(lineCents),
				LineTotal:    strconv.Itoa(lineCents),
			},
		})
		cart.ItemCount += line.quantity
		totalCents += lineCents
	}

	cart.Totals.TotalItems = strconv.Itoa(totalCents)
	cart.Totals.TotalPrice = strconv.Itoa(totalCents)
	cart.NeedsPayment = totalCents > 0
	cart.NeedsShipping = len(cart.Items) > 0
	return cart, nil
}

func (b *Backend) AddItem(
	_ context.Context, productID, quantity int, variation []domain.ItemVariation,
) error {
	const op = "Backend.AddItem"

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.productByID(productID); !ok {
		return fmt.Errorf("%s: product %d: %w", op, productID, domain.ErrNotFound)
	}
	if quantity < 1 {
		return fmt.Errorf("%s: invalid quantity %d", op, quantity)
	}

	key := lineKey(productID, variation)
	for i := range b.lines {
		if b.lines[i].key == key {
			b.lines[i].quantity += quantity
			return nil
		}
	}

	b.lines = append(b.lines, cartLine{
		key:       key,
		productID: productID,
		quantity:  quantity,
		variation: variation,
	})
	return nil
}

func (b *Backend) RemoveItem(_ context.Context, itemKey string) error {
	const op = "Backend.RemoveItem"

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.lines {
		if b.lines[i].key == itemKey {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: item %q: %w", op, itemKey, domain.ErrNotFound)
}

func (b *Backend) UpdateItem(
	_ context.Context, itemKey string, quantity int,
) error {
	const op = "Backend.UpdateItem"

	if quantity < 1 {
		return fmt.Errorf("%s: invalid quantity %d", op, quantity)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.lines {
		if b.lines[i].key == itemKey {
			b.lines[i].quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("%s: item %q: %w", op, itemKey, domain.ErrNotFound)
}

// Products applies the normalized filter, sorts by the requested key
// and paginates, mirroring the live backend's contract.
func (b *Backend) Products(
	_ context.Context, q domain.ProductQuery,
) (domain.ProductPage, error) {
	q = q.Normalize()

	b.mu.Lock()
	defer b.mu.Unlock()

	matched := make([]domain.Product, 0, len(b.products))
	for _, p := range b.products {
		if matches(p, q) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, q.SortKey, q.Reverse)

	totalPages := (len(matched) + q.PerPage - 1) / q.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	start := (q.Page - 1) * q.PerPage
	end := start + q.PerPage
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return domain.ProductPage{
		Products: matched[start:end],
		PageInfo: domain.PageInfo{
			HasNextPage:     q.Page < totalPages,
			HasPreviousPage: q.Page > 1,
			EndCursor:       strconv.Itoa(q.Page),
		},
	}, nil
}

func (b *Backend) ProductBySlug(
	_ context.Context, slug string,
) (domain.Product, error) {
	const op = "Backend.ProductBySlug"

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %q: %w", op, slug, domain.ErrNotFound)
}

func (b *Backend) ProductByID(
	_ context.Context, productID int,
) (domain.Product, error) {
	const op = "Backend.ProductByID"

	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.productByID(productID); ok {
		return p, nil
	}
	return domain.Product{}, fmt.Errorf("%s: %d: %w", op, productID, domain.ErrNotFound)
}

// Categories derives the collection list from the dataset, with
// per-category product counts.
func (b *Backend) Categories(context.Context) ([]domain.Collection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bySlug := make(map[string]*domain.Collection)
	var order []string
	for _, p := range b.products {
		for _, c := range p.Categories {
			col, ok := bySlug[c.Slug]
			if !ok {
				col = &domain.Collection{
					CollectionID: c.CategoryID,
					Name:         c.Name,
					Slug:         c.Slug,
				}
				bySlug[c.Slug] = col
				order = append(order, c.Slug)
			}
			col.Count++
		}
	}

	cs := make([]domain.Collection, 0, len(order))
	for _, slug := range order {
		cs = append(cs, *bySlug[slug])
	}
	return cs, nil
}

func (b *Backend) productByID(productID int) (domain.Product, bool) {
	for _, p := range b.products {
		if p.ProductID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

func lineKey(productID int, variation []domain.ItemVariation) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", productID)
	for _, v := range variation {
		fmt.Fprintf(h, "|%s=%s", v.Attribute, v.Value)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func matches(p domain.Product, q domain.ProductQuery) bool {
	if q.Category != "" && !hasCategory(p, q.Category) {
		return false
	}
	if q.Tag != "" && !hasTag(p, q.Tag) {
		return false
	}
	if q.Search != "" {
		s := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	if q.MinPrice != "" && priceCents(p.Price) < priceCents(q.MinPrice) {
		return false
	}
	if q.MaxPrice != "" && priceCents(p.Price) > priceCents(q.MaxPrice) {
		return false
	}
	return true
}

func hasCategory(p domain.Product, slug string) bool {
	for _, c := range p.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

func hasTag(p domain.Product, slug string) bool {
	for _, t := range p.Tags {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

// sortProducts orders by the stable sort vocabulary: price,
// best-selling (total sales), or creation date. Reverse means
// ascending, matching the live backend translation.
func sortProducts(ps []domain.Product, key domain.SortKey, reverse bool) {
	var less func(a, b domain.Product) bool
	switch key {
	case domain.SortPrice:
		less = func(a, b domain.Product) bool {
			return priceCents(a.Price) < priceCents(b.Price)
		}
	case domain.SortBestSelling:
		less = func(a, b domain.Product) bool {
			return a.TotalSales < b.TotalSales
		}
	default:
		less = func(a, b domain.Product) bool {
			return a.DateCreated < b.DateCreated
		}
	}

	sort.SliceStable(ps, func(i, j int) bool {
		if reverse {
			return less(ps[i], ps[j])
		}
		return less(ps[j], ps[i])
	})
}

// priceCents parses a decimal price string into currency minor units.
// Malformed input counts as zero.
func priceCents(s string) int {
	if s == "" {
		return 0
	}
	whole, frac, _ := strings.Cut(s, ".")
	cents, err := strconv.Atoi(whole)
	if err != nil {
		return 0
	}
	cents *= 100
	if frac == "" {
		return cents
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}
	f, err := strconv.Atoi(frac)
	if err != nil {
		return cents
	}
	return cents + f
}
