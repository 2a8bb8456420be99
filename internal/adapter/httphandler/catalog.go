package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/products                            paginated listing (200 OK, 502)
// GET /v1/products/{slug}                     single product (200 OK, 404)
// GET /v1/products/{id}/recommendations       related products (200 OK)
// GET /v1/collections                         category list (200 OK)
// GET /v1/collections/{slug}/products         sorted collection (200 OK)

type CatalogHandler struct {
	catalog port.Catalog
}

func RegisterCatalog(mux *http.ServeMux, catalog port.Catalog) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{slug}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/{id}/recommendations", h.GetRecommendations)
	mux.HandleFunc("GET /v1/collections", h.GetCollections)
	mux.HandleFunc("GET /v1/collections/{slug}/products", h.GetCollectionProducts)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	page, err := h.catalog.Products(r.Context(), productQuery(r))
	if err != nil {
		http.Error(w, "failed to fetch products", http.StatusBadGateway)
		log.Error("products listing failed", "err", err)
		return
	}
	writeJSON(w, op, productListFromDomain(page))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"

	p, err := h.catalog.Product(r.Context(), r.PathValue("slug"))
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, op, productFromDomain(p))
}

func (h CatalogHandler) GetRecommendations(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CatalogHandler.GetRecommendations"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	ps, err := h.catalog.Recommendations(r.Context(), productID)
	if err != nil {
		log.Error("recommendations failed", "err", err)
		ps = []domain.Product{}
	}

	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = productFromDomain(p)
	}
	writeJSON(w, op, out)
}

func (h CatalogHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCollections"
	log := slog.With("op", op)

	cs, err := h.catalog.Collections(r.Context())
	if err != nil {
		log.Error("collections failed", "err", err)
		cs = []domain.Collection{}
	}

	out := make([]Collection, len(cs))
	for i, c := range cs {
		out[i] = collectionFromDomain(c)
	}
	writeJSON(w, op, out)
}

func (h CatalogHandler) GetCollectionProducts(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CatalogHandler.GetCollectionProducts"

	q := r.URL.Query()
	page, _ := h.catalog.CollectionProducts(
		r.Context(),
		r.PathValue("slug"),
		domain.SortKey(q.Get("sort_key")),
		q.Get("reverse") == "true",
	)
	writeJSON(w, op, productListFromDomain(page))
}

// productQuery maps listing query parameters onto the normalized
// filter. The pagination cursor is accepted as an opaque token and
// passed through as the page position.
func productQuery(r *http.Request) domain.ProductQuery {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if cursor := q.Get("cursor"); cursor != "" {
		if n, err := strconv.Atoi(cursor); err == nil {
			page = n
		}
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	return domain.ProductQuery{
		Page:     page,
		PerPage:  perPage,
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		SortKey:  domain.SortKey(q.Get("sort_key")),
		Reverse:  q.Get("reverse") == "true",
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
	}
}
