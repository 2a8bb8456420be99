package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET  /v1/cart                     current snapshot (200 OK)
// POST /v1/cart/refresh             force reconcile (200 OK)
// POST /v1/cart/items               add item (200 OK, 400, 502)
// POST /v1/cart/items/remove        remove item (200 OK, 400, 502)
// POST /v1/cart/items/quantity      set quantity, 0 removes (200 OK, 400, 502)

type CartHandler struct {
	store port.CartStore
}

func RegisterCart(mux *http.ServeMux, store port.CartStore) {
	h := CartHandler{store}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/refresh", h.PostRefresh)
	mux.HandleFunc("POST /v1/cart/items", h.PostAddItem)
	mux.HandleFunc("POST /v1/cart/items/remove", h.PostRemoveItem)
	mux.HandleFunc("POST /v1/cart/items/quantity", h.PostSetQuantity)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	writeJSON(w, op, cartFromDomain(h.store.Snapshot()))
}

func (h CartHandler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostRefresh"
	cart := h.store.Refresh(r.Context())
	writeJSON(w, op, cartFromDomain(cart))
}

func (h CartHandler) PostAddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostAddItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	variation := make([]domain.ItemVariation, len(req.Variation))
	for i, v := range req.Variation {
		variation[i] = domain.ItemVariation{
			Attribute: v.Attribute,
			Value:     v.Value,
		}
	}

	cart, err := h.store.AddItem(r.Context(), req.ID, req.Quantity, variation)
	if err != nil {
		writeMutationErr(w, log, err)
		return
	}
	writeJSON(w, op, cartFromDomain(cart))
}

func (h CartHandler) PostRemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostRemoveItem"
	log := slog.With("op", op)

	var req RemoveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	cart, err := h.store.RemoveItem(r.Context(), req.Key)
	if err != nil {
		writeMutationErr(w, log, err)
		return
	}
	writeJSON(w, op, cartFromDomain(cart))
}

func (h CartHandler) PostSetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostSetQuantity"
	log := slog.With("op", op)

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	cart, err := h.store.SetItemQuantity(r.Context(), req.Key, req.Quantity)
	if err != nil {
		writeMutationErr(w, log, err)
		return
	}
	writeJSON(w, op, cartFromDomain(cart))
}

// writeMutationErr distinguishes locally rejected input from backend
// failures: a storefront must not claim a mutation happened when it
// did not.
func writeMutationErr(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingProductID),
		errors.Is(err, domain.ErrMissingItemKey):
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Warn("mutation rejected", "err", err)
	default:
		http.Error(w, "cart mutation failed", http.StatusBadGateway)
		log.Error("cart mutation failed", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
