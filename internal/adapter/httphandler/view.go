package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/view  current layout preference (200 OK)
// PUT /v1/view  JSON {"layout": "card"|"list"} (200 OK, 400)

type ViewHandler struct {
	view port.ViewStore
}

func RegisterView(mux *http.ServeMux, view port.ViewStore) {
	h := ViewHandler{view}
	mux.HandleFunc("GET /v1/view", h.GetView)
	mux.HandleFunc("PUT /v1/view", h.PutView)
}

func (h ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	const op = "ViewHandler.GetView"
	writeJSON(w, op, View{Layout: string(h.view.Layout())})
}

func (h ViewHandler) PutView(w http.ResponseWriter, r *http.Request) {
	const op = "ViewHandler.PutView"
	log := slog.With("op", op)

	var req View
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.view.SetLayout(domain.LayoutView(req.Layout)); err != nil {
		http.Error(w, "invalid layout view", http.StatusBadRequest)
		log.Warn("rejected layout view", "layout", req.Layout)
		return
	}
	writeJSON(w, op, req)
}
