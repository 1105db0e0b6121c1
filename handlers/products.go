package handlers

import (
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// GetProducts lists every stored transaction as a JSON array.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.FindAll(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Error listing products")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, products)
}
