package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/UmangSachdeva/SalesReport/models"
)

// TransactionFinder returns the full transaction set.
type TransactionFinder interface {
	FindAll(ctx context.Context) ([]models.Transaction, error)
}

// Handler serves the HTTP routes. Products reads the listing, Reports feeds
// the aggregation routes, Ping backs the health check.
type Handler struct {
	Products TransactionFinder
	Reports  TransactionFinder
	Ping     func(ctx context.Context) error
}

func NewHandler(products, reports TransactionFinder, ping func(ctx context.Context) error) *Handler {
	return &Handler{Products: products, Reports: reports, Ping: ping}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Error encoding response")
	}
}
