package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/UmangSachdeva/SalesReport/handlers"
	"github.com/UmangSachdeva/SalesReport/middleware"
)

func Router(h *handlers.Handler, log zerolog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/products", h.GetProducts).Methods("GET", "OPTIONS")

	r.HandleFunc("/salesMonth", h.SalesMonth).Methods("GET", "OPTIONS")
	r.HandleFunc("/barChart", h.BarChart).Methods("GET", "OPTIONS")
	r.HandleFunc("/pieChart", h.PieChart).Methods("GET", "OPTIONS")
	r.HandleFunc("/reports", h.MonthReport).Methods("GET", "OPTIONS")

	r.HandleFunc("/healthz", h.Health).Methods("GET", "OPTIONS")

	logging := middleware.LoggingMiddleware(log)
	r.Use(logging)
	r.Use(middleware.CORSMiddleware)

	// mux skips route middleware when nothing matches.
	unmatched := func(next http.Handler) http.Handler {
		return logging(middleware.CORSMiddleware(next))
	}
	r.NotFoundHandler = unmatched(http.NotFoundHandler())
	r.MethodNotAllowedHandler = unmatched(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))

	return r
}
