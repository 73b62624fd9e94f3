package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nba_http_requests_total",
		Help: "HTTP requests by method and path pattern",
	},
	[]string{"method", "path"},
)

// Routes builds the HTTP router for the API.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestCounter)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search/players", h.SearchPlayers)
		r.Get("/search/teams", h.SearchTeams)

		r.Get("/stats/player/{name}", h.GetPlayerStats)
		r.Get("/stats/team/{name}", h.GetTeamStats)

		r.Get("/predictions/player/{name}", h.GetPlayerPrediction)
		r.Get("/predictions/team/{name}", h.GetTeamPrediction)
		r.Get("/predictions/champion", h.PredictChampion)

		r.Get("/users/{user}/favorites", h.GetFavorites)
		r.Put("/users/{user}/favorites", h.SetFavorites)

		r.Post("/ingest/games", h.IngestGames)
	})

	return r
}

func requestCounter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, pattern).Inc()
	})
}
