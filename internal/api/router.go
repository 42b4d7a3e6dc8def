package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dicegame-go/internal/api/apierr"
	"github.com/mcoot/dicegame-go/internal/api/handler"
	apimiddleware "github.com/mcoot/dicegame-go/internal/api/middleware"
	"github.com/mcoot/dicegame-go/internal/api/response"
	"github.com/mcoot/dicegame-go/internal/metrics"
	"github.com/mcoot/dicegame-go/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
	Metrics       *metrics.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = r.NotFoundHandler
	api.Use(apimiddleware.Standard(cfg.Logger, cfg.Metrics)...)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/name", playerHandler.Rename).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}/full-name", playerHandler.SetFullName).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}/gamer-tag", playerHandler.SetGamerTag).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}/gamer-tag/generate", playerHandler.GenerateGamerTag).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/roll", playerHandler.Roll).Methods(http.MethodPost)

	api.HandleFunc("/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
