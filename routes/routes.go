package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func SetupRoutes(
	router chi.Router,
	cfg RouterConfig,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/health", tournamentHandler.Health)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListPlayers)
		r.Post("/", tournamentHandler.RegisterPlayer)
		r.Delete("/", tournamentHandler.ClearPlayers)
		r.Get("/count", tournamentHandler.CountPlayers)
		r.Get("/{playerID}", tournamentHandler.GetPlayer)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Post("/", tournamentHandler.ReportMatch)
		r.Delete("/", tournamentHandler.ResetMatches)
	})

	router.Get("/standings", tournamentHandler.Standings)
	router.Get("/pairings", tournamentHandler.Pairings)
	router.Post("/snapshots", tournamentHandler.PublishSnapshot)

	if webSocketHandler != nil {
		router.Get("/ws", webSocketHandler.ServeWs)
	}
}
