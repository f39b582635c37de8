package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pmorten/scoreboard-system/handlers"
	"github.com/pmorten/scoreboard-system/middleware"
)

// SetupRoutes wires the HTTP surface. Reads are open behind the shared
// password gate on the frontend; only mutating player data requires the
// session token.
func SetupRoutes(
	router *chi.Mux,
	corsOrigins []string,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	gameHandler *handlers.GameHandler,
	scoreHandler *handlers.ScoreHandler,
	scoreboardHandler *handlers.ScoreboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Post("/auth/verify", authHandler.VerifyPassword)

	router.Get("/players", playerHandler.GetAllPlayers)
	router.Get("/games/{playerName}", gameHandler.GetGamesForPlayer)

	router.Route("/scores", func(r chi.Router) {
		r.Get("/", scoreHandler.ListScores)
		r.Get("/combined", scoreboardHandler.GetCombinedScores)
		r.Get("/daily", scoreboardHandler.GetDailyScoreboard)
		r.Get("/monthly", scoreboardHandler.GetMonthlyScoreboard)
	})

	router.Post("/score", scoreHandler.CreateScore)
	router.Put("/score", scoreHandler.UpdateScore)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(jwtSecret)))
		r.Post("/players/{playerName}/avatar", playerHandler.UploadAvatar)
	})

	router.Get("/ws/scoreboard/{date}", webSocketHandler.ServeScoreboard)
}
