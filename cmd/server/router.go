package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizbuster/quizbuster-api/internal/api"
	apiMiddleware "github.com/quizbuster/quizbuster-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
		app.logger,
	)
	scoreHandler := api.NewScoreHandler(app.userStore, app.logger)
	gameHandler := api.NewGameHandler(app.questionStore, app.logger)
	achievementHandler := api.NewAchievementHandler(app.achievementStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Public game content
		r.Get("/categories", gameHandler.ListCategories)
		r.Get("/questions", gameHandler.ListQuestions)
		r.Get("/leaderboard", scoreHandler.Leaderboard)
		r.Get("/achievements", achievementHandler.ListAll)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Patch("/users/score", scoreHandler.UpdateScore)
			r.Get("/users/achievements", achievementHandler.ListForUser)
			r.Post("/users/achievements", achievementHandler.Unlock)

			// Question management
			r.Post("/questions", gameHandler.CreateQuestion)
			r.Put("/questions/{id}", gameHandler.UpdateQuestion)
			r.Delete("/questions/{id}", gameHandler.DeleteQuestion)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
