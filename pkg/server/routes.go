package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/intentd/intentd/pkg/models"
)

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Route("/training-data", func(r chi.Router) {
		r.Get("/", ListTrainingDataHandler(appState))
		r.Post("/", CreateTrainingDataHandler(appState))
		r.Route("/{trainingDataId}", func(r chi.Router) {
			r.Get("/", GetTrainingDataHandler(appState))
			r.Put("/", UpdateTrainingDataHandler(appState))
			r.Delete("/", DeleteTrainingDataHandler(appState))
		})
	})
	router.Post("/message", ClassifyMessageHandler(appState))

	return router
}
