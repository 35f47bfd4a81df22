package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/habitloop/adherence-engine/docs"
	"github.com/habitloop/adherence-engine/internal/api/handler"
	"github.com/habitloop/adherence-engine/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler      *handler.UserHandler
	adherenceHandler *handler.AdherenceHandler
}

func NewRouter(userHandler *handler.UserHandler, adherenceHandler *handler.AdherenceHandler) *Router {
	return &Router{
		userHandler:      userHandler,
		adherenceHandler: adherenceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Telemetry and interventions (nested under users)
			r.Post("/{userId}/telemetry", rt.adherenceHandler.SubmitTelemetry)
			r.Get("/{userId}/interventions", rt.adherenceHandler.ListInterventions)

			r.Route("/{userId}/adherence", func(r chi.Router) {
				r.Post("/predict", rt.adherenceHandler.Predict)
				r.Post("/monitor", rt.adherenceHandler.Monitor)
				r.Get("/prediction", rt.adherenceHandler.GetPrediction)
				r.Get("/history", rt.adherenceHandler.History)
			})
		})
	})

	return r
}
