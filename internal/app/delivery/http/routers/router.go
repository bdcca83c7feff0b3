package routers

import (
	"deskwise-service/internal/app/config"
	"deskwise-service/internal/app/delivery/http/controllers"
	"deskwise-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	scheduleEntryController *controllers.ScheduleEntryController,
	availabilityController *controllers.AvailabilityController,
	technicianController *controllers.TechnicianController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := internalConfig.App.EndpointPrefix

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/schedule-entries", func(r chi.Router) {
			attachScheduleEntryRoutes(r, middlewares, scheduleEntryController)
		})

		r.Route("/availability", func(r chi.Router) {
			attachAvailabilityRoutes(r, middlewares, availabilityController)
		})

		r.Route("/technicians", func(r chi.Router) {
			attachTechnicianRoutes(r, middlewares, technicianController)
		})
	})
}
