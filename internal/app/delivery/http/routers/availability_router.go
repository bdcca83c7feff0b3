package routers

import (
	"deskwise-service/internal/app/delivery/http/controllers"
	"deskwise-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AvailabilityController) {
	router.Get("/optimal-slot", c.FindOptimalSlot)
	router.Post("/conflict-check", c.CheckConflicts)
}
