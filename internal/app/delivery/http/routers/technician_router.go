package routers

import (
	"deskwise-service/internal/app/delivery/http/controllers"
	"deskwise-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTechnicianRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.TechnicianController) {
	router.Post("/", c.CreateTechnician)
	router.Get("/", c.ListTechnicians)
	router.Get("/{technicianID}", c.FindTechnicianByID)
	router.Put("/{technicianID}", c.UpdateTechnician)
}
