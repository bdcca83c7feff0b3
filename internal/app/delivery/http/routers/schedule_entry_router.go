package routers

import (
	"deskwise-service/internal/app/delivery/http/controllers"
	"deskwise-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScheduleEntryRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.ScheduleEntryController) {
	router.Post("/", c.CreateScheduleEntry)
	router.Post("/recurring", c.CreateRecurringSchedule)
	router.Get("/", c.ListScheduleEntries)
	router.Get("/{entryID}", c.FindScheduleEntryByID)
	router.Put("/{entryID}", c.UpdateScheduleEntry)
	router.Post("/{entryID}/cancel", c.CancelScheduleEntry)
	router.Delete("/{entryID}", c.DeleteScheduleEntry)
}
