package routes

import (
	"rezerve.link/configs"
	admin_handlers "rezerve.link/handlers/admin"
	"rezerve.link/middlewares"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes basic auth ile korunan yönetici uçlarını tanımlar.
// Dışa aktarım uçları tarihsel sebeple /api/bookings altında yaşar ama aynı
// kimlik doğrulamasına tabidir.
func registerAdminRoutes(app *fiber.App, cfg *configs.Config, bookingService services.IBookingService, eventService services.IEventService, exportService services.IExportService) {
	bookingHandler := admin_handlers.NewBookingAdminHandler(bookingService, exportService)
	eventHandler := admin_handlers.NewSpecialEventHandler(eventService)

	auth := middlewares.AdminAuth(cfg)

	adminGroup := app.Group("/api/admin", auth)
	adminGroup.Get("/bookings", bookingHandler.ListBookings)             // GET /api/admin/bookings
	adminGroup.Post("/special-events", eventHandler.CreateSpecialEvent)  // POST /api/admin/special-events
	adminGroup.Get("/special-events", eventHandler.ListSpecialEvents)    // GET /api/admin/special-events
	adminGroup.Delete("/special-events/:id", eventHandler.DeleteSpecialEvent) // DELETE /api/admin/special-events/{id}

	app.Get("/api/bookings/pdf", auth, bookingHandler.ExportPDF)   // PDF dışa aktarım
	app.Get("/api/bookings/xlsx", auth, bookingHandler.ExportXLSX) // XLSX dışa aktarım
}
