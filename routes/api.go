package routes

import (
	"rezerve.link/handlers/api"
	"rezerve.link/notifications"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes kimlik doğrulaması gerektirmeyen public uçları tanımlar.
func registerAPIRoutes(app *fiber.App, bookingService services.IBookingService, eventService services.IEventService, dispatcher *notifications.Dispatcher) {
	bookingHandler := api.NewBookingHandler(bookingService, dispatcher)
	eventHandler := api.NewEventHandler(eventService)

	app.Get("/api/bookable-events", eventHandler.GetBookableEvents)   // Katalog
	app.Post("/api/bookings", bookingHandler.CreateBooking)           // Rezervasyon kabulü
	app.Get("/api/bookings/cancel/:token", bookingHandler.CancelBooking) // Token ile iptal
}
