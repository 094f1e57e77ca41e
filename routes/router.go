package routes

import (
	"rezerve.link/configs"
	"rezerve.link/notifications"
	"rezerve.link/repositories"
	"rezerve.link/services"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
// Bağımlılıklar burada bir kez kurulur ve handler'lara enjekte edilir.
func SetupRoutes(app *fiber.App, cfg *configs.Config, db *gorm.DB, dispatcher *notifications.Dispatcher) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		// Tarayıcının indirme dosya adını okuyabilmesi için gerekli.
		ExposeHeaders: fiber.HeaderContentDisposition,
	}))

	// --- Bağımlılık Kurulumu ---
	bookingRepo := repositories.NewBookingRepository(db)
	eventRepo := repositories.NewSpecialEventRepository(db)

	bookingService := services.NewBookingService(bookingRepo, eventRepo)
	eventService := services.NewEventService(eventRepo)
	exportService := services.NewExportService(bookingRepo, eventRepo, cfg)

	// --- Rota Grupları ---
	registerAPIRoutes(app, bookingService, eventService, dispatcher)
	registerAdminRoutes(app, cfg, bookingService, eventService, exportService)

	// --- Sağlık ve Gözlemlenebilirlik ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Rezervasyon sistemi çalışıyor."})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// --- 404 Handler ---
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	})
}
