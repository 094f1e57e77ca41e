package api

import (
	"time"

	"rezerve.link/configs/configslog"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler public katalog ucu için handler.
type EventHandler struct {
	eventService services.IEventService
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler(eventService services.IEventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// GetBookableEvents (GET /api/bookable-events) rezerve edilebilir girdilerin
// güncel listesini döndürür: önümüzdeki pazarların brunch'ları + açık özel
// etkinlikler, (tarih, saat) sırasıyla.
func (h *EventHandler) GetBookableEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetBookableEvents(c.UserContext(), time.Now())
	if err != nil {
		configslog.Log.Error("GetBookableEvents handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Etkinlik listesi alınamadı."})
	}
	return c.JSON(events)
}
