package admin

import (
	"errors"

	"rezerve.link/configs/configslog"
	"rezerve.link/models"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SpecialEventHandler admin özel etkinlik CRUD uçları için handler.
type SpecialEventHandler struct {
	eventService services.IEventService
}

// NewSpecialEventHandler yeni bir SpecialEventHandler örneği oluşturur.
func NewSpecialEventHandler(eventService services.IEventService) *SpecialEventHandler {
	return &SpecialEventHandler{eventService: eventService}
}

type createSpecialEventRequest struct {
	DisplayName string  `json:"display_name"`
	BookingDate string  `json:"booking_date"` // "YYYY-MM-DD"
	BookingTime *string `json:"booking_time"` // "HH:MM", opsiyonel
	IsClosed    bool    `json:"is_closed"`
}

type specialEventResponse struct {
	ID          uint    `json:"id"`
	DisplayName string  `json:"display_name"`
	BookingDate string  `json:"booking_date"`
	BookingTime *string `json:"booking_time"`
	IsClosed    bool    `json:"is_closed"`
}

func eventToResponse(ev models.SpecialEvent) specialEventResponse {
	return specialEventResponse{
		ID:          ev.ID,
		DisplayName: ev.DisplayName,
		BookingDate: ev.BookingDate.Format("2006-01-02"),
		BookingTime: ev.BookingTime,
		IsClosed:    ev.IsClosed,
	}
}

// CreateSpecialEvent (POST /api/admin/special-events) yeni etkinlik açar.
func (h *SpecialEventHandler) CreateSpecialEvent(c *fiber.Ctx) error {
	var req createSpecialEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	bookingDate, err := services.ParseDate(req.BookingDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik tarihi. Beklenen biçim: YYYY-AA-GG."})
	}

	var bookingTime *string
	if req.BookingTime != nil && *req.BookingTime != "" {
		normalized, err := services.NormalizeClock(*req.BookingTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik saati. Beklenen biçim: SS:DD."})
		}
		bookingTime = &normalized
	}

	event, err := h.eventService.CreateSpecialEvent(c.UserContext(), services.CreateSpecialEventInput{
		DisplayName: req.DisplayName,
		BookingDate: bookingDate,
		BookingTime: bookingTime,
		IsClosed:    req.IsClosed,
	})
	if err != nil {
		if errors.Is(err, services.ErrEventInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateSpecialEvent handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Etkinlik oluşturulamadı."})
	}

	return c.Status(fiber.StatusCreated).JSON(eventToResponse(*event))
}

// ListSpecialEvents (GET /api/admin/special-events) tüm etkinlikleri döndürür.
func (h *SpecialEventHandler) ListSpecialEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetSpecialEvents(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListSpecialEvents handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Etkinlikler listelenemedi."})
	}

	responses := make([]specialEventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, eventToResponse(ev))
	}
	return c.JSON(responses)
}

// DeleteSpecialEvent (DELETE /api/admin/special-events/:id) etkinliği ve ona
// bağlı tüm rezervasyonları siler, silinen etkinliği döndürür.
func (h *SpecialEventHandler) DeleteSpecialEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID."})
	}

	event, err := h.eventService.DeleteSpecialEvent(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteSpecialEvent handler hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Etkinlik silinemedi."})
	}

	return c.JSON(eventToResponse(*event))
}
