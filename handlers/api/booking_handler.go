package api

import (
	"errors"

	"rezerve.link/configs/configslog"
	"rezerve.link/models"
	"rezerve.link/notifications"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingHandler public rezervasyon uçları için handler.
type BookingHandler struct {
	bookingService services.IBookingService
	dispatcher     *notifications.Dispatcher
}

// NewBookingHandler yeni bir BookingHandler örneği oluşturur.
func NewBookingHandler(bookingService services.IBookingService, dispatcher *notifications.Dispatcher) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, dispatcher: dispatcher}
}

type createBookingRequest struct {
	EventID     *uint   `json:"event_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	BookingDate string  `json:"booking_date"` // "YYYY-MM-DD"
	BookingTime *string `json:"booking_time"` // "HH:MM", opsiyonel
	Guests      int     `json:"guests"`
	Notes       string  `json:"notes"`
}

type BookingResponse struct {
	ID                uint    `json:"id"`
	EventID           *uint   `json:"event_id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	BookingDate       string  `json:"booking_date"`
	BookingTime       *string `json:"booking_time"`
	Guests            int     `json:"guests"`
	CancellationToken string  `json:"cancellation_token"`
	Notes             string  `json:"notes,omitempty"`
}

// BookingToResponse model kaydını API çıktısına çevirir.
func BookingToResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		EventID:           b.EventID,
		Name:              b.Name,
		Email:             b.Email,
		Phone:             b.Phone,
		BookingDate:       b.BookingDate.Format("2006-01-02"),
		BookingTime:       b.BookingTime,
		Guests:            b.Guests,
		CancellationToken: b.CancellationToken,
		Notes:             b.Notes,
	}
}

// CreateBooking (POST /api/bookings) rezervasyon isteğini kabul kurallarından
// geçirir. Kabul edilirse onay e-postası kuyruğa eklenir; kuyruğa ekleme
// yanıtı asla geciktirmez, gönderim hatası sonucu etkilemez.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	bookingDate, err := services.ParseDate(req.BookingDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz rezervasyon tarihi. Beklenen biçim: YYYY-AA-GG."})
	}

	var bookingTime *string
	if req.BookingTime != nil && *req.BookingTime != "" {
		normalized, err := services.NormalizeClock(*req.BookingTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz rezervasyon saati. Beklenen biçim: SS:DD."})
		}
		bookingTime = &normalized
	}

	booking, err := h.bookingService.CreateBooking(c.UserContext(), services.CreateBookingInput{
		EventID:     req.EventID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		BookingDate: bookingDate,
		BookingTime: bookingTime,
		Guests:      req.Guests,
		Notes:       req.Notes,
	})
	if err != nil {
		var capErr *services.CapacityError
		switch {
		case errors.Is(err, services.ErrDuplicateBooking),
			errors.Is(err, services.ErrEventClosed),
			errors.Is(err, services.ErrBookingInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &capErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": capErr.Error()})
		case errors.Is(err, services.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateBooking handler hatası", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Rezervasyon oluşturulurken bir hata oluştu."})
		}
	}

	// Yanıt dönüldükten sonra worker gönderimi kendi scope'unda yapar.
	h.dispatcher.Enqueue(*booking)

	return c.Status(fiber.StatusCreated).JSON(BookingToResponse(*booking))
}

// CancelBooking (GET /api/bookings/cancel/:token) tokenla eşleşen
// rezervasyonu geri alınamaz şekilde siler.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	token := c.Params("token")

	err := h.bookingService.CancelBookingByToken(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CancelBooking handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Rezervasyon iptal edilirken bir hata oluştu."})
	}

	return c.JSON(fiber.Map{"message": "Rezervasyonunuz başarıyla iptal edildi."})
}
