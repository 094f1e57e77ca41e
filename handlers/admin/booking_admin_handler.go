package admin

import (
	"context"
	"fmt"

	"rezerve.link/configs/configslog"
	"rezerve.link/handlers/api"
	"rezerve.link/pkg/queryparams"
	"rezerve.link/repositories"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingAdminHandler admin listeleme ve dışa aktarım uçları için handler.
type BookingAdminHandler struct {
	bookingService services.IBookingService
	exportService  services.IExportService
}

// NewBookingAdminHandler yeni bir BookingAdminHandler örneği oluşturur.
func NewBookingAdminHandler(bookingService services.IBookingService, exportService services.IExportService) *BookingAdminHandler {
	return &BookingAdminHandler{bookingService: bookingService, exportService: exportService}
}

// ListBookings (GET /api/admin/bookings) filtrelenmiş toplam sayıyı ve
// istenen sayfayı döndürür. Sıralama: tarih ve saat, en yeni en üstte.
func (h *BookingAdminHandler) ListBookings(c *fiber.Ctx) error {
	filter, err := parseBookingFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	params := queryparams.ListParams{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", queryparams.DefaultLimit),
	}

	bookings, total, err := h.bookingService.GetBookingsPaginated(c.UserContext(), filter, params)
	if err != nil {
		configslog.Log.Error("ListBookings handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Rezervasyonlar listelenemedi."})
	}

	responses := make([]api.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, api.BookingToResponse(b))
	}
	return c.JSON(fiber.Map{
		"total":    total,
		"bookings": responses,
	})
}

// buildFunc her iki dışa aktarım biçiminin ortak imzası.
type buildFunc func(ctx context.Context, filter repositories.BookingFilter, limit int) (*services.ExportFile, error)

// ExportPDF (GET /api/bookings/pdf) filtrelenmiş listeyi PDF eki olarak indirir.
func (h *BookingAdminHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, h.exportService.BuildPDF)
}

// ExportXLSX (GET /api/bookings/xlsx) aynı listeyi Excel eki olarak indirir.
func (h *BookingAdminHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, h.exportService.BuildXLSX)
}

func (h *BookingAdminHandler) export(c *fiber.Ctx, build buildFunc) error {
	filter, err := parseBookingFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	limit := c.QueryInt("limit", services.MaxExportRecords)

	file, err := build(c.UserContext(), filter, limit)
	if err != nil {
		configslog.Log.Error("Dışa aktarım hazırlanamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Dışa aktarım dosyası oluşturulamadı."})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", file.FileName))
	return c.Send(file.Data)
}
