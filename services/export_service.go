package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"rezerve.link/configs"
	"rezerve.link/configs/configslog"
	"rezerve.link/models"
	"rezerve.link/pkg/sanitize"
	"rezerve.link/repositories"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// MaxExportRecords tek bir dışa aktarımda yazılacak en fazla satır.
const MaxExportRecords = 1000

// ExportFile hazırlanan dışa aktarım dosyasını taşır.
type ExportFile struct {
	Data        []byte
	FileName    string
	ContentType string
}

// IExportService rezervasyon listelerinin PDF/XLSX çıktısı için arayüz.
type IExportService interface {
	BuildPDF(ctx context.Context, filter repositories.BookingFilter, limit int) (*ExportFile, error)
	BuildXLSX(ctx context.Context, filter repositories.BookingFilter, limit int) (*ExportFile, error)
}

// ExportService IExportService arayüzünü uygular.
type ExportService struct {
	bookingRepo repositories.IBookingRepository
	eventRepo   repositories.ISpecialEventRepository
	cfg         *configs.Config
}

// NewExportService yeni bir ExportService örneği oluşturur (DI ile).
func NewExportService(bookingRepo repositories.IBookingRepository, eventRepo repositories.ISpecialEventRepository, cfg *configs.Config) IExportService {
	return &ExportService{bookingRepo: bookingRepo, eventRepo: eventRepo, cfg: cfg}
}

// exportContext aktif filtreye göre belge başlığını ve dosya adı gövdesini
// üretir. Etkinlik kaydı silinmişse filtre yine uygulanır, başlık genel kalır.
func (s *ExportService) exportContext(ctx context.Context, filter repositories.BookingFilter) (title, fileBase string) {
	title = "Tüm Rezervasyonlar"
	fileBase = fmt.Sprintf("rezervasyonlar_%s", sanitize.FileName(strings.ToLower(s.cfg.RestaurantName)))

	switch {
	case filter.EventID != nil:
		event, err := s.eventRepo.FindByID(ctx, *filter.EventID)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				configslog.Log.Warn("exportContext: etkinlik okunamadı", zap.Uint("eventID", *filter.EventID), zap.Error(err))
			}
			return title, fileBase
		}
		title = fmt.Sprintf("Rezervasyonlar: %s", event.DisplayName)
		fileBase = fmt.Sprintf("rezervasyonlar_%s_%s",
			sanitize.FileName(event.DisplayName), event.BookingDate.Format("2006-01-02"))
	case filter.Date != nil && filter.Time != nil:
		title = fmt.Sprintf("Brunch Rezervasyonları - %s saat %s",
			filter.Date.Format("02/01/2006"), *filter.Time)
		fileBase = fmt.Sprintf("rezervasyonlar_brunch_%s_%s",
			filter.Date.Format("2006-01-02"), strings.ReplaceAll(*filter.Time, ":", "-"))
	}
	return title, fileBase
}

func (s *ExportService) fetch(ctx context.Context, filter repositories.BookingFilter, limit int) ([]models.Booking, error) {
	if limit <= 0 || limit > MaxExportRecords {
		limit = MaxExportRecords
	}
	return s.bookingRepo.FindAllForExport(ctx, filter, limit)
}

// BuildPDF filtrelenmiş rezervasyonları sayfalı bir PDF belgesine çevirir.
// Kolonlar: ID, Ad, E-posta, Tarih, Saat, Kişi. Uzun ad/e-posta kırpılır.
func (s *ExportService) BuildPDF(ctx context.Context, filter repositories.BookingFilter, limit int) (*ExportFile, error) {
	bookings, err := s.fetch(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	title, fileBase := s.exportContext(ctx, filter)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("Rezervasyon Listesi - %s", s.cfg.RestaurantName)), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(15, 20, tr(title))
	pdf.Line(15, 23, 195, 23)

	headers := []string{"ID", "Ad", "E-posta", "Tarih", "Saat", "Kisi"}
	xPositions := []float64{15, 30, 75, 130, 155, 175}
	y := 32.0

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.Text(xPositions[i], y, header)
	}
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	for _, booking := range bookings {
		if y > 280 {
			pdf.AddPage()
			y = 20
		}
		row := []string{
			fmt.Sprintf("%d", booking.ID),
			truncateRunes(booking.Name, 20),
			truncateRunes(booking.Email, 25),
			booking.BookingDate.Format("02/01/06"),
			clockOrDash(booking.BookingTime),
			fmt.Sprintf("%d", booking.Guests),
		}
		for i, cell := range row {
			pdf.Text(xPositions[i], y, tr(cell))
		}
		y += 6
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		configslog.Log.Error("BuildPDF: belge yazılamadı", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("PDF dışa aktarımı hazırlandı: %s.pdf (%d kayıt)", fileBase, len(bookings))
	return &ExportFile{
		Data:        buf.Bytes(),
		FileName:    fileBase + ".pdf",
		ContentType: "application/pdf",
	}, nil
}

// BuildXLSX aynı filtrelenmiş listeyi tek sayfalık bir Excel dosyasına yazar.
func (s *ExportService) BuildXLSX(ctx context.Context, filter repositories.BookingFilter, limit int) (*ExportFile, error) {
	bookings, err := s.fetch(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	title, fileBase := s.exportContext(ctx, filter)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Rezervasyonlar"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"ID", "Ad", "E-posta", "Telefon", "Tarih", "Saat", "Kişi", "Not"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(sheet, "A1", "H1", style)
	}

	for i, booking := range bookings {
		row := []interface{}{
			booking.ID,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.BookingDate.Format("2006-01-02"),
			clockOrDash(booking.BookingTime),
			booking.Guests,
			booking.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetDocProps(&excelize.DocProperties{Title: title})

	buf, err := f.WriteToBuffer()
	if err != nil {
		configslog.Log.Error("BuildXLSX: belge yazılamadı", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("XLSX dışa aktarımı hazırlandı: %s.xlsx (%d kayıt)", fileBase, len(bookings))
	return &ExportFile{
		Data:        buf.Bytes(),
		FileName:    fileBase + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func clockOrDash(t *string) string {
	if t == nil {
		return "-"
	}
	return *t
}

var _ IExportService = (*ExportService)(nil)
