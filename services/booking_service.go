package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"rezerve.link/configs/configslog"
	"rezerve.link/metrics"
	"rezerve.link/models"
	"rezerve.link/pkg/queryparams"
	"rezerve.link/repositories"

	"go.uber.org/zap"
)

// BookingServiceError özel servis hataları.
type BookingServiceError string

func (e BookingServiceError) Error() string { return string(e) }

const (
	ErrDuplicateBooking    BookingServiceError = "bu e-posta ile bu etkinlik için zaten bir rezervasyonunuz var"
	ErrBookingNotFound     BookingServiceError = "iptal kodu geçersiz veya rezervasyon zaten iptal edilmiş"
	ErrBookingInvalidInput BookingServiceError = "geçersiz rezervasyon verisi"
	ErrBookingFailed       BookingServiceError = "rezervasyon kaydedilemedi"
)

// CapacityError kova kontenjanı aşıldığında döner. Kalan kişi sayısını ve
// hangi servis için olduğunu taşır; mesaj kullanıcıya aynen gösterilir.
type CapacityError struct {
	BucketLabel string // "saat 12:00 servisi" veya "akşam servisi"
	Remaining   int
}

func (e *CapacityError) Error() string {
	if e.Remaining <= 0 {
		return fmt.Sprintf("Üzgünüz, %s için tüm kontenjan dolu.", e.BucketLabel)
	}
	return fmt.Sprintf("Üzgünüz, %s için yeterli yer yok. Kalan kontenjan: %d kişi.", e.BucketLabel, e.Remaining)
}

// CreateBookingInput kabul edilecek rezervasyon isteği.
type CreateBookingInput struct {
	EventID     *uint
	Name        string
	Email       string
	Phone       string
	BookingDate time.Time
	BookingTime *string // normalize edilmiş "HH:MM" veya nil
	Guests      int
	Notes       string
}

// IBookingService rezervasyon işlemleri için arayüz.
type IBookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	CancelBookingByToken(ctx context.Context, token string) error
	GetBookingsPaginated(ctx context.Context, filter repositories.BookingFilter, params queryparams.ListParams) ([]models.Booking, int64, error)
}

// BookingService IBookingService arayüzünü uygular.
type BookingService struct {
	repo      repositories.IBookingRepository
	eventRepo repositories.ISpecialEventRepository
}

// NewBookingService yeni bir BookingService örneği oluşturur (DI ile).
func NewBookingService(repo repositories.IBookingRepository, eventRepo repositories.ISpecialEventRepository) IBookingService {
	return &BookingService{repo: repo, eventRepo: eventRepo}
}

// validateBookingInput temel alan kontrollerini yapar.
func validateBookingInput(input CreateBookingInput) error {
	if input.Name == "" || input.Phone == "" {
		return fmt.Errorf("%w: ad ve telefon zorunludur", ErrBookingInvalidInput)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fmt.Errorf("%w: geçersiz e-posta adresi", ErrBookingInvalidInput)
	}
	if input.BookingDate.IsZero() {
		return fmt.Errorf("%w: rezervasyon tarihi zorunludur", ErrBookingInvalidInput)
	}
	if input.Guests <= 0 {
		return fmt.Errorf("%w: kişi sayısı pozitif olmalıdır", ErrBookingInvalidInput)
	}
	return nil
}

// CreateBooking gelen isteği kabul kurallarından geçirir ve kabul edilirse
// kaydeder. Mükerrer kontrolü, kontenjan kontrolü ve insert tek transaction
// içinde çalışır; kova üzerinde ek bir kilit alınmaz (bilinen tolerans).
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if err := validateBookingInput(input); err != nil {
		metrics.IncBookingRejected("invalid_input")
		return nil, err
	}
	input.BookingDate = truncateToDate(input.BookingDate)

	// Özel etkinlik referansı varsa etkinlik var olmalı ve açık olmalı.
	if input.EventID != nil {
		event, err := s.eventRepo.FindByID(ctx, *input.EventID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				metrics.IncBookingRejected("event_not_found")
				return nil, ErrEventNotFound
			}
			return nil, err
		}
		if event.IsClosed {
			metrics.IncBookingRejected("event_closed")
			return nil, ErrEventClosed
		}
	}

	booking := &models.Booking{
		EventID:     input.EventID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Guests:      input.Guests,
		Notes:       input.Notes,
	}

	txErr := s.repo.Transaction(ctx, func(txRepo repositories.IBookingRepository) error {
		// 1. Mükerrer kontrolü: aynı e-posta + aynı kova.
		_, err := txRepo.FindDuplicate(ctx, input.Email, input.EventID, input.BookingDate, input.BookingTime)
		if err == nil {
			return ErrDuplicateBooking
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		// 2. Kova seçimi ve kontenjan kontrolü.
		var (
			booked      int64
			bucketLabel string
		)
		if models.IsBrunchSlot(input.BookingTime) {
			booked, err = txRepo.SumGuestsForTurn(ctx, input.BookingDate, *input.BookingTime)
			bucketLabel = fmt.Sprintf("saat %s servisi", *input.BookingTime)
		} else {
			booked, err = txRepo.SumGuestsForEvening(ctx, input.BookingDate)
			bucketLabel = "akşam servisi"
		}
		if err != nil {
			return err
		}
		if booked+int64(input.Guests) > models.MaxGuestsPerBucket {
			return &CapacityError{
				BucketLabel: bucketLabel,
				Remaining:   models.MaxGuestsPerBucket - int(booked),
			}
		}

		// 3. Kaydet.
		return txRepo.Create(ctx, booking)
	})
	if txErr != nil {
		var capErr *CapacityError
		switch {
		case errors.Is(txErr, ErrDuplicateBooking):
			metrics.IncBookingRejected("duplicate")
		case errors.As(txErr, &capErr):
			metrics.IncBookingRejected("capacity")
		default:
			configslog.Log.Error("CreateBooking: transaction hatası", zap.String("email", input.Email), zap.Error(txErr))
		}
		return nil, txErr
	}

	metrics.IncBookingCreated()
	configslog.SLog.Infof("Rezervasyon kabul edildi: ID %d, %s, %d kişi (%s)",
		booking.ID, booking.Email, booking.Guests, booking.BookingDate.Format("2006-01-02"))
	return booking, nil
}

// CancelBookingByToken tokenla eşleşen rezervasyonu koşulsuz siler.
// Token geçersiz mi yoksa daha önce mi kullanılmış, dışarıdan ayırt edilemez.
func (s *BookingService) CancelBookingByToken(ctx context.Context, token string) error {
	booking, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, booking); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		configslog.Log.Error("CancelBookingByToken: silme hatası", zap.Uint("id", booking.ID), zap.Error(err))
		return err
	}
	metrics.IncBookingCancelled()
	configslog.SLog.Infof("Rezervasyon iptal edildi: ID %d (%s)", booking.ID, booking.Email)
	return nil
}

// GetBookingsPaginated admin listesi için filtrelenmiş sayfayı ve filtrelenmiş
// toplam kayıt sayısını döndürür.
func (s *BookingService) GetBookingsPaginated(ctx context.Context, filter repositories.BookingFilter, params queryparams.ListParams) ([]models.Booking, int64, error) {
	params.Validate()
	return s.repo.FindAllPaginated(ctx, filter, params)
}

// truncateToDate saati atar; tarih kolonunda saat bileşeni taşınmaz.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var _ IBookingService = (*BookingService)(nil)
