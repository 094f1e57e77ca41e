package repositories

import (
	"context"
	"errors"
	"time"

	"rezerve.link/configs/configslog"
	"rezerve.link/models"
	"rezerve.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingFilter admin listeleme ve dışa aktarımda kullanılan filtre.
// Öncelik sırası: EventID > (Date + Time) > filtresiz.
type BookingFilter struct {
	EventID *uint
	Date    *time.Time
	Time    *string
}

// IBookingRepository rezervasyon veritabanı işlemleri için arayüz.
type IBookingRepository interface {
	// Transaction fn'i tek bir veritabanı transaction'ı içinde çalıştırır.
	// fn'e verilen repository aynı transaction'a bağlıdır.
	Transaction(ctx context.Context, fn func(txRepo IBookingRepository) error) error

	Create(ctx context.Context, booking *models.Booking) error
	FindDuplicate(ctx context.Context, email string, eventID *uint, date time.Time, bookingTime *string) (*models.Booking, error)
	SumGuestsForTurn(ctx context.Context, date time.Time, bookingTime string) (int64, error)
	SumGuestsForEvening(ctx context.Context, date time.Time) (int64, error)
	FindByToken(ctx context.Context, token string) (*models.Booking, error)
	Delete(ctx context.Context, booking *models.Booking) error
	DeleteByEventID(ctx context.Context, eventID uint) (int64, error)
	FindAllPaginated(ctx context.Context, filter BookingFilter, params queryparams.ListParams) ([]models.Booking, int64, error)
	FindAllForExport(ctx context.Context, filter BookingFilter, limit int) ([]models.Booking, error)
}

// BookingRepository IBookingRepository arayüzünü GORM ile uygular.
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository yeni bir BookingRepository örneği oluşturur.
func NewBookingRepository(db *gorm.DB) IBookingRepository {
	return &BookingRepository{db: db}
}

// NewBookingRepositoryTx mevcut bir transaction'a bağlı repository döndürür.
func NewBookingRepositoryTx(tx *gorm.DB) IBookingRepository {
	return &BookingRepository{db: tx}
}

func (r *BookingRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Transaction kabul kararının tamamını (mükerrer + kapasite + insert) tek
// transaction sınırında tutmak için kullanılır.
func (r *BookingRepository) Transaction(ctx context.Context, fn func(txRepo IBookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingRepositoryTx(tx))
	})
}

// Create yeni rezervasyonu kaydeder; iptal tokenı hook ile üretilir.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking == nil || booking.Email == "" {
		return errors.New("geçersiz rezervasyon verisi")
	}
	return r.getDB(ctx).Create(booking).Error
}

// FindDuplicate aynı e-posta ile aynı kovaya ait mevcut rezervasyonu arar.
// Özel etkinlikte kova etkinliğin kendisi, brunch'ta (tarih, saat) çiftidir.
func (r *BookingRepository) FindDuplicate(ctx context.Context, email string, eventID *uint, date time.Time, bookingTime *string) (*models.Booking, error) {
	query := r.getDB(ctx).Where("email = ?", email)
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	} else {
		query = query.Where("booking_date = ?", date)
		if bookingTime != nil {
			query = query.Where("booking_time = ?", *bookingTime)
		} else {
			query = query.Where("booking_time IS NULL")
		}
	}

	var booking models.Booking
	err := query.First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BookingRepository.FindDuplicate: DB hatası", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

// SumGuestsForTurn belirli bir brunch servisindeki toplam kişi sayısı.
func (r *BookingRepository) SumGuestsForTurn(ctx context.Context, date time.Time, bookingTime string) (int64, error) {
	var total int64
	err := r.getDB(ctx).Model(&models.Booking{}).
		Where("booking_date = ? AND booking_time = ?", date, bookingTime).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&total).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.SumGuestsForTurn: DB hatası", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// SumGuestsForEvening aynı gün brunch servisleri dışında kalan toplam kişi
// sayısı. Saati belirsiz (NULL) rezervasyonlar da akşam kovasına sayılır.
func (r *BookingRepository) SumGuestsForEvening(ctx context.Context, date time.Time) (int64, error) {
	var total int64
	err := r.getDB(ctx).Model(&models.Booking{}).
		Where("booking_date = ?", date).
		Where("booking_time IS NULL OR booking_time NOT IN ?", models.BrunchSlots).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&total).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.SumGuestsForEvening: DB hatası", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// FindByToken iptal tokenı ile rezervasyonu bulur.
func (r *BookingRepository) FindByToken(ctx context.Context, token string) (*models.Booking, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var booking models.Booking
	err := r.getDB(ctx).Where("cancellation_token = ?", token).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BookingRepository.FindByToken: DB hatası", zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

// Delete rezervasyonu kalıcı olarak siler.
func (r *BookingRepository) Delete(ctx context.Context, booking *models.Booking) error {
	if booking == nil || booking.ID == 0 {
		return errors.New("geçersiz rezervasyon")
	}
	result := r.getDB(ctx).Delete(booking)
	if result.Error != nil {
		configslog.Log.Error("BookingRepository.Delete: DB hatası", zap.Uint("id", booking.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByEventID bir özel etkinliğe bağlı tüm rezervasyonları siler ve
// silinen satır sayısını döndürür.
func (r *BookingRepository) DeleteByEventID(ctx context.Context, eventID uint) (int64, error) {
	result := r.getDB(ctx).Where("event_id = ?", eventID).Delete(&models.Booking{})
	if result.Error != nil {
		configslog.Log.Error("BookingRepository.DeleteByEventID: DB hatası", zap.Uint("eventID", eventID), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func applyFilter(query *gorm.DB, filter BookingFilter) *gorm.DB {
	switch {
	case filter.EventID != nil:
		return query.Where("event_id = ?", *filter.EventID)
	case filter.Date != nil && filter.Time != nil:
		return query.Where("booking_date = ? AND booking_time = ?", *filter.Date, *filter.Time)
	default:
		return query
	}
}

// FindAllPaginated filtrelenmiş toplam sayıyı ve istenen sayfayı döndürür.
// Sıralama: tarih, sonra saat; en yeni en üstte.
func (r *BookingRepository) FindAllPaginated(ctx context.Context, filter BookingFilter, params queryparams.ListParams) ([]models.Booking, int64, error) {
	db := r.getDB(ctx)
	query := applyFilter(db.Model(&models.Booking{}), filter)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("BookingRepository.FindAllPaginated: sayım hatası", zap.Error(err))
		return nil, 0, err
	}

	var bookings []models.Booking
	err := query.
		Order("booking_date DESC").
		Order("booking_time DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&bookings).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.FindAllPaginated: listeleme hatası", zap.Error(err))
		return nil, 0, err
	}
	return bookings, totalCount, nil
}

// FindAllForExport dışa aktarım için filtrelenmiş kayıtları artan sırada,
// üst sınırla getirir.
func (r *BookingRepository) FindAllForExport(ctx context.Context, filter BookingFilter, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := applyFilter(r.getDB(ctx).Model(&models.Booking{}), filter).
		Order("booking_date ASC").
		Order("booking_time ASC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.FindAllForExport: DB hatası", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

var _ IBookingRepository = (*BookingRepository)(nil)
