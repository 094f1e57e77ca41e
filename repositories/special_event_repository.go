package repositories

import (
	"context"
	"errors"
	"time"

	"rezerve.link/configs/configslog"
	"rezerve.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISpecialEventRepository özel etkinlik veritabanı işlemleri için arayüz.
type ISpecialEventRepository interface {
	Create(ctx context.Context, event *models.SpecialEvent) error
	FindByID(ctx context.Context, id uint) (*models.SpecialEvent, error)
	FindAllOrdered(ctx context.Context) ([]models.SpecialEvent, error)
	FindUpcomingOpen(ctx context.Context, from time.Time) ([]models.SpecialEvent, error)
	// DeleteWithBookings etkinliği ve ona bağlı tüm rezervasyonları tek
	// transaction içinde siler; silinen rezervasyon sayısını döndürür.
	DeleteWithBookings(ctx context.Context, id uint) (int64, error)
}

// SpecialEventRepository ISpecialEventRepository arayüzünü GORM ile uygular.
type SpecialEventRepository struct {
	db *gorm.DB
}

// NewSpecialEventRepository yeni bir SpecialEventRepository örneği oluşturur.
func NewSpecialEventRepository(db *gorm.DB) ISpecialEventRepository {
	return &SpecialEventRepository{db: db}
}

func (r *SpecialEventRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir özel etkinlik kaydeder.
func (r *SpecialEventRepository) Create(ctx context.Context, event *models.SpecialEvent) error {
	if event == nil || event.DisplayName == "" {
		return errors.New("geçersiz etkinlik verisi")
	}
	return r.getDB(ctx).Create(event).Error
}

// FindByID belirli bir etkinliği bulur.
func (r *SpecialEventRepository) FindByID(ctx context.Context, id uint) (*models.SpecialEvent, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var event models.SpecialEvent
	err := r.getDB(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SpecialEventRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

// FindAllOrdered tüm etkinlikleri (tarih, saat) sırasıyla getirir.
func (r *SpecialEventRepository) FindAllOrdered(ctx context.Context) ([]models.SpecialEvent, error) {
	var events []models.SpecialEvent
	err := r.getDB(ctx).
		Order("booking_date ASC").
		Order("booking_time ASC").
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("SpecialEventRepository.FindAllOrdered: DB hatası", zap.Error(err))
		return nil, err
	}
	return events, nil
}

// FindUpcomingOpen bugünden itibaren rezervasyona açık etkinlikleri getirir.
// Kapalı (is_closed) etkinlikler katalogda görünmez.
func (r *SpecialEventRepository) FindUpcomingOpen(ctx context.Context, from time.Time) ([]models.SpecialEvent, error) {
	var events []models.SpecialEvent
	err := r.getDB(ctx).
		Where("booking_date >= ?", from).
		Where("is_closed = ?", false).
		Order("booking_date ASC").
		Order("booking_time ASC").
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("SpecialEventRepository.FindUpcomingOpen: DB hatası", zap.Error(err))
		return nil, err
	}
	return events, nil
}

// DeleteWithBookings etkinliği ve rezervasyonlarını birlikte siler.
// Şemadaki FK cascade'e ek olarak burada da açıkça silinir; böylece davranış
// hedef şemanın constraint taşıyıp taşımadığına bağlı kalmaz.
func (r *SpecialEventRepository) DeleteWithBookings(ctx context.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, ErrNotFound
	}
	var deletedBookings int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.SpecialEvent
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		bookingRepoTx := NewBookingRepositoryTx(tx)
		count, err := bookingRepoTx.DeleteByEventID(ctx, id)
		if err != nil {
			return err
		}
		deletedBookings = count

		return tx.Delete(&event).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("SpecialEventRepository.DeleteWithBookings: DB hatası", zap.Uint("id", id), zap.Error(err))
		}
		return 0, err
	}
	return deletedBookings, nil
}

var _ ISpecialEventRepository = (*SpecialEventRepository)(nil)
