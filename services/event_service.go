package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"rezerve.link/configs/configslog"
	"rezerve.link/models"
	"rezerve.link/repositories"
)

// EventServiceError özel servis hataları.
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound     EventServiceError = "etkinlik bulunamadı"
	ErrEventClosed       EventServiceError = "bu etkinlik için rezervasyonlar kapatıldı"
	ErrEventInvalidInput EventServiceError = "geçersiz etkinlik verisi"
)

// Katalog üretim kuralları.
const (
	brunchWeeksAhead = 8       // bugünden itibaren kaç pazar üretilecek
	defaultSortClock = "00:00" // saati olmayan girdiler için sıralama saati
	catalogDateLabel = "02/01" // etiketlerdeki gün/ay biçimi
)

// BookableEvent katalogdaki tek bir rezerve edilebilir girdi.
// Brunch girdilerinde ID yoktur, AvailableSlots doludur.
type BookableEvent struct {
	Type           string   `json:"type"` // "special" | "brunch"
	ID             *uint    `json:"id"`
	DisplayName    string   `json:"display_name"`
	BookingDate    string   `json:"booking_date"` // "YYYY-MM-DD"
	BookingTime    *string  `json:"booking_time,omitempty"`
	AvailableSlots []string `json:"available_slots,omitempty"`
}

// CreateSpecialEventInput admin tarafından açılacak etkinlik verisi.
type CreateSpecialEventInput struct {
	DisplayName string
	BookingDate time.Time
	BookingTime *string
	IsClosed    bool
}

// IEventService özel etkinlik yönetimi ve katalog üretimi için arayüz.
type IEventService interface {
	GetBookableEvents(ctx context.Context, today time.Time) ([]BookableEvent, error)
	CreateSpecialEvent(ctx context.Context, input CreateSpecialEventInput) (*models.SpecialEvent, error)
	GetSpecialEvents(ctx context.Context) ([]models.SpecialEvent, error)
	DeleteSpecialEvent(ctx context.Context, id uint) (*models.SpecialEvent, error)
}

// EventService IEventService arayüzünü uygular.
type EventService struct {
	repo repositories.ISpecialEventRepository
}

// NewEventService yeni bir EventService örneği oluşturur (DI ile).
func NewEventService(repo repositories.ISpecialEventRepository) IEventService {
	return &EventService{repo: repo}
}

// GetBookableEvents o an rezerve edilebilir girdilerin listesini üretir:
// bugünden itibaren açık özel etkinlikler + önümüzdeki 8 pazarın brunch'ları.
// Liste her çağrıda yeniden hesaplanır; slot doluluk bilgisi içermez, doluluk
// ancak kabul anında öğrenilir.
func (s *EventService) GetBookableEvents(ctx context.Context, today time.Time) ([]BookableEvent, error) {
	today = truncateToDate(today)

	specialEvents, err := s.repo.FindUpcomingOpen(ctx, today)
	if err != nil {
		return nil, err
	}

	events := make([]BookableEvent, 0, len(specialEvents)+brunchWeeksAhead)
	for _, ev := range specialEvents {
		id := ev.ID
		events = append(events, BookableEvent{
			Type:        "special",
			ID:          &id,
			DisplayName: fmt.Sprintf("%s - %s", ev.DisplayName, ev.BookingDate.Format(catalogDateLabel)),
			BookingDate: ev.BookingDate.Format("2006-01-02"),
			BookingTime: ev.BookingTime,
		})
	}

	// Bugün dahil önümüzdeki 8 pazar.
	for d := today; len(events) < len(specialEvents)+brunchWeeksAhead; d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			continue
		}
		events = append(events, BookableEvent{
			Type:           "brunch",
			DisplayName:    fmt.Sprintf("Brunch - %s", d.Format(catalogDateLabel)),
			BookingDate:    d.Format("2006-01-02"),
			AvailableSlots: append([]string(nil), models.BrunchSlots...),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		di, ti := sortKey(events[i])
		dj, tj := sortKey(events[j])
		if di != dj {
			return di < dj
		}
		return ti < tj
	})
	return events, nil
}

// sortKey girdinin (tarih, etkin saat) sıralama anahtarını üretir. Brunch
// girdileri ilk servis saatiyle, saatsiz etkinlikler sabah placeholder'ı ile
// sıralanır.
func sortKey(ev BookableEvent) (string, string) {
	clock := defaultSortClock
	switch {
	case ev.BookingTime != nil:
		clock = *ev.BookingTime
	case len(ev.AvailableSlots) > 0:
		clock = ev.AvailableSlots[0]
	}
	return ev.BookingDate, clock
}

// CreateSpecialEvent yeni bir özel etkinlik açar.
func (s *EventService) CreateSpecialEvent(ctx context.Context, input CreateSpecialEventInput) (*models.SpecialEvent, error) {
	if input.DisplayName == "" {
		return nil, fmt.Errorf("%w: etkinlik adı zorunludur", ErrEventInvalidInput)
	}
	if input.BookingDate.IsZero() {
		return nil, fmt.Errorf("%w: etkinlik tarihi zorunludur", ErrEventInvalidInput)
	}

	event := &models.SpecialEvent{
		DisplayName: input.DisplayName,
		BookingDate: truncateToDate(input.BookingDate),
		BookingTime: input.BookingTime,
		IsClosed:    input.IsClosed,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Özel etkinlik oluşturuldu: ID %d, %s", event.ID, event.DisplayName)
	return event, nil
}

// GetSpecialEvents tüm etkinlikleri (tarih, saat) sırasıyla döndürür.
func (s *EventService) GetSpecialEvents(ctx context.Context) ([]models.SpecialEvent, error) {
	return s.repo.FindAllOrdered(ctx)
}

// DeleteSpecialEvent etkinliği ve ona bağlı tüm rezervasyonları siler,
// silinen etkinliği döndürür.
func (s *EventService) DeleteSpecialEvent(ctx context.Context, id uint) (*models.SpecialEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	deletedBookings, err := s.repo.DeleteWithBookings(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	configslog.SLog.Infof("Özel etkinlik silindi: ID %d, %s (%d rezervasyon ile birlikte)",
		event.ID, event.DisplayName, deletedBookings)
	return event, nil
}

var _ IEventService = (*EventService)(nil)
