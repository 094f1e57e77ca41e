package services

import (
	"context"
	"time"

	"rezerve.link/models"
	"rezerve.link/pkg/queryparams"
	"rezerve.link/repositories"

	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

// Transaction testlerde gerçek bir transaction açmaz; fn doğrudan aynı mock
// ile çalıştırılır.
func (m *mockBookingRepo) Transaction(ctx context.Context, fn func(txRepo repositories.IBookingRepository) error) error {
	return fn(m)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) FindDuplicate(ctx context.Context, email string, eventID *uint, date time.Time, bookingTime *string) (*models.Booking, error) {
	args := m.Called(ctx, email, eventID, date, bookingTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) SumGuestsForTurn(ctx context.Context, date time.Time, bookingTime string) (int64, error) {
	args := m.Called(ctx, date, bookingTime)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) SumGuestsForEvening(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindByToken(ctx context.Context, token string) (*models.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) DeleteByEventID(ctx context.Context, eventID uint) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindAllPaginated(ctx context.Context, filter repositories.BookingFilter, params queryparams.ListParams) ([]models.Booking, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]models.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingRepo) FindAllForExport(ctx context.Context, filter repositories.BookingFilter, limit int) ([]models.Booking, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]models.Booking), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.SpecialEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.SpecialEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpecialEvent), args.Error(1)
}

func (m *mockEventRepo) FindAllOrdered(ctx context.Context) ([]models.SpecialEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SpecialEvent), args.Error(1)
}

func (m *mockEventRepo) FindUpcomingOpen(ctx context.Context, from time.Time) ([]models.SpecialEvent, error) {
	args := m.Called(ctx, from)
	return args.Get(0).([]models.SpecialEvent), args.Error(1)
}

func (m *mockEventRepo) DeleteWithBookings(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repositories.IBookingRepository      = (*mockBookingRepo)(nil)
	_ repositories.ISpecialEventRepository = (*mockEventRepo)(nil)
)

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
