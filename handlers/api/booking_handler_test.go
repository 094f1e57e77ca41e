package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rezerve.link/configs"
	"rezerve.link/configs/configslog"
	"rezerve.link/models"
	"rezerve.link/notifications"
	"rezerve.link/pkg/queryparams"
	"rezerve.link/repositories"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingService) CancelBookingByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockBookingService) GetBookingsPaginated(ctx context.Context, filter repositories.BookingFilter, params queryparams.ListParams) ([]models.Booking, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]models.Booking), args.Get(1).(int64), args.Error(2)
}

var _ services.IBookingService = (*mockBookingService)(nil)

// newTestApp handler'ı kuyruğu hiç işlemeyen bir dispatcher ile kurar;
// Enqueue tamponlu kanala yazar, worker başlatılmaz.
func newTestApp(service services.IBookingService) *fiber.App {
	cfg := &configs.Config{RestaurantName: "Rezerve", FrontendURL: "https://rezerve.link"}
	dispatcher := notifications.NewDispatcher(cfg, notifications.NewSMTPMailer(cfg.Mail), nil)
	handler := NewBookingHandler(service, dispatcher)

	app := fiber.New()
	app.Post("/api/bookings", handler.CreateBooking)
	app.Get("/api/bookings/cancel/:token", handler.CancelBooking)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func postJSON(app *fiber.App, path, payload string) (*http.Response, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req)
}

func TestCreateBookingEndpoint_Created(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	slot := models.BrunchSlotFirst
	accepted := &models.Booking{
		Name:              "Ayşe Yılmaz",
		Email:             "ayse@example.com",
		Phone:             "+90 555 000 0000",
		BookingDate:       time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
		BookingTime:       &slot,
		Guests:            4,
		CancellationToken: "11111111-2222-3333-4444-555555555555",
	}
	accepted.ID = 9
	service.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in services.CreateBookingInput) bool {
		return in.Email == "ayse@example.com" &&
			in.BookingTime != nil && *in.BookingTime == models.BrunchSlotFirst
	})).Return(accepted, nil)

	resp, err := postJSON(app, "/api/bookings", `{
		"name": "Ayşe Yılmaz",
		"email": "ayse@example.com",
		"phone": "+90 555 000 0000",
		"booking_date": "2026-08-30",
		"booking_time": "12:00:00",
		"guests": 4
	}`)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", body["cancellation_token"])
	assert.Equal(t, "2026-08-30", body["booking_date"])
	assert.Equal(t, "12:00", body["booking_time"], "saat normalize edilmiş biçimde dönmeli")
	service.AssertExpectations(t)
}

func TestCreateBookingEndpoint_InvalidDate(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	resp, err := postJSON(app, "/api/bookings", `{
		"name": "Ayşe",
		"email": "ayse@example.com",
		"phone": "555",
		"booking_date": "30/08/2026",
		"guests": 2
	}`)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingEndpoint_InvalidClock(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	resp, err := postJSON(app, "/api/bookings", `{
		"name": "Ayşe",
		"email": "ayse@example.com",
		"phone": "555",
		"booking_date": "2026-08-30",
		"booking_time": "öğlen",
		"guests": 2
	}`)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingEndpoint_CapacityRejected(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	service.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, &services.CapacityError{BucketLabel: "saat 12:00 servisi", Remaining: 5})

	resp, err := postJSON(app, "/api/bookings", `{
		"name": "Ayşe",
		"email": "ayse@example.com",
		"phone": "555",
		"booking_date": "2026-08-30",
		"booking_time": "12:00",
		"guests": 10
	}`)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Üzgünüz, saat 12:00 servisi için yeterli yer yok. Kalan kontenjan: 5 kişi.", body["error"])
}

func TestCreateBookingEndpoint_DuplicateRejected(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	service.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, services.ErrDuplicateBooking)

	resp, err := postJSON(app, "/api/bookings", `{
		"name": "Ayşe",
		"email": "ayse@example.com",
		"phone": "555",
		"booking_date": "2026-08-30",
		"guests": 2
	}`)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateBookingEndpoint_EventNotFound(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	service.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, services.ErrEventNotFound)

	resp, err := postJSON(app, "/api/bookings", `{
		"event_id": 42,
		"name": "Ayşe",
		"email": "ayse@example.com",
		"phone": "555",
		"booking_date": "2026-08-30",
		"guests": 2
	}`)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCancelBookingEndpoint(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	service.On("CancelBookingByToken", mock.Anything, "tok-1").Return(nil)

	req := httptest.NewRequest("GET", "/api/bookings/cancel/tok-1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Rezervasyonunuz başarıyla iptal edildi.", body["message"])
	service.AssertExpectations(t)
}

func TestCancelBookingEndpoint_UnknownToken(t *testing.T) {
	service := new(mockBookingService)
	app := newTestApp(service)

	service.On("CancelBookingByToken", mock.Anything, "yok").
		Return(services.ErrBookingNotFound)

	req := httptest.NewRequest("GET", "/api/bookings/cancel/yok", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
