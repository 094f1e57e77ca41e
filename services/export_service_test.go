package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"rezerve.link/configs"
	"rezerve.link/models"
	"rezerve.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportTestBookings() []models.Booking {
	first := models.Booking{
		Name:        "Ali Veli",
		Email:       "ali@example.com",
		Phone:       "+90 555 111 2233",
		BookingDate: date(2026, time.August, 30),
		BookingTime: strPtr(models.BrunchSlotFirst),
		Guests:      2,
	}
	first.ID = 1
	second := models.Booking{
		Name:        "Çok Uzun İsimli Bir Misafir Kaydı",
		Email:       "uzun@example.com",
		Phone:       "+90 555 444 5566",
		BookingDate: date(2026, time.August, 30),
		Guests:      6,
		Notes:       "pencere kenarı",
	}
	second.ID = 2
	return []models.Booking{first, second}
}

func newExportService(bookingRepo *mockBookingRepo, eventRepo *mockEventRepo) IExportService {
	cfg := &configs.Config{RestaurantName: "Rezerve"}
	return NewExportService(bookingRepo, eventRepo, cfg)
}

func TestBuildPDF_AllBookings(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	eventRepo := new(mockEventRepo)
	service := newExportService(bookingRepo, eventRepo)

	bookingRepo.On("FindAllForExport", mock.Anything, repositories.BookingFilter{}, MaxExportRecords).
		Return(exportTestBookings(), nil)

	file, err := service.BuildPDF(context.Background(), repositories.BookingFilter{}, 0)

	require.NoError(t, err)
	assert.Equal(t, "rezervasyonlar_rezerve.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	require.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")), "çıktı geçerli bir PDF başlığıyla başlamalı")
	bookingRepo.AssertExpectations(t)
}

func TestBuildPDF_EventFilterNamesFile(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	eventRepo := new(mockEventRepo)
	service := newExportService(bookingRepo, eventRepo)

	event := &models.SpecialEvent{
		DisplayName: "Yaz Konseri",
		BookingDate: date(2026, time.September, 5),
	}
	event.ID = 3
	filter := repositories.BookingFilter{EventID: uintPtr(3)}
	bookingRepo.On("FindAllForExport", mock.Anything, filter, MaxExportRecords).
		Return(exportTestBookings(), nil)
	eventRepo.On("FindByID", mock.Anything, uint(3)).Return(event, nil)

	file, err := service.BuildPDF(context.Background(), filter, 0)

	require.NoError(t, err)
	assert.Equal(t, "rezervasyonlar_Yaz_Konseri_2026-09-05.pdf", file.FileName)
}

func TestBuildPDF_MissingEventFallsBackToGenericName(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	eventRepo := new(mockEventRepo)
	service := newExportService(bookingRepo, eventRepo)

	filter := repositories.BookingFilter{EventID: uintPtr(99)}
	bookingRepo.On("FindAllForExport", mock.Anything, filter, MaxExportRecords).
		Return([]models.Booking{}, nil)
	eventRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, repositories.ErrNotFound)

	file, err := service.BuildPDF(context.Background(), filter, 0)

	require.NoError(t, err)
	assert.Equal(t, "rezervasyonlar_rezerve.pdf", file.FileName)
}

func TestBuildXLSX_BrunchFilter(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	eventRepo := new(mockEventRepo)
	service := newExportService(bookingRepo, eventRepo)

	day := date(2026, time.August, 30)
	filter := repositories.BookingFilter{Date: &day, Time: strPtr(models.BrunchSlotFirst)}
	bookingRepo.On("FindAllForExport", mock.Anything, filter, MaxExportRecords).
		Return(exportTestBookings(), nil)

	file, err := service.BuildXLSX(context.Background(), filter, 0)

	require.NoError(t, err)
	assert.Equal(t, "rezervasyonlar_brunch_2026-08-30_12-00.xlsx", file.FileName)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Rezervasyonlar"
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", name)

	clock, err := f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "-", clock, "saatsiz kayıt tire ile gösterilir")
}

func TestBuildXLSX_CustomLimitPassedThrough(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	eventRepo := new(mockEventRepo)
	service := newExportService(bookingRepo, eventRepo)

	bookingRepo.On("FindAllForExport", mock.Anything, repositories.BookingFilter{}, 50).
		Return([]models.Booking{}, nil)

	_, err := service.BuildXLSX(context.Background(), repositories.BookingFilter{}, 50)

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "kısa", truncateRunes("kısa", 20))
	assert.Equal(t, "Çok Uzun İsimli Bir ", truncateRunes("Çok Uzun İsimli Bir Misafir Kaydı", 20))
}
