package admin

import (
	"fmt"

	"rezerve.link/repositories"
	"rezerve.link/services"

	"github.com/gofiber/fiber/v2"
)

// parseBookingFilter listeleme ve dışa aktarım uçlarının ortak filtre
// parametrelerini çözer. Öncelik: event_id > (event_date + event_time) çifti.
// Çiftin yalnız bir yarısı verilmişse filtre uygulanmaz.
func parseBookingFilter(c *fiber.Ctx) (repositories.BookingFilter, error) {
	var filter repositories.BookingFilter

	if eventID := c.QueryInt("event_id", 0); eventID > 0 {
		id := uint(eventID)
		filter.EventID = &id
		return filter, nil
	}

	dateStr := c.Query("event_date")
	timeStr := c.Query("event_time")
	if dateStr == "" || timeStr == "" {
		return filter, nil
	}

	date, err := services.ParseDate(dateStr)
	if err != nil {
		return filter, fmt.Errorf("geçersiz event_date parametresi")
	}
	clock, err := services.NormalizeClock(timeStr)
	if err != nil {
		return filter, fmt.Errorf("geçersiz event_time parametresi")
	}
	filter.Date = &date
	filter.Time = &clock
	return filter, nil
}
