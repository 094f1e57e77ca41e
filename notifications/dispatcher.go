// notifications: kabul edilen rezervasyonların onay e-postalarını HTTP
// isteğinden bağımsız olarak gönderen süreç içi kuyruk.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rezerve.link/configs"
	"rezerve.link/configs/configslog"
	"rezerve.link/metrics"
	"rezerve.link/models"
	"rezerve.link/repositories"

	"go.uber.org/zap"
)

const defaultQueueSize = 64

// Dispatcher rezervasyon onay e-postalarını arka planda gönderir. Worker
// kendi repository scope'unu kullanır; isteğin veritabanı oturumuna asla
// bağımlı değildir. Gönderim hataları loglanır, yeniden denenmez ve
// rezervasyon sonucunu hiçbir koşulda etkilemez.
type Dispatcher struct {
	cfg       *configs.Config
	mailer    Mailer
	eventRepo repositories.ISpecialEventRepository

	jobs chan models.Booking
	wg   sync.WaitGroup
}

// NewDispatcher yeni bir Dispatcher örneği oluşturur (DI ile).
func NewDispatcher(cfg *configs.Config, mailer Mailer, eventRepo repositories.ISpecialEventRepository) *Dispatcher {
	return &Dispatcher{
		cfg:       cfg,
		mailer:    mailer,
		eventRepo: eventRepo,
		jobs:      make(chan models.Booking, defaultQueueSize),
	}
}

// Start worker goroutine'ini başlatır.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for booking := range d.jobs {
			d.process(booking)
		}
	}()
}

// Stop kuyruğu kapatır ve bekleyen işlerin bitmesini bekler.
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}

// Enqueue rezervasyonu kuyruğa ekler; asla bloke olmaz. Kuyruk doluysa iş
// düşürülür ve loglanır (yeniden deneme politikası yok).
func (d *Dispatcher) Enqueue(booking models.Booking) {
	select {
	case d.jobs <- booking:
	default:
		configslog.Log.Warn("Onay e-postası kuyruğu dolu, iş düşürüldü",
			zap.Uint("bookingID", booking.ID), zap.String("email", booking.Email))
		metrics.IncMailFailed()
	}
}

// process tek bir onay e-postasını hazırlar ve gönderir.
func (d *Dispatcher) process(booking models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	eventName := d.resolveEventName(ctx, booking)

	body, err := renderConfirmation(d.cfg.RestaurantName, d.cfg.FrontendURL, booking, eventName)
	if err != nil {
		configslog.Log.Error("Onay e-postası gövdesi oluşturulamadı",
			zap.Uint("bookingID", booking.ID), zap.Error(err))
		metrics.IncMailFailed()
		return
	}

	if !d.cfg.Mail.Enabled() {
		configslog.SLog.Warnf("SMTP yapılandırılmamış, onay e-postası gönderilmedi: rezervasyon %d", booking.ID)
		return
	}

	subject := fmt.Sprintf("Rezervasyon Onayı - %s", d.cfg.RestaurantName)
	if err := d.mailer.Send(booking.Email, subject, body); err != nil {
		configslog.Log.Error("Onay e-postası gönderilemedi",
			zap.Uint("bookingID", booking.ID), zap.String("email", booking.Email), zap.Error(err))
		metrics.IncMailFailed()
		return
	}

	metrics.IncMailSent()
	configslog.SLog.Infof("Onay e-postası gönderildi: rezervasyon %d (%s)", booking.ID, booking.Email)
}

// resolveEventName e-postada gösterilecek etkinlik adını belirler. Özel
// etkinlik değilse girdi bir brunch'tır.
func (d *Dispatcher) resolveEventName(ctx context.Context, booking models.Booking) string {
	if booking.EventID == nil {
		return fmt.Sprintf("Brunch - %s", booking.BookingDate.Format("02/01/2006"))
	}
	event, err := d.eventRepo.FindByID(ctx, *booking.EventID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Warn("E-posta için etkinlik adı okunamadı",
				zap.Uint("eventID", *booking.EventID), zap.Error(err))
		}
		return ""
	}
	return event.DisplayName
}
