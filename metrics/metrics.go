package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rezerve",
			Name:      "booking_created_total",
			Help:      "Kabul edilen rezervasyon sayısı.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rezerve",
			Name:      "booking_rejected_total",
			Help:      "Reddedilen rezervasyon sayısı, sebebe göre.",
		},
		[]string{"reason"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rezerve",
			Name:      "booking_cancelled_total",
			Help:      "Token ile iptal edilen rezervasyon sayısı.",
		},
	)

	mailSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rezerve",
			Name:      "confirmation_mail_sent_total",
			Help:      "Gönderilen onay e-postası sayısı.",
		},
	)

	mailFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rezerve",
			Name:      "confirmation_mail_failed_total",
			Help:      "Gönderilemeyen onay e-postası sayısı.",
		},
	)
)

// Register metrikleri kaydeder (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRejected, bookingCancelled, mailSent, mailFailed)
	})
}

func IncBookingCreated()               { bookingCreated.Inc() }
func IncBookingRejected(reason string) { bookingRejected.WithLabelValues(reason).Inc() }
func IncBookingCancelled()             { bookingCancelled.Inc() }
func IncMailSent()                     { mailSent.Inc() }
func IncMailFailed()                   { mailFailed.Inc() }
