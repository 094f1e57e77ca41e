package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"rezerve.link/models"
)

// confirmationData onay e-postası şablonuna giden alanlar.
type confirmationData struct {
	RestaurantName   string
	GuestName        string
	EventName        string
	DateFormatted    string
	TimeFormatted    string
	Guests           int
	CancellationLink string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="tr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Rezervasyon Onayı - {{.RestaurantName}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f1e8; color: #333;">
  <table align="center" border="0" cellpadding="0" cellspacing="0" width="100%" style="max-width: 600px; margin: 20px auto; border-collapse: collapse; background-color: #ffffff; border: 1px solid #ddd;">
    <tr>
      <td align="center" style="padding: 20px 0; background-color: #b5402a;">
        <h1 style="color: #f4f1e8; margin: 0;">{{.RestaurantName}}</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 40px 30px;">
        <h2 style="color: #333333; margin-top: 0;">Merhaba {{.GuestName}},</h2>
        <p style="font-size: 16px; line-height: 1.5;">Rezervasyonunuz onaylandı. Detaylar:</p>
        <table border="0" cellpadding="5" cellspacing="0" width="100%" style="margin-top: 20px; border-collapse: collapse;">
          {{if .EventName}}<tr style="border-bottom: 1px solid #eee;">
            <td style="padding: 10px 0; font-size: 16px;"><strong>Etkinlik:</strong></td>
            <td style="padding: 10px 0; font-size: 16px; text-align: right;">{{.EventName}}</td>
          </tr>{{end}}
          <tr style="border-bottom: 1px solid #eee;">
            <td style="padding: 10px 0; font-size: 16px;"><strong>Tarih:</strong></td>
            <td style="padding: 10px 0; font-size: 16px; text-align: right;">{{.DateFormatted}}</td>
          </tr>
          <tr style="border-bottom: 1px solid #eee;">
            <td style="padding: 10px 0; font-size: 16px;"><strong>Saat:</strong></td>
            <td style="padding: 10px 0; font-size: 16px; text-align: right;">{{.TimeFormatted}}</td>
          </tr>
          <tr>
            <td style="padding: 10px 0; font-size: 16px;"><strong>Kişi:</strong></td>
            <td style="padding: 10px 0; font-size: 16px; text-align: right;">{{.Guests}}</td>
          </tr>
        </table>
        <p style="font-size: 16px; line-height: 1.5; margin-top: 30px;">Bizi tercih ettiğiniz için teşekkürler, sizi ağırlamak için sabırsızlanıyoruz.</p>
        <p style="font-size: 14px; color: #888; margin-top: 25px;">Rezervasyonunuzu iptal etmeniz gerekirse şu bağlantıyı kullanabilirsiniz: <a href="{{.CancellationLink}}" style="color: #b5402a;">Rezervasyonu iptal et</a>.</p>
      </td>
    </tr>
    <tr>
      <td align="center" style="padding: 20px; background-color: #f4f4f4; font-size: 12px; color: #777;">
        <p style="margin: 0;">Bu e-posta otomatik olarak oluşturulmuştur, lütfen yanıtlamayınız.</p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// renderConfirmation rezervasyon için onay e-postasının HTML gövdesini üretir.
// eventName boşsa etkinlik satırı hiç basılmaz.
func renderConfirmation(restaurantName, frontendURL string, booking models.Booking, eventName string) (string, error) {
	data := confirmationData{
		RestaurantName:   restaurantName,
		GuestName:        booking.Name,
		EventName:        eventName,
		DateFormatted:    booking.BookingDate.Format("02/01/2006"),
		TimeFormatted:    "-",
		Guests:           booking.Guests,
		CancellationLink: fmt.Sprintf("%s/iptal.html?token=%s", frontendURL, booking.CancellationToken),
	}
	if booking.BookingTime != nil {
		data.TimeFormatted = *booking.BookingTime
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
