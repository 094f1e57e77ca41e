package configs

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MailConfig SMTP üzerinden onay e-postası göndermek için gereken ayarlar.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled SMTP ayarlarının kullanılabilir olup olmadığını söyler.
// Host veya From eksikse gönderim denenmez, sadece loglanır.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.From != ""
}

// Config uygulamanın tüm ayarlarını tutar. Process başında bir kez yüklenir,
// sonrasında değişmez; bileşenlere constructor üzerinden verilir.
type Config struct {
	Port           string
	DatabaseURL    string
	AdminUsername  string
	AdminPassword  string // boşsa admin uçları kapalı kalır (fail-closed)
	FrontendURL    string // iptal linkinin taban adresi
	RestaurantName string // e-posta ve PDF başlıklarındaki marka adı
	Mail           MailConfig
}

// Load .env dosyasını (varsa) ve ortam değişkenlerini okuyarak Config üretir.
// DATABASE_URL zorunludur; yoksa hata döner ve uygulama açılmamalıdır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL ortam değişkeni bulunamadı")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseURL:    dbURL,
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://127.0.0.1:5502"),
		RestaurantName: getEnv("RESTAURANT_NAME", "Rezerve"),
		Mail: MailConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     getEnvInt("MAIL_PORT", 587),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
