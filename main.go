package main

import (
	"os"
	"os/signal"
	"syscall"

	"rezerve.link/configs"
	"rezerve.link/configs/configsdatabase"
	"rezerve.link/configs/configslog"
	"rezerve.link/database"
	"rezerve.link/metrics"
	"rezerve.link/notifications"
	"rezerve.link/repositories"
	"rezerve.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Yapılandırma yüklenemedi", zap.Error(err))
	}
	if cfg.AdminPassword == "" {
		configslog.SLog.Warn("ADMIN_PASSWORD tanımlı değil; yönetici uçları kapalı kalacak.")
	}

	db, err := configsdatabase.InitDB(cfg.DatabaseURL)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.CloseDB(db)

	if err := database.Initialize(db); err != nil {
		configslog.Log.Fatal("Veritabanı şeması hazırlanamadı", zap.Error(err))
	}

	metrics.Register()

	// Onay e-postaları, HTTP isteğinden bağımsız kendi worker'ında gönderilir.
	mailer := notifications.NewSMTPMailer(cfg.Mail)
	dispatcher := notifications.NewDispatcher(cfg, mailer, repositories.NewSpecialEventRepository(db))
	dispatcher.Start()
	defer dispatcher.Stop()

	app := fiber.New()
	routes.SetupRoutes(app, cfg, db, dispatcher)

	// Graceful shutdown: bekleyen e-posta işleri Stop ile boşaltılır.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Sunucu %s portunda dinlemede", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
