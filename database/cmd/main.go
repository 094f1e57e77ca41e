package main

import (
	"flag"
	"os"

	"rezerve.link/configs"
	"rezerve.link/configs/configsdatabase"
	"rezerve.link/configs/configslog"
	"rezerve.link/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	flag.Parse()

	if !*migrateFlag {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Yapılandırma yüklenemedi", zap.Error(err))
	}

	db, err := configsdatabase.InitDB(cfg.DatabaseURL)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.CloseDB(db)

	if err := database.Initialize(db); err != nil {
		os.Exit(1)
	}
}
