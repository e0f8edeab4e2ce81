package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"gerejaku_backend/internals/configs"
	database "gerejaku_backend/internals/databases"
	scheduler "gerejaku_backend/internals/features/users/auth/scheduler"
	routes "gerejaku_backend/internals/route"
	"gerejaku_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	configs.InitLogger(cfg.LogLevel)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("❌ Gagal konek DB")
	}
	database.TunePool(db)

	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logrus.WithError(err).Fatal("❌ AutoMigrate gagal")
		}
		if err := seeds.SeedSermonSessions(context.Background(), db); err != nil {
			logrus.WithError(err).Fatal("❌ Seed sesi ibadah gagal")
		}
	}
	database.WarmUpQueries(db)

	// ⏱ scheduler setelah DB siap
	bgCtx, stopBackground := context.WithCancel(context.Background())
	if err := scheduler.StartBlacklistCleanupScheduler(bgCtx, db, cfg.BlacklistTTLDays, cfg.CleanupCron); err != nil {
		logrus.WithError(err).Fatal("❌ Scheduler cleanup gagal")
	}

	app := routes.NewApp(db, cfg)

	// Start server non-blocking
	go func() {
		logrus.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("🛑 Shutting down...")

	stopBackground()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logrus.WithError(err).Warn("shutdown error")
	}
	if err := database.Close(db); err != nil {
		logrus.WithError(err).Warn("close DB error")
	}
}
