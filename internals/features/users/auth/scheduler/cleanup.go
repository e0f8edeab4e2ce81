package scheduler

import (
	"context"
	"fmt"
	"time"

	authRepo "gerejaku_backend/internals/features/users/auth/repository"
	"gerejaku_backend/internals/helpers/dbtime"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	cleanupBatch = 100

	// DefaultCleanupSchedule: tiap hari 02:15 GMT+7
	DefaultCleanupSchedule = "15 2 * * *"
)

// RunBlacklistCleanup: satu putaran pembersihan, hapus token yang sudah
// kadaluarsa lebih dari ttlDays hari.
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, ttlDays int, now time.Time) (int64, error) {
	if ttlDays < 0 {
		ttlDays = 0
	}
	deleteBefore := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)

	var total int64
	for {
		n, err := authRepo.CleanupExpiredBlacklist(ctx, db, deleteBefore, cleanupBatch)
		if err != nil {
			return total, err
		}
		total += n
		if n < cleanupBatch {
			return total, nil
		}
	}
}

// StartBlacklistCleanupScheduler: jalan sekali saat start, lalu mengikuti jadwal cron
// sampai ctx dibatalkan.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, ttlDays int, schedule string) error {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}

	cronLog := cron.PrintfLogger(logrus.StandardLogger())
	c := cron.New(
		cron.WithLocation(dbtime.ServiceLocation),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := c.AddFunc(schedule, func() { runCleanup(ctx, db, ttlDays) }); err != nil {
		return fmt.Errorf("jadwal cleanup tidak valid %q: %w", schedule, err)
	}

	logrus.WithFields(logrus.Fields{
		"schedule": schedule,
		"ttl_days": ttlDays,
	}).Info("[CLEANUP] scheduler started")
	c.Start()

	go func() {
		runCleanup(ctx, db, ttlDays)
		<-ctx.Done()
		<-c.Stop().Done()
		logrus.Info("[CLEANUP] scheduler stopped")
	}()
	return nil
}

func runCleanup(ctx context.Context, db *gorm.DB, ttlDays int) {
	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, 4*time.Minute)
	defer cancel()

	n, err := RunBlacklistCleanup(runCtx, db, ttlDays, time.Now().UTC())
	switch {
	case err != nil:
		logrus.WithError(err).Error("[CLEANUP ERROR] Gagal hapus token")
	case n > 0:
		logrus.Infof("[CLEANUP] %d token kadaluarsa dihapus", n)
	default:
		logrus.Debug("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
}
