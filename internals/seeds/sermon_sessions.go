package seeds

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	attendanceModel "gerejaku_backend/internals/features/attendances/attendances/model"
)

// SeedSermonSessions idempotent: hanya membuat sesi yang belum ada.
func SeedSermonSessions(ctx context.Context, db *gorm.DB) error {
	logrus.Info("🌱 Seeding sermon sessions...")
	for _, name := range attendanceModel.SessionNames {
		session := attendanceModel.SermonSessionModel{SermonSessionName: name}
		if err := db.WithContext(ctx).
			Where(attendanceModel.SermonSessionModel{SermonSessionName: name}).
			FirstOrCreate(&session).Error; err != nil {
			return err
		}
	}
	logrus.Info("✅ Seeded sermon sessions")
	return nil
}
