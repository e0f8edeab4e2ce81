// Package testutil berisi helper untuk test yang butuh database.
package testutil

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "gerejaku_backend/internals/databases"
	attendanceModel "gerejaku_backend/internals/features/attendances/attendances/model"
	congregationModel "gerejaku_backend/internals/features/congregations/congregations/model"
)

var nonWord = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// NewDB membuka sqlite in-memory per test lalu menjalankan AutoMigrate yang sama dengan produksi.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := nonWord.ReplaceAllString(t.Name(), "_") + "_" + uuid.NewString()[:8]
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// SeedSessions membuat sesi ibadah dengan nama yang diberikan (default: semua sesi).
func SeedSessions(t *testing.T, db *gorm.DB, names ...string) map[string]attendanceModel.SermonSessionModel {
	t.Helper()
	if len(names) == 0 {
		names = attendanceModel.SessionNames
	}
	out := make(map[string]attendanceModel.SermonSessionModel, len(names))
	for _, n := range names {
		s := attendanceModel.SermonSessionModel{SermonSessionName: n}
		require.NoError(t, db.Create(&s).Error)
		out[n] = s
	}
	return out
}

// CreateCongregation membuat satu jemaat aktif.
func CreateCongregation(t *testing.T, db *gorm.DB, name string) congregationModel.CongregationModel {
	t.Helper()
	c := congregationModel.CongregationModel{
		CongregationName:   name,
		CongregationStatus: congregationModel.CongregationStatusActive,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// CreateAttendance menyisipkan kehadiran langsung (tanpa cek jam ibadah).
func CreateAttendance(t *testing.T, db *gorm.DB, congregationID, sessionID uuid.UUID, at time.Time) attendanceModel.AttendanceModel {
	t.Helper()
	a := attendanceModel.AttendanceModel{
		AttendanceCongregationID: congregationID,
		AttendanceSessionID:      sessionID,
		AttendanceDate:           at.UTC(),
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

// Clock mengembalikan fungsi waktu tetap untuk service yang punya field Now.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// WIB membangun waktu di zona GMT+7.
func WIB(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.FixedZone("GMT+7", 7*60*60))
}
