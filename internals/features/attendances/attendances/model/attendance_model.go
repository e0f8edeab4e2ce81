package model

import (
	"time"

	congregationModel "gerejaku_backend/internals/features/congregations/congregations/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceModel: satu kehadiran (jemaat, sesi, waktu pencatatan).
// Immutable setelah dibuat; ikut terhapus saat jemaat dihapus.
type AttendanceModel struct {
	AttendanceID             uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	AttendanceCongregationID uuid.UUID `gorm:"column:attendance_congregation_id;type:uuid;not null;index:idx_attendances_congregation_date,priority:1" json:"attendance_congregation_id"`
	AttendanceSessionID      uuid.UUID `gorm:"column:attendance_session_id;type:uuid;not null;index" json:"attendance_session_id"`

	// waktu pencatatan (UTC), bukan sekadar tanggal
	AttendanceDate      time.Time `gorm:"column:attendance_date;not null;index;index:idx_attendances_congregation_date,priority:2" json:"attendance_date"`
	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`

	Congregation  *congregationModel.CongregationModel `gorm:"foreignKey:AttendanceCongregationID;references:CongregationID;constraint:OnDelete:CASCADE" json:"congregation,omitempty"`
	SermonSession *SermonSessionModel                  `gorm:"foreignKey:AttendanceSessionID;references:SermonSessionID;constraint:OnDelete:RESTRICT" json:"sermon_session,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
