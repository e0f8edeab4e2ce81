package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nama sesi ibadah bersifat tetap (reference data, di-seed sekali).
const (
	SessionOne = "Session 1"
	SessionTwo = "Session 2"
)

// SessionNames urut sesuai jam ibadah.
var SessionNames = []string{SessionOne, SessionTwo}

type SermonSessionModel struct {
	SermonSessionID        uuid.UUID `gorm:"column:sermon_session_id;type:uuid;primaryKey" json:"sermon_session_id"`
	SermonSessionName      string    `gorm:"column:sermon_session_name;type:varchar(50);not null;uniqueIndex" json:"sermon_session_name"`
	SermonSessionCreatedAt time.Time `gorm:"column:sermon_session_created_at;autoCreateTime" json:"sermon_session_created_at"`
}

func (SermonSessionModel) TableName() string {
	return "sermon_sessions"
}

func (m *SermonSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SermonSessionID == uuid.Nil {
		m.SermonSessionID = uuid.New()
	}
	return nil
}
