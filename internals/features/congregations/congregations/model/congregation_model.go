package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CongregationStatusActive   = "active"
	CongregationStatusInactive = "inactive"
)

// CongregationModel = satu jemaat (anggota gereja).
type CongregationModel struct {
	CongregationID          uuid.UUID       `gorm:"column:congregation_id;type:uuid;primaryKey" json:"congregation_id"`
	CongregationName        string          `gorm:"column:congregation_name;type:varchar(150);not null" json:"congregation_name"`
	CongregationTitle       *string         `gorm:"column:congregation_title;type:varchar(50)" json:"congregation_title,omitempty"`
	CongregationDisplayName string          `gorm:"column:congregation_display_name;type:varchar(200);not null" json:"congregation_display_name"`
	CongregationBirthday    *datatypes.Date `gorm:"column:congregation_birthday" json:"congregation_birthday,omitempty"`
	CongregationStatus      string          `gorm:"column:congregation_status;type:varchar(10);not null;default:active;index" json:"congregation_status"`
	CongregationWhatsapp    *string         `gorm:"column:congregation_whatsapp_number;type:varchar(30);uniqueIndex" json:"congregation_whatsapp_number,omitempty"`
	CongregationAddress     *string         `gorm:"column:congregation_address;type:text" json:"congregation_address,omitempty"`

	CongregationCreatedAt time.Time `gorm:"column:congregation_created_at;autoCreateTime;index" json:"congregation_created_at"`
	CongregationUpdatedAt time.Time `gorm:"column:congregation_updated_at;autoUpdateTime" json:"congregation_updated_at"`
}

func (CongregationModel) TableName() string {
	return "congregations"
}

func (m *CongregationModel) BeforeCreate(tx *gorm.DB) error {
	if m.CongregationID == uuid.Nil {
		m.CongregationID = uuid.New()
	}
	if m.CongregationStatus == "" {
		m.CongregationStatus = CongregationStatusActive
	}
	m.CongregationDisplayName = BuildDisplayName(m.CongregationTitle, m.CongregationName)
	return nil
}

func (m *CongregationModel) BeforeSave(tx *gorm.DB) error {
	m.CongregationDisplayName = BuildDisplayName(m.CongregationTitle, m.CongregationName)
	return nil
}

// BuildDisplayName: "title name", atau name saja kalau title kosong.
func BuildDisplayName(title *string, name string) string {
	name = strings.TrimSpace(name)
	if title == nil || strings.TrimSpace(*title) == "" {
		return name
	}
	return strings.TrimSpace(*title) + " " + name
}
