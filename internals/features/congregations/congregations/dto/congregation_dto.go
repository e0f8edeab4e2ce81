package dto

import (
	"strings"
	"time"

	"gerejaku_backend/internals/features/congregations/congregations/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   REQUEST
========================================================= */

// Dipakai untuk POST dan PUT (PUT = replace penuh, field kosong → null).
type CongregationRequest struct {
	Name           string  `json:"name" validate:"required,max=150"`
	Title          *string `json:"title" validate:"omitempty,max=50"`
	Birthday       *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	WhatsappNumber *string `json:"whatsapp_number" validate:"omitempty,max=30"`
	Address        *string `json:"address"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ApplyTo mengisi model dari request (dipakai create & update).
func (r *CongregationRequest) ApplyTo(m *model.CongregationModel) {
	m.CongregationName = strings.TrimSpace(r.Name)
	m.CongregationTitle = trimOrNil(r.Title)
	m.CongregationWhatsapp = trimOrNil(r.WhatsappNumber)
	m.CongregationAddress = trimOrNil(r.Address)

	m.CongregationBirthday = nil
	if b := trimOrNil(r.Birthday); b != nil {
		// format sudah dicek validator (datetime=2006-01-02)
		if t, err := time.Parse("2006-01-02", *b); err == nil {
			d := datatypes.Date(t)
			m.CongregationBirthday = &d
		}
	}

	m.CongregationStatus = r.Status
	if m.CongregationStatus == "" {
		m.CongregationStatus = model.CongregationStatusActive
	}
	m.CongregationDisplayName = model.BuildDisplayName(m.CongregationTitle, m.CongregationName)
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   LIST QUERY
========================================================= */

type ListCongregationQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=all active inactive"`
	Search string `query:"search" validate:"omitempty,max=100"`
}

/* =========================================================
   RESPONSE
========================================================= */

type CongregationResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Title          *string   `json:"title,omitempty"`
	DisplayName    string    `json:"display_name"`
	Birthday       *string   `json:"birthday,omitempty"`
	Status         string    `json:"status"`
	WhatsappNumber *string   `json:"whatsapp_number,omitempty"`
	Address        *string   `json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromModel(m *model.CongregationModel) CongregationResponse {
	var birthday *string
	if m.CongregationBirthday != nil {
		s := time.Time(*m.CongregationBirthday).Format("2006-01-02")
		birthday = &s
	}
	return CongregationResponse{
		ID:             m.CongregationID,
		Name:           m.CongregationName,
		Title:          m.CongregationTitle,
		DisplayName:    m.CongregationDisplayName,
		Birthday:       birthday,
		Status:         m.CongregationStatus,
		WhatsappNumber: m.CongregationWhatsapp,
		Address:        m.CongregationAddress,
		CreatedAt:      m.CongregationCreatedAt,
		UpdatedAt:      m.CongregationUpdatedAt,
	}
}

func FromModels(list []model.CongregationModel) []CongregationResponse {
	out := make([]CongregationResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
