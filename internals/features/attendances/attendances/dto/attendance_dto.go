package dto

import (
	"time"

	"gerejaku_backend/internals/features/attendances/attendances/model"
	congregationDTO "gerejaku_backend/internals/features/congregations/congregations/dto"

	"github.com/google/uuid"
)

/* =========================================================
   REQUEST (POST /api/attendances)
   Key camelCase mengikuti payload form absensi.
========================================================= */

type AttendeeRequest struct {
	CongregationID    *string `json:"congregationId" validate:"omitempty,uuid"`
	Name              string  `json:"name" validate:"omitempty,max=150"`
	IsNewCongregation bool    `json:"isNewCongregation"`
}

type CreateAttendanceRequest struct {
	Attendees []AttendeeRequest `json:"attendees" validate:"dive"`
}

/* =========================================================
   RESPONSE
========================================================= */

type SermonSessionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AttendanceResponse struct {
	ID             uuid.UUID                             `json:"id"`
	CongregationID uuid.UUID                             `json:"congregation_id"`
	SessionID      uuid.UUID                             `json:"session_id"`
	Date           time.Time                             `json:"date"`
	CreatedAt      time.Time                             `json:"created_at"`
	Congregation   *congregationDTO.CongregationResponse `json:"congregation,omitempty"`
	SermonSession  *SermonSessionResponse                `json:"sermon_session,omitempty"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	out := AttendanceResponse{
		ID:             m.AttendanceID,
		CongregationID: m.AttendanceCongregationID,
		SessionID:      m.AttendanceSessionID,
		Date:           m.AttendanceDate,
		CreatedAt:      m.AttendanceCreatedAt,
	}
	if m.Congregation != nil {
		c := congregationDTO.FromModel(m.Congregation)
		out.Congregation = &c
	}
	if m.SermonSession != nil {
		out.SermonSession = &SermonSessionResponse{
			ID:   m.SermonSession.SermonSessionID,
			Name: m.SermonSession.SermonSessionName,
		}
	}
	return out
}

func FromModels(list []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

/* =========================================================
   REPORTS
========================================================= */

type SessionCount struct {
	Session string `json:"session"`
	Total   int    `json:"total"`
}

type SundaySnapshot struct {
	Date        string               `json:"date"` // YYYY-MM-DD (GMT+7)
	Sessions    []SessionCount       `json:"sessions"`
	Total       int                  `json:"total"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// Bucket = satu minggu (rollup bulanan) atau satu bulan (rollup tahunan).
type Bucket struct {
	Label     string `json:"label"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type MonthlyReport struct {
	Month        string   `json:"month"` // "October 2026"
	Weeks        []Bucket `json:"weeks"`
	MonthlyTotal int      `json:"monthly_total"`
}

type YearlyReport struct {
	Year        int      `json:"year"`
	Months      []Bucket `json:"months"`
	YearlyTotal int      `json:"yearly_total"`
}

type SundayMark struct {
	Date     string `json:"date"`
	Attended bool   `json:"attended"`
}

type MonthSundays struct {
	Month   string       `json:"month"`
	Sundays []SundayMark `json:"sundays"`
}

type MemberSummary struct {
	CongregationID uuid.UUID      `json:"congregation_id"`
	WindowStart    string         `json:"window_start"`
	WindowEnd      string         `json:"window_end"`
	TotalSundays   int            `json:"total_sundays"`
	Attended       int            `json:"attended"`
	Ratio          float64        `json:"ratio"`
	Percentage     int            `json:"percentage"`
	Months         []MonthSundays `json:"months"`
}
