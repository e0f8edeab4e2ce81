package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/attendances/attendances/model"
	congregationModel "gerejaku_backend/internals/features/congregations/congregations/model"
	"gerejaku_backend/internals/helpers/dbtime"
)

var (
	ErrEmptyAttendees       = fiber.NewError(fiber.StatusBadRequest, "Attendees array is required")
	ErrOutsideServiceHours  = fiber.NewError(fiber.StatusBadRequest, "outside service hours: Absensi hanya dapat dicatat pada jam 06:00 - 13:00 (GMT+7)")
	ErrAttendeeNameRequired = fiber.NewError(fiber.StatusBadRequest, "Nama jemaat baru wajib diisi")
	ErrCongregationNotFound = fiber.NewError(fiber.StatusNotFound, "Congregation not found")
	ErrSessionNotFound      = fiber.NewError(fiber.StatusInternalServerError, "Sermon session not found")
)

// SessionWindow: sesi ibadah dan jam pencatatannya (GMT+7, [start, end)).
type SessionWindow struct {
	Name   string
	Window dbtime.Window
}

var SessionWindows = []SessionWindow{
	{Name: model.SessionOne, Window: dbtime.Window{Start: dbtime.MustParse("06:00"), End: dbtime.MustParse("09:00")}},
	{Name: model.SessionTwo, Window: dbtime.Window{Start: dbtime.MustParse("09:00"), End: dbtime.MustParse("13:00")}},
}

var attendancesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "gerejaku",
	Name:      "attendances_recorded_total",
	Help:      "Jumlah kehadiran yang tercatat per sesi.",
}, []string{"session"})

// ResolveSession menentukan sesi dari jam GMT+7 pada `at`.
func ResolveSession(at time.Time) (string, error) {
	for _, sw := range SessionWindows {
		if sw.Window.Contains(at) {
			return sw.Name, nil
		}
	}
	return "", ErrOutsideServiceHours
}

// Attendee = satu baris input absensi. CongregationID nil berarti jemaat baru.
type Attendee struct {
	CongregationID *uuid.UUID
	Name           string
	IsNew          bool
}

func (a Attendee) createsCongregation() bool {
	return a.IsNew || a.CongregationID == nil
}

type RecordingService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRecordingService(db *gorm.DB) *RecordingService {
	return &RecordingService{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// Record mencatat satu batch kehadiran secara atomik: semua berhasil atau tidak ada yang tersimpan.
func (s *RecordingService) Record(ctx context.Context, attendees []Attendee) ([]model.AttendanceModel, error) {
	if len(attendees) == 0 {
		return nil, ErrEmptyAttendees
	}

	now := s.Now()
	sessionName, err := ResolveSession(now)
	if err != nil {
		return nil, err
	}

	for _, a := range attendees {
		if a.createsCongregation() && strings.TrimSpace(a.Name) == "" {
			return nil, ErrAttendeeNameRequired
		}
	}

	var created []model.AttendanceModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session *model.SermonSessionModel
		ids := make([]uuid.UUID, 0, len(attendees))

		for _, a := range attendees {
			congregationID, err := resolveCongregation(tx, a)
			if err != nil {
				return err
			}

			if session == nil {
				session, err = findSessionByName(tx, sessionName)
				if err != nil {
					return err
				}
			}

			row := model.AttendanceModel{
				AttendanceCongregationID: congregationID,
				AttendanceSessionID:      session.SermonSessionID,
				AttendanceDate:           now.UTC(),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			ids = append(ids, row.AttendanceID)
		}

		var rows []model.AttendanceModel
		if err := tx.Preload("Congregation").Preload("SermonSession").
			Where("attendance_id IN ?", ids).
			Find(&rows).Error; err != nil {
			return err
		}
		created = orderByIDs(rows, ids)
		return nil
	})
	if err != nil {
		return nil, err
	}

	attendancesRecorded.WithLabelValues(sessionName).Add(float64(len(created)))
	logrus.WithFields(logrus.Fields{
		"session": sessionName,
		"count":   len(created),
	}).Info("✅ Absensi tercatat")
	return created, nil
}

func resolveCongregation(tx *gorm.DB, a Attendee) (uuid.UUID, error) {
	if a.createsCongregation() {
		c := congregationModel.CongregationModel{
			CongregationName:   strings.TrimSpace(a.Name),
			CongregationStatus: congregationModel.CongregationStatusActive,
		}
		if err := tx.Create(&c).Error; err != nil {
			return uuid.Nil, err
		}
		return c.CongregationID, nil
	}

	var n int64
	if err := tx.Model(&congregationModel.CongregationModel{}).
		Where("congregation_id = ?", *a.CongregationID).
		Count(&n).Error; err != nil {
		return uuid.Nil, err
	}
	if n == 0 {
		return uuid.Nil, ErrCongregationNotFound
	}
	return *a.CongregationID, nil
}

func findSessionByName(tx *gorm.DB, name string) (*model.SermonSessionModel, error) {
	var session model.SermonSessionModel
	if err := tx.Where("sermon_session_name = ?", name).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("session", name).Error("❌ Sermon session belum di-seed")
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// orderByIDs: kembalikan baris sesuai urutan input batch.
func orderByIDs(rows []model.AttendanceModel, ids []uuid.UUID) []model.AttendanceModel {
	byID := make(map[uuid.UUID]model.AttendanceModel, len(rows))
	for _, r := range rows {
		byID[r.AttendanceID] = r
	}
	out := make([]model.AttendanceModel, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
