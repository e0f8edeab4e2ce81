package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/attendances/attendances/dto"
	"gerejaku_backend/internals/features/attendances/attendances/model"
	congregationModel "gerejaku_backend/internals/features/congregations/congregations/model"
	"gerejaku_backend/internals/helpers/dbtime"
)

// ReportService: query read-only, dihitung ulang tiap request (tanpa cache).
type ReportService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// List: semua kehadiran, terbaru dulu.
func (s *ReportService) List(ctx context.Context) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Preload("Congregation").Preload("SermonSession").
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *ReportService) History(ctx context.Context, congregationID uuid.UUID) ([]model.AttendanceModel, error) {
	if err := s.ensureCongregation(ctx, congregationID); err != nil {
		return nil, err
	}
	var rows []model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Preload("SermonSession").
		Where("attendance_congregation_id = ?", congregationID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *ReportService) Sunday(ctx context.Context) (*dto.SundaySnapshot, error) {
	sunday := dbtime.NextSunday(s.Now())
	from, to := dbtime.DayRange(sunday)

	var rows []model.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Preload("Congregation").Preload("SermonSession").
		Where("attendance_date >= ? AND attendance_date < ?", from, to).
		Order("attendance_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	snap := BuildSundaySnapshot(sunday, rows)
	return &snap, nil
}

func (s *ReportService) Monthly(ctx context.Context) (*dto.MonthlyReport, error) {
	now := s.Now()
	from, to := dbtime.MonthRange(now)
	dates, err := s.datesBetween(ctx, from, to, nil)
	if err != nil {
		return nil, err
	}
	rep := BuildMonthlyRollup(now, dates)
	return &rep, nil
}

func (s *ReportService) Yearly(ctx context.Context) (*dto.YearlyReport, error) {
	now := s.Now()
	from, to := dbtime.YearRange(now)
	dates, err := s.datesBetween(ctx, from, to, nil)
	if err != nil {
		return nil, err
	}
	rep := BuildYearlyRollup(now, dates)
	return &rep, nil
}

func (s *ReportService) MemberSummary(ctx context.Context, congregationID uuid.UUID) (*dto.MemberSummary, error) {
	if err := s.ensureCongregation(ctx, congregationID); err != nil {
		return nil, err
	}
	now := s.Now()
	from, to := SummaryWindow(now)
	dates, err := s.datesBetween(ctx, from, to, &congregationID)
	if err != nil {
		return nil, err
	}
	sum := BuildMemberSummary(congregationID, now, dates)
	return &sum, nil
}

// datesBetween hanya mengambil kolom tanggal; rollup tidak butuh relasi.
func (s *ReportService) datesBetween(ctx context.Context, from, to time.Time, congregationID *uuid.UUID) ([]time.Time, error) {
	q := s.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("attendance_date >= ? AND attendance_date < ?", from.UTC(), to.UTC())
	if congregationID != nil {
		q = q.Where("attendance_congregation_id = ?", *congregationID)
	}
	var dates []time.Time
	if err := q.Order("attendance_date ASC").Pluck("attendance_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (s *ReportService) ensureCongregation(ctx context.Context, id uuid.UUID) error {
	var c congregationModel.CongregationModel
	if err := s.DB.WithContext(ctx).Select("congregation_id").First(&c, "congregation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCongregationNotFound
		}
		return err
	}
	return nil
}
