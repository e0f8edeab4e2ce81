package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "gerejaku_backend/internals/features/attendances/attendances/model"
	"gerejaku_backend/internals/features/congregations/congregations/dto"
	"gerejaku_backend/internals/features/congregations/congregations/model"
	helper "gerejaku_backend/internals/helpers"
)

var (
	ErrCongregationNotFound = fiber.NewError(fiber.StatusNotFound, "Congregation not found")
	ErrWhatsappTaken        = fiber.NewError(fiber.StatusBadRequest, "WhatsApp number already exists")
)

type CongregationService struct {
	DB *gorm.DB
}

func NewCongregationService(db *gorm.DB) *CongregationService {
	return &CongregationService{DB: db}
}

type ListParams struct {
	Status string
	Search string
	Offset int
	Limit  int
}

// List: terbaru dulu, filter status (all = semua), search di nama/gelar/nomor WA.
func (s *CongregationService) List(ctx context.Context, p ListParams) ([]model.CongregationModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.CongregationModel{})

	if p.Status != "" && p.Status != "all" {
		q = q.Where("congregation_status = ?", p.Status)
	}
	if search := strings.TrimSpace(p.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(congregation_name) LIKE ? OR LOWER(COALESCE(congregation_title, '')) LIKE ? OR LOWER(COALESCE(congregation_whatsapp_number, '')) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.CongregationModel
	q = q.Order("congregation_created_at DESC").Order("congregation_id DESC")
	if p.Limit > 0 {
		q = q.Offset(p.Offset).Limit(p.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *CongregationService) Get(ctx context.Context, id uuid.UUID) (*model.CongregationModel, error) {
	return findCongregation(s.DB.WithContext(ctx), id)
}

func (s *CongregationService) Create(ctx context.Context, req dto.CongregationRequest) (*model.CongregationModel, error) {
	var m model.CongregationModel
	req.ApplyTo(&m)
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, mapWriteError(err)
	}
	return &m, nil
}

func (s *CongregationService) Update(ctx context.Context, id uuid.UUID, req dto.CongregationRequest) (*model.CongregationModel, error) {
	var out *model.CongregationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findCongregation(tx, id)
		if err != nil {
			return err
		}
		req.ApplyTo(m)
		// Select("*") supaya field yang dikosongkan (nil) ikut ter-update
		if err := tx.Model(m).Select("*").Omit("congregation_id", "congregation_created_at").Updates(m).Error; err != nil {
			return mapWriteError(err)
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete menghapus jemaat beserta seluruh riwayat kehadirannya dalam satu transaksi.
func (s *CongregationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCongregation(tx, id); err != nil {
			return err
		}
		if err := tx.Where("attendance_congregation_id = ?", id).Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CongregationModel{}, "congregation_id = ?", id).Error
	})
}

func findCongregation(db *gorm.DB, id uuid.UUID) (*model.CongregationModel, error) {
	var m model.CongregationModel
	if err := db.First(&m, "congregation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCongregationNotFound
		}
		return nil, err
	}
	return &m, nil
}

// whatsapp number satu-satunya kolom unik di tabel jemaat
func mapWriteError(err error) error {
	if helper.IsUniqueViolation(err) {
		return ErrWhatsappTaken
	}
	return err
}
