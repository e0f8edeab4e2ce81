package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

var (
	ErrUserNotFound = fiber.NewError(fiber.StatusNotFound, "User not found")
	ErrSelfAction   = fiber.NewError(fiber.StatusBadRequest, "Tidak bisa menonaktifkan atau menghapus akun sendiri")
	ErrUserInUse    = fiber.NewError(fiber.StatusBadRequest, "User masih dipakai data lain (album); nonaktifkan saja")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type ListParams struct {
	Search string
	Status string
	Offset int
	Limit  int
}

// List: urut nama, search di user_name/email (case-insensitive).
func (s *UserService) List(ctx context.Context, p ListParams) ([]model.UserModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.UserModel{})

	switch p.Status {
	case "active":
		q = q.Where("is_active = ?", true)
	case "inactive":
		q = q.Where("is_active = ?", false)
	}
	if search := strings.TrimSpace(p.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.UserModel
	q = q.Order("user_name ASC")
	if p.Limit > 0 {
		q = q.Offset(p.Offset).Limit(p.Limit)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SetActive mengaktifkan/menonaktifkan user. User nonaktif langsung ditolak session guard.
func (s *UserService) SetActive(ctx context.Context, actorID, userID uuid.UUID, active bool) (*model.UserModel, error) {
	if actorID == userID && !active {
		return nil, ErrSelfAction
	}

	var user model.UserModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		// Update kolom eksplisit: false tidak di-skip seperti pada Updates(struct)
		if err := tx.Model(&user).Update("is_active", active).Error; err != nil {
			return err
		}
		user.IsActive = active
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"actor_id":  actorID,
		"is_active": active,
	}).Info("👤 Status user diubah")
	return &user, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return ErrSelfAction
	}
	res := s.DB.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", userID)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return ErrUserInUse
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteAll dipakai CLI untuk reset data user (mis. sebelum seed ulang).
func (s *UserService) DeleteAll(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.UserModel{})
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return 0, ErrUserInUse
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
