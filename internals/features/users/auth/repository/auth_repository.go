// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "gerejaku_backend/internals/features/users/auth/model"
	userModel "gerejaku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", newPassword).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken idempotent: token yang sama tidak dobel.
func BlacklistToken(ctx context.Context, db *gorm.DB, token string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: expiredAt.UTC(),
		}).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).Where("token = ?", token).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CleanupExpiredBlacklist menghapus (hard delete) token yang expired sebelum `before`.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time, limit int) (int64, error) {
	var ids []uint
	if err := db.WithContext(ctx).
		Unscoped().
		Model(&authModel.TokenBlacklist{}).
		Where("expired_at < ?", before.UTC()).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Unscoped().Delete(&authModel.TokenBlacklist{}, ids)
	return res.RowsAffected, res.Error
}
