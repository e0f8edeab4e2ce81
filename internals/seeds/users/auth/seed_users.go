package auth

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authRepo "gerejaku_backend/internals/features/users/auth/repository"
	authService "gerejaku_backend/internals/features/users/auth/service"
)

//go:embed data_users.json
var defaultUsers []byte

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedUsersFromJSON: filePath kosong = pakai data bawaan. User yang email-nya sudah ada dilewati.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	data := defaultUsers
	if filePath != "" {
		logrus.Info("📥 Membaca file: ", filePath)
		b, err := os.ReadFile(filePath)
		if err != nil {
			return 0, fmt.Errorf("gagal membaca file JSON: %w", err)
		}
		data = b
	}

	var seeds []UserSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("gagal decode JSON: %w", err)
	}

	created := 0
	for _, s := range seeds {
		if _, err := authRepo.FindUserByEmail(ctx, db, s.Email); err == nil {
			logrus.Infof("⏭️  User already exists: %s", s.UserName)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		if _, err := authService.CreateUser(ctx, db, s.UserName, s.Email, s.Password); err != nil {
			return created, fmt.Errorf("gagal membuat user %s: %w", s.Email, err)
		}
		created++
		logrus.Infof("✅ Created user: %s", s.UserName)
	}
	return created, nil
}
