package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/auth/dto"
	authRepo "gerejaku_backend/internals/features/users/auth/repository"
	userModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

var (
	ErrEmailTaken         = fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	ErrInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "Email atau Password salah")
	ErrUserInactive       = fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	ErrWrongPassword      = fiber.NewError(fiber.StatusBadRequest, "Password lama salah")
	ErrUserNotFound       = fiber.NewError(fiber.StatusNotFound, "User not found")
)

type AuthService struct {
	DB        *gorm.DB
	Secret    string
	AccessTTL time.Duration
	Now       func() time.Time
}

func NewAuthService(db *gorm.DB, secret string, accessTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &AuthService{
		DB:        db,
		Secret:    secret,
		AccessTTL: accessTTL,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser dipakai oleh register, seeder, dan CLI.
func CreateUser(ctx context.Context, db *gorm.DB, name, email, password string) (*userModel.UserModel, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &userModel.UserModel{
		UserName: strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
		IsActive: true,
	}
	if err := authRepo.CreateUser(ctx, db, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, error) {
	return CreateUser(ctx, s.DB, req.UserName, req.Email, req.Password)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	token, exp, err := GenerateAccessToken(s.Secret, user, s.Now(), s.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        dto.ToUserResponse(user),
	}, nil
}

// Logout mem-blacklist access token sampai exp-nya lewat.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		logrus.Info("Logout tanpa access token; lanjut clear cookies (idempotent)")
		return nil
	}
	expiredAt := resolveBlacklistExpiry(s.Secret, accessToken, s.Now())
	return authRepo.BlacklistToken(ctx, s.DB, accessToken, expiredAt)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if err := CheckPasswordHash(user.Password, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}
	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return authRepo.UpdateUserPassword(ctx, s.DB, user.ID, hashed)
}
