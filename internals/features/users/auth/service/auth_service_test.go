package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/features/users/auth/dto"
	authRepo "gerejaku_backend/internals/features/users/auth/repository"
	userModel "gerejaku_backend/internals/features/users/user/model"
	"gerejaku_backend/internals/testutil"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc := NewAuthService(testutil.NewDB(t), testSecret, time.Hour)
	svc.Now = testutil.Clock(time.Now().UTC())
	return svc
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{UserName: "Admin", Email: "Admin@Gereja.org", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "admin@gereja.org", user.Email)
	assert.NotEqual(t, "rahasia123", user.Password)

	_, err = svc.Register(ctx, dto.RegisterRequest{UserName: "Admin 2", Email: "admin@gereja.org", Password: "rahasia123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "ADMIN@gereja.org", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, user.ID, res.User.ID)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "Admin", claims["user_name"])
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, svc.DB, "Admin", "admin@gereja.org", "rahasia123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "admin@gereja.org", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@gereja.org", Password: "rahasia123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.DB.Model(&userModel.UserModel{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "admin@gereja.org", Password: "rahasia123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := CreateUser(ctx, svc.DB, "Admin", "admin@gereja.org", "rahasia123")
	require.NoError(t, err)
	res, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@gereja.org", Password: "rahasia123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.AccessToken))
	// kedua kali tetap sukses
	require.NoError(t, svc.Logout(ctx, res.AccessToken))
	require.NoError(t, svc.Logout(ctx, ""))

	ok, err := authRepo.IsTokenBlacklisted(ctx, svc.DB, res.AccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, svc.DB, "Admin", "admin@gereja.org", "rahasia123")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{CurrentPassword: "salah", NewPassword: "baru12345"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{CurrentPassword: "rahasia123", NewPassword: "baru12345"}))
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "admin@gereja.org", Password: "baru12345"})
	require.NoError(t, err)
}

func TestResolveBlacklistExpiry(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	user := &userModel.UserModel{UserName: "Admin", Email: "admin@gereja.org"}

	token, exp, err := GenerateAccessToken(testSecret, user, now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	assert.Equal(t, exp.Add(time.Minute).Unix(), resolveBlacklistExpiry(testSecret, token, now).Unix())
	assert.Equal(t, now.Add(2*time.Minute), resolveBlacklistExpiry(testSecret, "garbage", now))
	later := now.Add(2 * time.Hour)
	assert.Equal(t, later.Add(time.Minute), resolveBlacklistExpiry(testSecret, token, later))
}
