package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/features/users/auth/dto"
	"gerejaku_backend/internals/features/users/auth/service"
	helper "gerejaku_backend/internals/helpers"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(db *gorm.DB, cfg *configs.AppConfig) *AuthController {
	return &AuthController{svc: service.NewAuthService(db, cfg.JWTSecret, cfg.AccessTokenTTL)}
}

// 🟢 POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	user, err := ac.svc.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", dto.ToUserResponse(user))
}

// 🟢 POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	res, err := ac.svc.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setAuthCookie(c, res.AccessToken, res.ExpiresAt)
	return helper.JsonOK(c, "Login successful", res)
}

// 🔴 POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(authMw.LocalToken).(string)
	if err := ac.svc.Logout(c.UserContext(), token); err != nil {
		return helper.FromFiberError(c, err)
	}
	clearAuthCookie(c)
	return helper.JsonOK(c, "Logout successful", nil)
}

// 🔍 GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, err := ac.svc.Me(c.UserContext(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(user))
}

// 🟡 POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ChangePasswordRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	if err := ac.svc.ChangePassword(c.UserContext(), userID, req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals(authMw.LocalUserID).(string)
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func setAuthCookie(c *fiber.Ctx, accessToken string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  expires,
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}
