// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authRepo "gerejaku_backend/internals/features/users/auth/repository"
)

const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalToken    = "access_token"
)

// AuthMiddleware = session guard untuk semua route dashboard.
func AuthMiddleware(db *gorm.DB, secretKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logrus.WithFields(logrus.Fields{
			"request_id": c.Locals("request_id"),
			"path":       c.Path(),
		})

		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist
		blacklisted, err := authRepo.IsTokenBlacklisted(c.UserContext(), db, tokenString)
		if err != nil {
			log.WithError(err).Error("DB error saat cek blacklist")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			log.Warn("Token ditemukan di blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		// 3) Parse & verifikasi JWT
		if secretKey == "" {
			log.Error("JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.WithError(err).Debug("Gagal parse token")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.WithError(err).Debug("Exp validation")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Ambil user_id & validasi user aktif
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureUserActive(db.WithContext(c.UserContext()), userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			if errors.Is(err, errUserInactive) {
				return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
			}
			log.WithError(err).Error("ensureUserActive")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals(LocalUserID, userID.String())
		c.Locals(LocalToken, tokenString)
		if userName, ok := claims["user_name"].(string); ok {
			c.Locals(LocalUserName, userName)
		}
		return c.Next()
	}
}
