// file: internals/route/index.go
package routes

import (
	"time"

	"gerejaku_backend/internals/configs"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
	routeDetails "gerejaku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================
	logrus.Info("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.AuthPublicRoutes(public, db, cfg)

	logrus.Info("[INFO] Setting up PRIVATE group (session guard)...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db, cfg.JWTSecret))

	// ===================== MOUNT ROUTES =====================
	logrus.Info("[INFO] Mounting Auth routes...")
	routeDetails.AuthPrivateRoutes(private, db, cfg)

	logrus.Info("[INFO] Mounting User routes...")
	routeDetails.UserPrivateRoutes(private, db)

	logrus.Info("[INFO] Mounting Church routes...")
	routeDetails.ChurchPrivateRoutes(private, db)
}
