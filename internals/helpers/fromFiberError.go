package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// FromFiberError mengubah error dari service/Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten.
// Selain *fiber.Error → 500 generik; penyebab asli hanya di log server.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			logrus.WithFields(logrus.Fields{
				"request_id": c.Locals("request_id"),
				"path":       c.Path(),
			}).WithError(err).Error("❌ internal error")
			return JsonError(c, fe.Code, "Terjadi kesalahan pada server")
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	logrus.WithFields(logrus.Fields{
		"request_id": c.Locals("request_id"),
		"path":       c.Path(),
	}).WithError(err).Error("❌ unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// ErrorHandler dipasang di fiber.Config supaya error dari middleware
// (auth, limiter, 404 route) juga keluar dengan envelope yang sama.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
