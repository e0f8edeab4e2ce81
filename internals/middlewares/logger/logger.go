package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"github.com/sirupsen/logrus"
)

const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 64

// RequestID: pakai X-Request-ID dari client kalau aman, kalau tidak generate.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if !validRequestID(rid) {
			rid = utils.UUID()
		}
		c.Locals("request_id", rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}

// hanya [A-Za-z0-9._-], maks 64 karakter
func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(rid); i++ {
		switch ch := rid[i]; {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.':
		default:
			return false
		}
	}
	return true
}

// LoggerMiddleware untuk mencatat semua request (satu baris per request)
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		entry := logrus.WithFields(logrus.Fields{
			"request_id": c.Locals("request_id"),
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    time.Since(start).String(),
		})
		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
		return err
	}
}
