// file: internals/middlewares/logger/logger.go
package logger

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request HTTP dengan tag aplikasi.
// Zona waktu bisa dioverride via APP_TIMEZONE (default WIB).
func LoggerMiddleware() fiber.Handler {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[emaktab ${time}] ${ip} ${method} ${path} - ${status} (${latency})\n",
	})
}
