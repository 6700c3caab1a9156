package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah *fiber.Error menjadi response JSON konsisten via helper.Error.
// Selain *fiber.Error → 500 (pesan asli hanya masuk log).
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
