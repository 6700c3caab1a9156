// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang diisi middleware AuthJWT.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocCourseID  = "course_id"
	LocAccountID = "account_id"
	LocUserName  = "user_name"
	LocLeaveDate = "leave_date"
)

// GetUserIDFromToken: 401 kalau belum login, 400 kalau format tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuidLocal(c, LocUserID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
	if id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}
	return id, nil
}

// GetCourseIDFromToken: uuid.Nil kalau token tidak membawa course.
func GetCourseIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuidLocal(c, LocCourseID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Course ID pada token tidak valid")
	}
	return id, nil
}

func GetAccountIDFromToken(c *fiber.Ctx) uuid.UUID {
	id, _ := uuidLocal(c, LocAccountID)
	return id
}

func GetRole(c *fiber.Ctx) string {
	return strings.ToLower(stringLocal(c, LocUserRole))
}

func GetUserName(c *fiber.Ctx) string {
	return stringLocal(c, LocUserName)
}

// GetLeaveDate: tanggal keluar siswa (YYYY-MM-DD), nil kalau tidak ada.
func GetLeaveDate(c *fiber.Ctx) *time.Time {
	switch t := c.Locals(LocLeaveDate).(type) {
	case time.Time:
		return &t
	case *time.Time:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil
		}
		return &d
	}
	return nil
}

func stringLocal(c *fiber.Ctx, key string) string {
	switch t := c.Locals(key).(type) {
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	}
	return ""
}

func uuidLocal(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch t := c.Locals(key).(type) {
	case uuid.UUID:
		return t, nil
	case nil:
		return uuid.Nil, nil
	}
	s := stringLocal(c, key)
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}
