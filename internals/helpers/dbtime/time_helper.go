// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yg di-set di middleware AuthJWT / main
const (
	LocAppTimezone = "app_timezone" // string, misal "Asia/Tokyo"
	LocAppLoc      = "app_loc"      // *time.Location
)

const DateLayout = "2006-01-02"

// DefaultTimezone di-set dari configs saat startup.
var DefaultTimezone = "Asia/Tokyo"

// Ambil *time.Location untuk request:
// 1) c.Locals("app_loc") kalau sudah ada
// 2) c.Locals("app_timezone") (string) → LoadLocation
// 3) DefaultTimezone
// 4) time.UTC
func GetAppLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return DefaultLocation()
	}

	if v := c.Locals(LocAppLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocAppTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				c.Locals(LocAppLoc, loc)
				return loc
			}
		}
	}

	loc := DefaultLocation()
	c.Locals(LocAppLoc, loc)
	return loc
}

func DefaultLocation() *time.Location {
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// TruncateDate: buang jam, sisakan tanggal di zona t.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate membandingkan tahun/bulan/hari saja (zona diabaikan).
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDate: tanggal a < tanggal b (jam diabaikan).
func BeforeDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// ParseDate "YYYY-MM-DD" di lokasi loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}
