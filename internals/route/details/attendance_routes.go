package details

import (
	"github.com/gofiber/fiber/v2"

	attendanceRoutes "lms_backend/internals/features/attendance/student_attendance/route"
	"lms_backend/internals/features/attendance/student_attendance/service"
)

// /api/u/attendance/...
func AttendanceUserRoutes(user fiber.Router, svc *service.AttendanceService) {
	attendanceRoutes.StudentAttendanceUserRoutes(user, svc)
}

// /api/a/attendance/...
func AttendanceAdminRoutes(admin fiber.Router, svc *service.AttendanceService) {
	attendanceRoutes.StudentAttendanceAdminRoutes(admin, svc)
}
