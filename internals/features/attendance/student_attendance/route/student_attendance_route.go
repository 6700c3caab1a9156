package routes

import (
	"github.com/gofiber/fiber/v2"

	"lms_backend/internals/constants"
	attendanceCtl "lms_backend/internals/features/attendance/student_attendance/controller"
	"lms_backend/internals/features/attendance/student_attendance/service"
	"lms_backend/internals/middlewares"
	authMiddleware "lms_backend/internals/middlewares/auth"
)

// Rute USER (siswa), di-mount di /api/u dengan AuthJWT di atasnya
func StudentAttendanceUserRoutes(r fiber.Router, svc *service.AttendanceService) {
	ctl := attendanceCtl.NewStudentAttendanceController(svc)

	g := r.Group("/attendance",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("kehadiran"), constants.StudentOnly...),
	)
	g.Get("/", ctl.List)
	g.Put("/", ctl.Update)
	g.Get("/form", ctl.Form)
	g.Get("/punch-check", ctl.PunchCheck)

	punchLimiter := middlewares.PunchRateLimiter()
	g.Post("/punch-in", punchLimiter, ctl.PunchIn)
	g.Post("/punch-out", punchLimiter, ctl.PunchOut)
}

// Rute ADMIN/TEACHER, di-mount di /api/a
func StudentAttendanceAdminRoutes(r fiber.Router, svc *service.AttendanceService) {
	ctl := attendanceCtl.NewStudentAttendanceController(svc)

	g := r.Group("/attendance",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kehadiran"), constants.StaffRoles...),
	)
	// export harus sebelum /:user_id
	g.Get("/export", ctl.Export)
	g.Get("/:user_id", ctl.ListByUser)
	g.Get("/:user_id/form", ctl.FormByUser)
	g.Put("/:user_id", ctl.UpdateByUser)
}
