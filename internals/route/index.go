// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"lms_backend/internals/configs"
	attendanceRepo "lms_backend/internals/features/attendance/student_attendance/repository"
	attendanceService "lms_backend/internals/features/attendance/student_attendance/service"
	authMiddleware "lms_backend/internals/middlewares/auth"

	routeDetails "lms_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== SERVICE =====================
	log.Println("[INFO] Loading attendance schedule...")
	svc, err := NewAttendanceService(db)
	if err != nil {
		log.Fatalf("❌ Konfigurasi jadwal tidak valid: %v", err)
	}

	// ===================== GROUPS =====================
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", jwt)

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", jwt)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(user, svc)
	routeDetails.AttendanceAdminRoutes(admin, svc)
}

// NewAttendanceService: file jadwal + APP_TIMEZONE → service di atas repository gorm.
func NewAttendanceService(db *gorm.DB) (*attendanceService.AttendanceService, error) {
	sched, err := configs.LoadSchedule(configs.ScheduleFile())
	if err != nil {
		return nil, err
	}
	cfg, err := attendanceService.ConfigFromSchedule(
		sched.WorkWindow.Start,
		sched.WorkWindow.End,
		sched.Validation.TotalMinuteRangeCheck,
		sched.Merge.AbsentPolicy,
		configs.AppLocation(),
	)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] jam kerja %s-%s, absent_policy=%q", cfg.Window.Start, cfg.Window.End, sched.Merge.AbsentPolicy)
	return attendanceService.NewAttendanceService(attendanceRepo.NewStudentAttendanceRepository(db), cfg), nil
}
