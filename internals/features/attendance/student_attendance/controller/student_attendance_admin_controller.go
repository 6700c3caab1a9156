// file: internals/features/attendance/student_attendance/controller/student_attendance_admin_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"lms_backend/internals/features/attendance/student_attendance/dto"
	"lms_backend/internals/features/attendance/student_attendance/service"
	helper "lms_backend/internals/helpers"
	"lms_backend/internals/helpers/dbtime"
)

// GET /api/a/attendance/:user_id
func (ctl *StudentAttendanceController) ListByUser(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStaff() {
		return writeError(c, service.ErrNotAuthorized, r)
	}
	userID, err := targetUserID(c)
	if err != nil {
		return writeError(c, err, r)
	}

	ctx := c.UserContext()
	items, err := ctl.Svc.Management(ctx, actor.CourseID, userID)
	if err != nil {
		return writeError(c, err, r)
	}
	notEntered, err := ctl.Svc.NotEnteredCount(ctx, userID)
	if err != nil {
		return writeError(c, err, r)
	}

	return helper.Success(c, "Daftar kehadiran berhasil diambil", fiber.Map{
		"user_id":           userID,
		"attendance_list":   dto.FromManagementItems(items),
		"not_entered_count": notEntered,
	})
}

// GET /api/a/attendance/:user_id/form
func (ctl *StudentAttendanceController) FormByUser(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStaff() {
		return writeError(c, service.ErrNotAuthorized, r)
	}
	userID, err := targetUserID(c)
	if err != nil {
		return writeError(c, err, r)
	}

	items, err := ctl.Svc.Management(c.UserContext(), actor.CourseID, userID)
	if err != nil {
		return writeError(c, err, r)
	}
	// nama & tanggal keluar siswa tidak ada di token staff
	return helper.Success(c, "Form kehadiran", dto.NewAttendanceForm(userID, "", nil, items))
}

// PUT /api/a/attendance/:user_id
func (ctl *StudentAttendanceController) UpdateByUser(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStaff() {
		return writeError(c, service.ErrNotAuthorized, r)
	}
	userID, err := targetUserID(c)
	if err != nil {
		return writeError(c, err, r)
	}
	return ctl.saveBatch(c, actor, userID)
}

// GET /api/a/attendance/export?user_ids=a,b
func (ctl *StudentAttendanceController) Export(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStaff() {
		return writeError(c, service.ErrNotAuthorized, r)
	}

	ids, err := dto.ParseUserIDs(c.Query("user_ids"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if len(ids) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "user_ids wajib diisi")
	}

	items, err := ctl.Svc.ManagementForUsers(c.UserContext(), actor.CourseID, ids)
	if err != nil {
		return writeError(c, err, r)
	}
	buf, err := service.BuildRecapWorkbook(items)
	if err != nil {
		return writeError(c, err, r)
	}

	filename := fmt.Sprintf("rekap_kehadiran_%s.xlsx", ctl.Svc.Today().Format(dbtime.DateLayout))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}
