// file: internals/features/attendance/student_attendance/controller/student_attendance_user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms_backend/internals/constants"
	"lms_backend/internals/features/attendance/student_attendance/dto"
	"lms_backend/internals/features/attendance/student_attendance/service"
	helper "lms_backend/internals/helpers"
	"lms_backend/internals/helpers/dbtime"
)

// GET /api/u/attendance
func (ctl *StudentAttendanceController) List(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStudent() {
		return writeError(c, service.ErrNotAuthorized, r)
	}

	ctx := c.UserContext()
	items, err := ctl.Svc.Management(ctx, actor.CourseID, actor.UserID)
	if err != nil {
		return writeError(c, err, r)
	}
	notEntered, err := ctl.Svc.NotEnteredCount(ctx, actor.UserID)
	if err != nil {
		return writeError(c, err, r)
	}

	return helper.Success(c, "Daftar kehadiran berhasil diambil", fiber.Map{
		"attendance_list":   dto.FromManagementItems(items),
		"not_entered_count": notEntered,
	})
}

// GET /api/u/attendance/form
func (ctl *StudentAttendanceController) Form(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStudent() {
		return writeError(c, service.ErrNotAuthorized, r)
	}

	items, err := ctl.Svc.Management(c.UserContext(), actor.CourseID, actor.UserID)
	if err != nil {
		return writeError(c, err, r)
	}
	return helper.Success(c, "Form kehadiran", dto.NewAttendanceForm(actor.UserID, actor.UserName, actor.LeaveDate, items))
}

// POST /api/u/attendance/punch-in
func (ctl *StudentAttendanceController) PunchIn(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}

	rec, err := ctl.Svc.PunchIn(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err, r)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jam masuk tercatat", dto.FromModel(rec))
}

// POST /api/u/attendance/punch-out
func (ctl *StudentAttendanceController) PunchOut(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}

	rec, err := ctl.Svc.PunchOut(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err, r)
	}
	return helper.Success(c, "Jam pulang tercatat", dto.FromModel(rec))
}

// GET /api/u/attendance/punch-check?type=in|out
func (ctl *StudentAttendanceController) PunchCheck(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}

	var kind service.PunchKind
	switch strings.ToLower(strings.TrimSpace(c.Query("type"))) {
	case "in":
		kind = service.PunchKindIn
	case "out":
		kind = service.PunchKindOut
	default:
		return helper.Error(c, fiber.StatusBadRequest, "type tidak valid (in|out)")
	}

	if err := ctl.Svc.CheckPunch(c.UserContext(), actor, kind); err != nil {
		return writeError(c, err, r)
	}
	return helper.Success(c, "ok", fiber.Map{
		"type":          c.Query("type"),
		"allowed":       true,
		"training_date": ctl.Svc.Today().Format(dbtime.DateLayout),
	})
}

// PUT /api/u/attendance
func (ctl *StudentAttendanceController) Update(c *fiber.Ctx) error {
	r := resolverFor(c)
	actor, err := actorFromToken(c)
	if err != nil {
		return writeError(c, err, r)
	}
	if !actor.IsStudent() {
		return writeError(c, service.ErrNotAuthorized, r)
	}
	return ctl.saveBatch(c, actor, actor.UserID)
}

// saveBatch: body → entries → MergeAndPersist (dipakai student & staff).
func (ctl *StudentAttendanceController) saveBatch(c *fiber.Ctx, actor service.Actor, targetID uuid.UUID) error {
	r := resolverFor(c)

	var req dto.AttendanceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	entries, err := req.ToEntries(ctl.Svc.Location)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "training_date tidak valid (YYYY-MM-DD)")
	}

	recs, err := ctl.Svc.MergeAndPersist(c.UserContext(), actor, targetID, entries, r)
	if err != nil {
		return writeError(c, err, r)
	}
	return helper.Success(c, r.Resolve(constants.MsgAttendanceUpdateNotice), dto.FromModels(recs))
}
