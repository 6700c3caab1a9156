// file: internals/features/attendance/student_attendance/controller/student_attendance_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms_backend/internals/constants"
	"lms_backend/internals/features/attendance/student_attendance/service"
	helper "lms_backend/internals/helpers"
	helperAuth "lms_backend/internals/helpers/auth"
	"lms_backend/internals/helpers/message"
)

type StudentAttendanceController struct {
	Svc       *service.AttendanceService
	Validator *validator.Validate
}

func NewStudentAttendanceController(svc *service.AttendanceService) *StudentAttendanceController {
	return &StudentAttendanceController{
		Svc:       svc,
		Validator: validator.New(),
	}
}

// actorFromToken: Actor per request dari locals AuthJWT.
func actorFromToken(c *fiber.Ctx) (service.Actor, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	courseID, err := helperAuth.GetCourseIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{
		UserID:    userID,
		AccountID: helperAuth.GetAccountIDFromToken(c),
		CourseID:  courseID,
		Role:      helperAuth.GetRole(c),
		UserName:  helperAuth.GetUserName(c),
		LeaveDate: helperAuth.GetLeaveDate(c),
	}, nil
}

func resolverFor(c *fiber.Ctx) message.Resolver {
	return message.FromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}

// targetUserID: param :user_id (staff).
func targetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id tidak valid")
	}
	return id, nil
}

// writeError memetakan error service ke response JSON.
func writeError(c *fiber.Ctx, err error, r message.Resolver) error {
	var ae *service.AttendanceError
	var ve *service.ValidationErrors
	var fe *fiber.Error

	switch {
	case errors.As(err, &ae):
		return helper.Error(c, ae.Status, r.Resolve(ae.Key))
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":     fiber.StatusUnprocessableEntity,
			"status":   "error",
			"message":  r.Resolve(constants.MsgAttendanceValidationFailed),
			"errors":   ve.Fields,
			"messages": ve.Messages,
		})
	case errors.As(err, &fe):
		return helper.FromFiberError(c, fe)
	}
	log.Printf("[ERROR] attendance %s %s: %v", c.Method(), c.Path(), err)
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
