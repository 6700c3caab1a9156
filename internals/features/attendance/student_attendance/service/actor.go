package service

import (
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/constants"
)

// Actor = user yang sedang login (diisi controller dari locals JWT, per request).
type Actor struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	CourseID  uuid.UUID
	Role      string
	UserName  string
	LeaveDate *time.Time
}

func (a Actor) IsStudent() bool { return a.Role == constants.RoleStudent }

func (a Actor) IsStaff() bool {
	for _, r := range constants.StaffRoles {
		if a.Role == r {
			return true
		}
	}
	return false
}
