package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// EnrollmentStatus is a normalised enrollment status.
type EnrollmentStatus string

const (
	StatusPending   EnrollmentStatus = "pending"
	StatusConfirmed EnrollmentStatus = "confirmed"
	StatusPaid      EnrollmentStatus = "paid"
	StatusRefused   EnrollmentStatus = "refused"
)

// ParseEnrollmentStatus normalises raw case-insensitively.
// The boolean is false for any value outside the four known statuses.
func ParseEnrollmentStatus(raw string) (EnrollmentStatus, bool) {
	switch s := EnrollmentStatus(strings.ToLower(raw)); s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusRefused:
		return s, true
	}
	return "", false
}

// Enrollment is a student's registration in a course.
// Status keeps the raw stored value; unknown values are tolerated and counted apart.
type Enrollment struct {
	ID        int64      `json:"id" db:"id" example:"10"`
	CourseID  int64      `json:"courseId" db:"course_id" example:"1"`
	StudentID int64      `json:"studentId" db:"student_id" example:"42"`
	Status    string     `json:"status" db:"status" example:"pending"`
	CreatedAt *time.Time `json:"createdAt,omitempty" db:"created_at"`
	Date      *time.Time `json:"date,omitempty" db:"enrollment_date"`
}

// Timestamp returns CreatedAt, falling back to Date, then to the Unix epoch.
func (e Enrollment) Timestamp() time.Time {
	if e.CreatedAt != nil {
		return *e.CreatedAt
	}
	if e.Date != nil {
		return *e.Date
	}
	return time.Unix(0, 0)
}

// Validate rejects enrollment rows without usable references.
func (e Enrollment) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: enrollment id must be positive", apperrors.ErrMalformedRecord)
	}
	if e.CourseID <= 0 {
		return fmt.Errorf("%w: enrollment %d has no course reference", apperrors.ErrMalformedRecord, e.ID)
	}
	if e.StudentID <= 0 {
		return fmt.Errorf("%w: enrollment %d has no student reference", apperrors.ErrMalformedRecord, e.ID)
	}
	return nil
}
