package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Course represents a course offered on the platform.
type Course struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Title        string    `json:"title" db:"title" example:"Initiation à Go"`
	Description  *string   `json:"description,omitempty" db:"description"`      // Nullable
	InstructorID *int64    `json:"instructorId,omitempty" db:"instructor_id"` // Nullable, linked instructor
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2026-01-15T10:00:00Z"`
}

// Validate rejects course rows that cannot take part in aggregation.
func (c Course) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("%w: course id must be positive", apperrors.ErrMalformedRecord)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: course %d has no title", apperrors.ErrMalformedRecord, c.ID)
	}
	if c.InstructorID != nil && *c.InstructorID <= 0 {
		return fmt.Errorf("%w: course %d has invalid instructor reference", apperrors.ErrMalformedRecord, c.ID)
	}
	return nil
}
