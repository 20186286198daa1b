package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Review bounds shared by the client form and the API.
const (
	ReviewMinRating        = 1
	ReviewMaxRating        = 5
	ReviewDefaultRating    = 5
	ReviewMinCommentLength = 10
	ReviewMaxCommentLength = 500
)

// Review is a visitor review of the platform.
type Review struct {
	ID         int64     `json:"id" db:"id" example:"7"`
	UserID     *int64    `json:"userId,omitempty" db:"user_id"`
	AuthorName string    `json:"authorName,omitempty" db:"author_name" example:"Léa M."`
	Rating     int       `json:"rating" db:"rating" example:"5"`
	Comment    string    `json:"comment" db:"comment" example:"Formation claire et bien rythmée."`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ReviewInput is the rating and comment pair submitted by a visitor.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" binding:"required,min=10,max=500" example:"Formation claire et bien rythmée."`
}

// Validate checks the rating and comment bounds. Comment length is
// counted in characters, not bytes.
func (in ReviewInput) Validate() error {
	if in.Rating < ReviewMinRating || in.Rating > ReviewMaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", apperrors.ErrValidationFailed, ReviewMinRating, ReviewMaxRating)
	}
	n := utf8.RuneCountInString(in.Comment)
	if n < ReviewMinCommentLength || n > ReviewMaxCommentLength {
		return fmt.Errorf("%w: comment must be between %d and %d characters", apperrors.ErrValidationFailed, ReviewMinCommentLength, ReviewMaxCommentLength)
	}
	return nil
}
