package models

import (
	"fmt"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Instructor is a user with the INSTRUCTOR role plus its public profile fields.
type Instructor struct {
	ID        int64   `json:"id" db:"id" example:"5"`
	FirstName string  `json:"firstName" db:"first_name" example:"Camille"`
	LastName  string  `json:"lastName" db:"last_name" example:"Durand"`
	Email     string  `json:"email" db:"email" example:"camille.durand@coursehub.fr"`
	Specialty *string `json:"specialty,omitempty" db:"specialty" example:"Développement web"`
	Photo     *string `json:"photo,omitempty" db:"photo" example:"/img/camille.jpg"`
	Instagram *string `json:"instagram,omitempty" db:"instagram" example:"https://instagram.com/camille"`
}

// Validate rejects instructor rows without an identifier.
func (i Instructor) Validate() error {
	if i.ID <= 0 {
		return fmt.Errorf("%w: instructor id must be positive", apperrors.ErrMalformedRecord)
	}
	return nil
}
