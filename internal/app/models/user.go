package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                        // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"admin@coursehub.fr"` // User's email address
	Password    string     `json:"-" db:"password"`                               // Hashed password, never serialized
	FirstName   string     `json:"firstName" db:"first_name" example:"Camille"`   // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Durand"`      // User's last name
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"APPRENANT"`   // ADMIN, APPRENANT or INSTRUCTOR
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`        // Whether the account may log in
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`                     // Creation timestamp
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`      // Nullable
}

// FullName joins first and last name with a single space
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
