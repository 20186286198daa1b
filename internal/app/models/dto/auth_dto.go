package dto

import "github.com/yigit/coursehub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@coursehub.fr"`
	Password string `json:"password" binding:"required" example:"Admin123!"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// UserData is the public view of the authenticated user
type UserData struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"admin@coursehub.fr"`
	FirstName string `json:"firstName" example:"Camille"`
	LastName  string `json:"lastName" example:"Durand"`
	RoleType  string `json:"roleType" example:"ADMIN" enums:"ADMIN,APPRENANT,INSTRUCTOR"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserData      `json:"user"`
}

// NewUserData projects a user into its public view
func NewUserData(u *models.User) UserData {
	return UserData{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		RoleType:  string(u.RoleType),
	}
}
