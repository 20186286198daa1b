package dto

import "github.com/yigit/coursehub/internal/app/models"

// Display defaults for instructor cards
const (
	DefaultSpecialty = "Formateur"
	DefaultInstagram = "#"
)

// InstructorCard is an instructor as shown on the landing page
type InstructorCard struct {
	ID           int64   `json:"id" example:"5"`
	Name         string  `json:"name" example:"Camille Durand"`
	Specialty    string  `json:"specialty" example:"Formateur"`
	ProfileImage *string `json:"profileImage,omitempty" example:"/img/camille.jpg"`
	Instagram    string  `json:"instagram" example:"#"`
}

// NewInstructorCard projects an instructor record into its display card
func NewInstructorCard(i models.Instructor) InstructorCard {
	card := InstructorCard{
		ID:           i.ID,
		Name:         i.FirstName + " " + i.LastName,
		Specialty:    DefaultSpecialty,
		ProfileImage: i.Photo,
		Instagram:    DefaultInstagram,
	}
	if i.Specialty != nil && *i.Specialty != "" {
		card.Specialty = *i.Specialty
	}
	if i.Instagram != nil && *i.Instagram != "" {
		card.Instagram = *i.Instagram
	}
	return card
}

// HomeResponse is the landing page payload
type HomeResponse struct {
	IsLoggedIn  bool             `json:"isLoggedIn" example:"true"`
	IsApprenant bool             `json:"isApprenant" example:"false"`
	Reviews     []models.Review  `json:"reviews"`
	Courses     []models.Course  `json:"courses"`
	Instructors []InstructorCard `json:"instructors"`
}
