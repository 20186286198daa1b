package dto

import (
	"testing"

	"github.com/yigit/coursehub/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestNewInstructorCardDefaults(t *testing.T) {
	card := NewInstructorCard(models.Instructor{ID: 3, FirstName: "Camille", LastName: "Durand"})
	if card.Name != "Camille Durand" {
		t.Fatalf("unexpected name %q", card.Name)
	}
	if card.Specialty != "Formateur" || card.Instagram != "#" {
		t.Fatalf("expected defaults, got %+v", card)
	}
	if card.ProfileImage != nil {
		t.Fatalf("expected no profile image")
	}
}

func TestNewInstructorCardUsesProfileFields(t *testing.T) {
	card := NewInstructorCard(models.Instructor{
		ID:        4,
		FirstName: "Léa",
		LastName:  "Martin",
		Specialty: strPtr("Data"),
		Photo:     strPtr("/img/lea.jpg"),
		Instagram: strPtr("https://instagram.com/lea"),
	})
	if card.Specialty != "Data" || card.Instagram != "https://instagram.com/lea" {
		t.Fatalf("unexpected card %+v", card)
	}
	if card.ProfileImage == nil || *card.ProfileImage != "/img/lea.jpg" {
		t.Fatalf("unexpected profile image %v", card.ProfileImage)
	}
}
