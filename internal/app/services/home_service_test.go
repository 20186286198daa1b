package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
)

func viewerWithRole(role models.RoleType) auth.Viewer {
	claims := &pkgAuth.Claims{UserID: 1, Email: "user@coursehub.fr", RoleType: string(role)}
	claims.ID = "jti"
	return auth.ViewerFromClaims(claims)
}

func newHomeFixture() (*fakeReviews, *fakeCourses, *fakeInstructors) {
	reviews := &fakeReviews{reviews: []models.Review{{ID: 1, Rating: 5, Comment: "Excellente formation"}}}
	courses := &fakeCourses{courses: []models.Course{{ID: 1, Title: "Go"}}}
	instructors := &fakeInstructors{instructors: []models.Instructor{
		{ID: 10, FirstName: "Camille", LastName: "Durand"},
		{ID: 11, FirstName: "Léa", LastName: "Martin", Specialty: strPtr("Data"), Instagram: strPtr("https://instagram.com/lea")},
	}}
	return reviews, courses, instructors
}

func TestHomeAnonymousSeesNoInstructors(t *testing.T) {
	reviews, courses, instructors := newHomeFixture()
	svc := NewHomeService(reviews, courses, instructors, zerolog.Nop())

	view := svc.Load(context.Background(), auth.Anonymous())
	if view.IsLoggedIn || view.IsApprenant {
		t.Fatalf("unexpected flags %+v", view)
	}
	if len(view.Instructors) != 0 {
		t.Fatalf("anonymous viewer must see no instructors")
	}
	if instructors.calls.Load() != 0 {
		t.Fatalf("instructors must not be fetched for anonymous viewers")
	}
	if len(view.Reviews) != 1 || len(view.Courses) != 1 {
		t.Fatalf("reviews and courses are public: %+v", view)
	}
}

func TestHomeApprenantSeesNoInstructors(t *testing.T) {
	reviews, courses, instructors := newHomeFixture()
	svc := NewHomeService(reviews, courses, instructors, zerolog.Nop())

	view := svc.Load(context.Background(), viewerWithRole(models.RoleApprenant))
	if !view.IsLoggedIn || !view.IsApprenant {
		t.Fatalf("unexpected flags %+v", view)
	}
	if len(view.Instructors) != 0 || instructors.calls.Load() != 0 {
		t.Fatalf("non-admin viewer must not load instructors")
	}
}

func TestHomeAdminSeesInstructorCards(t *testing.T) {
	reviews, courses, instructors := newHomeFixture()
	svc := NewHomeService(reviews, courses, instructors, zerolog.Nop())

	view := svc.Load(context.Background(), viewerWithRole(models.RoleAdmin))
	if len(view.Instructors) != 2 {
		t.Fatalf("expected 2 instructor cards, got %d", len(view.Instructors))
	}
	first, second := view.Instructors[0], view.Instructors[1]
	if first.Name != "Camille Durand" || first.Specialty != "Formateur" || first.Instagram != "#" {
		t.Fatalf("unexpected defaults %+v", first)
	}
	if second.Specialty != "Data" || second.Instagram != "https://instagram.com/lea" {
		t.Fatalf("unexpected card %+v", second)
	}
}

func TestHomeFailuresLeaveListsEmpty(t *testing.T) {
	reviews, courses, instructors := newHomeFixture()
	reviews.listErr = errors.New("reviews down")
	courses.err = errors.New("courses down")
	instructors.err = errors.New("instructors down")
	svc := NewHomeService(reviews, courses, instructors, zerolog.Nop())

	view := svc.Load(context.Background(), viewerWithRole(models.RoleAdmin))
	if view.Reviews == nil || view.Courses == nil || view.Instructors == nil {
		t.Fatalf("lists must be empty, not nil: %+v", view)
	}
	if len(view.Reviews)+len(view.Courses)+len(view.Instructors) != 0 {
		t.Fatalf("expected empty lists, got %+v", view)
	}
}
