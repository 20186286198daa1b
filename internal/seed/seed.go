package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// DefaultAdminEmail is the administrator account created on first start
const DefaultAdminEmail = "admin@coursehub.fr"

type instructorSeed struct {
	first, last, email, specialty string
}

var instructorSeeds = []instructorSeed{
	{"Camille", "Durand", "camille.durand@coursehub.fr", "Développement web"},
	{"Hugo", "Lefèvre", "hugo.lefevre@coursehub.fr", "Data science"},
}

var courseSeeds = []struct {
	title, description string
	instructor         int // index into instructorSeeds, -1 for none
}{
	{"Initiation à Go", "Les bases du langage Go", 0},
	{"Développement web moderne", "HTML, CSS et JavaScript", 0},
	{"Analyse de données", "Statistiques appliquées avec Python", 1},
	{"Gestion de projet agile", "Scrum et Kanban au quotidien", -1},
}

// CreateDefaultData creates the administrator, instructors and courses if
// they don't exist. Sample enrollments, messages and reviews are only added
// the first time, when the administrator account is created.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin, instructors, courses)...")
	var finalErr error // collect errors without stopping the process

	password, err := auth.HashPassword(config.GetEnv("SEED_ADMIN_PASSWORD", "Admin123!"))
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:     DefaultAdminEmail,
		Password:  password,
		FirstName: "Admin",
		LastName:  "CourseHub",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}
	firstRun := true
	if err := repos.UserRepository.Create(ctx, admin); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return err
		}
		firstRun = false
	}

	instructorIDs := make([]*int64, len(instructorSeeds))
	for i, s := range instructorSeeds {
		specialty := s.specialty
		u := &appModels.User{Email: s.email, Password: password, FirstName: s.first, LastName: s.last}
		err := repos.UserRepository.CreateInstructor(ctx, u, &specialty, nil, nil)
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			u, err = repos.UserRepository.GetByEmail(ctx, s.email)
		}
		if err != nil {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error creating instructor")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		id := u.ID
		instructorIDs[i] = &id
	}

	var courses []*appModels.Course
	for _, s := range courseSeeds {
		description := s.description
		c := &appModels.Course{Title: s.title, Description: &description}
		if s.instructor >= 0 {
			c.InstructorID = instructorIDs[s.instructor]
		}
		err := repos.CourseRepository.Create(ctx, c)
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			c, err = repos.CourseRepository.FindByTitle(ctx, s.title)
		}
		if err != nil {
			lgr.Error().Err(err).Str("title", s.title).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		courses = append(courses, c)
	}

	if firstRun {
		finalErr = errors.Join(finalErr, createSamples(ctx, repos, courses, password, lgr))
	}

	lgr.Info().Int("courses", len(courses)).Bool("samples", firstRun).Msg("Default data ready")
	return finalErr
}

// createSamples adds a learner with a few enrollments, messages and a review
func createSamples(ctx context.Context, repos *appRepos.Repositories, courses []*appModels.Course, password string, lgr zerolog.Logger) error {
	learner := &appModels.User{
		Email:     "lea.martin@coursehub.fr",
		Password:  password,
		FirstName: "Léa",
		LastName:  "Martin",
		RoleType:  appModels.RoleApprenant,
		IsActive:  true,
	}
	if err := repos.UserRepository.Create(ctx, learner); err != nil {
		return err
	}

	var errs error
	now := time.Now()
	statuses := []string{"pending", "confirmed", "paid", "refused"}
	for i, c := range courses {
		created := now.AddDate(0, -i, 0)
		e := &appModels.Enrollment{CourseID: c.ID, StudentID: learner.ID, Status: statuses[i%len(statuses)], CreatedAt: &created}
		if err := repos.EnrollmentRepository.Create(ctx, e); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	read := true
	messages := []*appModels.Message{
		{Name: "Paul Bernard", Email: "paul.bernard@example.com", Subject: "Tarifs", Body: "Bonjour, quels sont vos tarifs ?"},
		{Name: "Inès Petit", Email: "ines.petit@example.com", Subject: "Certificat", Body: "Les formations sont-elles certifiantes ?", Read: &read},
	}
	for _, m := range messages {
		if err := repos.MessageRepository.Create(ctx, m); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	uid := learner.ID
	review := &appModels.Review{UserID: &uid, AuthorName: learner.FullName(), Rating: 5, Comment: "Formation claire et bien rythmée."}
	if err := repos.ReviewRepository.CreateReview(ctx, review); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		lgr.Error().Err(errs).Msg("Some sample records could not be created")
	}
	return errs
}
