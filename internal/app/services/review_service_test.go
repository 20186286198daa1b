package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func newReviewFixture() (*fakeReviews, *fakeUsers) {
	users := &fakeUsers{users: map[string]*models.User{
		"user@coursehub.fr": {ID: 1, Email: "user@coursehub.fr", FirstName: "Léa", LastName: "Martin", RoleType: models.RoleApprenant},
	}}
	return &fakeReviews{}, users
}

func TestReviewCreateStoresAuthor(t *testing.T) {
	store, users := newReviewFixture()
	svc := NewReviewService(store, users, zerolog.Nop())

	review, err := svc.Create(context.Background(), viewerWithRole(models.RoleApprenant), models.ReviewInput{Rating: 4, Comment: "Très bon rythme de cours"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.ID == 0 || review.AuthorName != "Léa Martin" || review.UserID == nil || *review.UserID != 1 {
		t.Fatalf("unexpected review %+v", review)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected one stored review")
	}
}

func TestReviewCreateValidatesBeforeStoring(t *testing.T) {
	store, users := newReviewFixture()
	svc := NewReviewService(store, users, zerolog.Nop())

	inputs := []models.ReviewInput{
		{Rating: 5, Comment: strings.Repeat("x", 9)},
		{Rating: 5, Comment: strings.Repeat("x", 501)},
		{Rating: 0, Comment: "Commentaire valide"},
		{Rating: 6, Comment: "Commentaire valide"},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), viewerWithRole(models.RoleApprenant), in); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("input %+v: expected validation error, got %v", in, err)
		}
	}
	if len(store.created) != 0 {
		t.Fatalf("invalid reviews must not be stored")
	}
}

func TestReviewCreateStoreFailure(t *testing.T) {
	store, users := newReviewFixture()
	store.err = errors.New("insert failed")
	svc := NewReviewService(store, users, zerolog.Nop())

	_, err := svc.Create(context.Background(), viewerWithRole(models.RoleApprenant), models.ReviewInput{Rating: 3, Comment: "Commentaire valide"})
	if !errors.Is(err, apperrors.ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestReviewCreateRequiresLogin(t *testing.T) {
	store, users := newReviewFixture()
	svc := NewReviewService(store, users, zerolog.Nop())

	_, err := svc.Create(context.Background(), auth.Anonymous(), models.ReviewInput{Rating: 3, Comment: "Commentaire valide"})
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestReviewListNeverNil(t *testing.T) {
	store, users := newReviewFixture()
	reviews, err := NewReviewService(store, users, zerolog.Nop()).List(context.Background())
	if err != nil || reviews == nil {
		t.Fatalf("expected empty list, got %v %v", reviews, err)
	}
}
