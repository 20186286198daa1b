package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/chart"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/app/statistics"
	"github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
)

type stubDashboard struct {
	state services.DashboardState
}

func (s stubDashboard) Load(context.Context) services.DashboardState { return s.state }

type stubReviews struct {
	created []models.ReviewInput
}

func (s *stubReviews) List(context.Context) ([]models.Review, error) {
	return []models.Review{}, nil
}

func (s *stubReviews) Create(_ context.Context, v auth.Viewer, in models.ReviewInput) (*models.Review, error) {
	s.created = append(s.created, in)
	uid := v.UserID
	return &models.Review{ID: 1, UserID: &uid, Rating: in.Rating, Comment: in.Comment}, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.StructuredResponse {
	t.Helper()
	var resp dto.StructuredResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestGetDashboardRecoveredError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	summary := statistics.Summary{TotalCourses: 2}
	ctrl := NewDashboardController(stubDashboard{state: services.DashboardState{
		Error:      services.EnrollmentFetchErrorMessage,
		Generation: 4,
		Summary:    &summary,
	}}, chart.NewBoard(nil, zerolog.Nop()))

	r := gin.New()
	r.GET("/dashboard", ctrl.GetDashboard)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("dashboard errors are recovered, got status %d", w.Code)
	}
	resp := decode(t, w)
	if resp.Success || resp.Error == nil || resp.Error.Message != services.EnrollmentFetchErrorMessage {
		t.Fatalf("unexpected response %+v", resp)
	}
	data, _ := json.Marshal(resp.Data)
	if !strings.Contains(string(data), `"generation":4`) || !strings.Contains(string(data), `"summary"`) {
		t.Fatalf("partial data missing: %s", data)
	}
}

func TestGetDashboardSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stats := statistics.Statistics{}
	ctrl := NewDashboardController(stubDashboard{state: services.DashboardState{Statistics: &stats}}, chart.NewBoard(nil, zerolog.Nop()))

	r := gin.New()
	r.GET("/dashboard", ctrl.GetDashboard)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if resp := decode(t, w); w.Code != http.StatusOK || !resp.Success || resp.Error != nil {
		t.Fatalf("unexpected response %d %+v", w.Code, resp)
	}
}

func TestCreateReviewBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reviews := &stubReviews{}
	ctrl := NewReviewController(reviews, zerolog.Nop())

	r := gin.New()
	r.POST("/reviews", func(c *gin.Context) {
		claims := &pkgAuth.Claims{UserID: 3, Email: "a@coursehub.fr", RoleType: "APPRENANT"}
		claims.ID = "jti"
		c.Set(middleware.ContextClaimsKey, claims)
		c.Next()
	}, ctrl.CreateReview)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	if w := post(`{"rating":6,"comment":"Un commentaire valide"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("rating 6: got %d", w.Code)
	}
	if w := post(`{"rating":4,"comment":"court"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("short comment: got %d", w.Code)
	}
	if len(reviews.created) != 0 {
		t.Fatalf("invalid input reached the service")
	}

	w := post(`{"rating":4,"comment":"Un commentaire valide"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("valid review: got %d %s", w.Code, w.Body.String())
	}
	if len(reviews.created) != 1 || reviews.created[0].Rating != 4 {
		t.Fatalf("service not called with input: %+v", reviews.created)
	}
}
