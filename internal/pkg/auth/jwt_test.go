package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(now time.Time) *JWTService {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "coursehub.test",
	})
	svc.now = func() time.Time { return now }
	return svc
}

func testUser() *models.User {
	return &models.User{ID: 7, Email: "admin@coursehub.test", RoleType: models.RoleAdmin}
}

func TestIssueAndValidateToken(t *testing.T) {
	now := time.Now()
	svc := newTestService(now)

	issued, err := svc.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if issued.ExpiresIn != 3600 {
		t.Fatalf("expected 3600s lifetime, got %d", issued.ExpiresIn)
	}

	claims, err := svc.ValidateToken(issued.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.RoleType != string(models.RoleAdmin) {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.TokenID() != issued.TokenID {
		t.Fatalf("token id mismatch: %s vs %s", claims.TokenID(), issued.TokenID)
	}
	if ttl := claims.TTL(now); ttl <= 59*time.Minute || ttl > time.Hour {
		t.Fatalf("unexpected ttl %s", ttl)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	issued, err := newTestService(issuedAt).IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	_, err = newTestService(time.Now()).ValidateToken(issued.AccessToken)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issued, err := newTestService(time.Now()).IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "coursehub.test"})
	if _, err := other.ValidateToken(issued.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	if _, err := newTestService(time.Now()).ValidateToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "abc", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ExtractBearerToken(tc.header)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("header %q: expected error", tc.header)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("header %q: got %q, %v", tc.header, got, err)
		}
	}
}

func TestClaimsTTLExpired(t *testing.T) {
	var c Claims
	if c.TTL(time.Now()) != 0 {
		t.Fatalf("expected zero ttl without expiry")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := hashWithCost("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatalf("expected password to match")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("expected mismatch")
	}
}
