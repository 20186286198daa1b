package auth

import (
	"errors"
	"testing"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
)

func TestAnonymousViewer(t *testing.T) {
	v := Anonymous()
	if v.IsLoggedIn() || v.IsAdmin() || v.IsApprenant() {
		t.Fatalf("anonymous viewer must have no privileges: %+v", v)
	}
	if err := RequireAdmin(v); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestViewerFromClaims(t *testing.T) {
	cases := []struct {
		role      models.RoleType
		admin     bool
		apprenant bool
	}{
		{role: models.RoleAdmin, admin: true},
		{role: models.RoleApprenant, apprenant: true},
		{role: models.RoleInstructor},
	}
	for _, tc := range cases {
		claims := &pkgAuth.Claims{UserID: 1, Email: "a@b.fr", RoleType: string(tc.role)}
		claims.ID = "jti"
		v := ViewerFromClaims(claims)
		if !v.IsLoggedIn() || v.IsAdmin() != tc.admin || v.IsApprenant() != tc.apprenant {
			t.Fatalf("role %s: unexpected viewer %+v", tc.role, v)
		}
		if v.TokenID != "jti" {
			t.Fatalf("token id not carried over")
		}
	}
}

func TestRequireAdminForbidsOtherRoles(t *testing.T) {
	v := ViewerFromClaims(&pkgAuth.Claims{UserID: 2, Email: "x@y.fr", RoleType: string(models.RoleApprenant)})
	if err := RequireAdmin(v); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	admin := ViewerFromClaims(&pkgAuth.Claims{UserID: 1, Email: "a@b.fr", RoleType: string(models.RoleAdmin)})
	if err := RequireAdmin(admin); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
	if ViewerFromClaims(nil).IsLoggedIn() {
		t.Fatalf("nil claims should be anonymous")
	}
}
