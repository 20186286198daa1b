package auth

import (
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
)

// Viewer is the caller of a request as far as page gating is concerned.
// The zero value is an anonymous visitor.
type Viewer struct {
	UserID   int64
	Email    string
	Role     models.RoleType
	TokenID  string
	loggedIn bool
}

// Anonymous returns a viewer that is not logged in.
func Anonymous() Viewer {
	return Viewer{}
}

// ViewerFromClaims builds a logged-in viewer from validated token claims.
func ViewerFromClaims(claims *pkgAuth.Claims) Viewer {
	if claims == nil {
		return Anonymous()
	}
	return Viewer{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Role:     models.RoleType(claims.RoleType),
		TokenID:  claims.TokenID(),
		loggedIn: true,
	}
}

// IsLoggedIn reports whether the request carried a valid token.
func (v Viewer) IsLoggedIn() bool {
	return v.loggedIn
}

// IsAdmin reports whether the viewer has administrative privileges.
func (v Viewer) IsAdmin() bool {
	return v.loggedIn && v.Role == models.RoleAdmin
}

// IsApprenant reports whether the viewer is a learner.
func (v Viewer) IsApprenant() bool {
	return v.loggedIn && v.Role == models.RoleApprenant
}

// RequireAdmin returns a forbidden error unless the viewer is an admin.
func RequireAdmin(v Viewer) error {
	if !v.IsLoggedIn() {
		return apperrors.ErrTokenInvalid
	}
	if !v.IsAdmin() {
		return apperrors.NewForbiddenError("administrator role required")
	}
	return nil
}
