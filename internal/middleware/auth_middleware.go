package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Context keys set by the auth middleware
const (
	ContextUserIDKey   = "userID"
	ContextEmailKey    = "email"
	ContextRoleTypeKey = "roleType"
	ContextClaimsKey   = "claims"
)

// RevocationChecker reports whether a token id was revoked by a logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	revocations RevocationChecker
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, revocations RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		revocations: revocations,
	}
}

// tokenFromRequest reads the token from the Authorization header, falling
// back to the token query parameter used by websocket and Swagger UI clients.
func tokenFromRequest(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		header = c.Query("token")
	}
	if header == "" {
		return "", auth.ErrInvalidFormat
	}
	header = strings.Trim(header, "\"'")
	return auth.ExtractBearerToken(header)
}

// authenticate validates the request token and stores its claims in the
// context. The returned error detail is nil on success.
func (m *AuthMiddleware) authenticate(c *gin.Context) (*dto.ErrorDetail, int) {
	tokenString, err := tokenFromRequest(c)
	if err != nil {
		return dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("Authorization header missing"), http.StatusUnauthorized
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed").WithDetails("Invalid token")
		if errors.Is(err, auth.ErrExpiredToken) {
			detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication failed").WithDetails("Token has expired")
		}
		return detail, http.StatusUnauthorized
	}

	if m.revocations != nil {
		revoked, err := m.revocations.IsRevoked(c.Request.Context(), claims.TokenID())
		if err != nil {
			logger.Error().Err(err).Msg("Failed to check token revocation")
			return dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Authentication unavailable"),
				http.StatusServiceUnavailable
		}
		if revoked {
			return dto.NewErrorDetail(dto.ErrorCodeRevokedToken, "Authentication failed").
				WithDetails("Token has been revoked"), http.StatusUnauthorized
		}
	}

	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextEmailKey, claims.Email)
	c.Set(ContextRoleTypeKey, claims.RoleType)
	c.Set(ContextClaimsKey, claims)
	return nil, http.StatusOK
}

// JWTAuth rejects requests without a valid, unrevoked token
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if detail, status := m.authenticate(c); detail != nil {
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request when it carries a token and lets
// anonymous requests through. A bad token is treated as anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" && c.Query("token") == "" {
			c.Next()
			return
		}
		if detail, _ := m.authenticate(c); detail != nil {
			logger.Debug().Str("code", string(detail.Code)).Msg("Ignoring unusable token on optional route")
		}
		c.Next()
	}
}

// RoleRequired middleware to check if user has required role
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleTypeKey)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, ok := role.(string)
		if !ok || models.RoleType(roleStr) != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// ClaimsFrom returns the token claims stored by JWTAuth or OptionalAuth
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// ViewerFrom returns the viewer of the request, anonymous if unauthenticated
func ViewerFrom(c *gin.Context) appAuth.Viewer {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return appAuth.Anonymous()
	}
	return appAuth.ViewerFromClaims(claims)
}
