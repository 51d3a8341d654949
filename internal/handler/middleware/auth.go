package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey     = "actor"
	ctxJWTClaimsKey = "jwt_claims"
)

var (
	errMissingToken = errs.New("missing access token")
	errForbidden    = errs.New("insufficient role")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
			return
		}

		if !slices.Contains(roles, actor.Role()) {
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetActor stores the authenticated actor. Tests use it to bypass token parsing.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)

	claims := map[string]any{
		"user_id": actor.UserID().String(),
		"role":    actor.Role().String(),
	}
	if branchID := actor.BranchID(); branchID != nil {
		claims["branch_id"] = branchID.String()
	}
	c.Set(ctxJWTClaimsKey, claims)
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}

	actor, ok := v.(user.Actor)
	return actor, ok
}
