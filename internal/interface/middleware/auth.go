package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/pkg/helpers"
	"github.com/satriadika/auth-service/pkg/response"
)

const (
	CtxUsernameKey = "authUsername"
	CtxRoleKey     = "authRole"
)

// Auth validates the bearer token and injects the claims into the Gin
// context. Only the `Authorization: Bearer <token>` convention is
// recognized. Every failure aborts with a generic 401 before any handler
// runs; the body never says whether the token was missing, malformed,
// tampered or expired.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(CtxUsernameKey, claims.Subject)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the role the Auth middleware attached.
// It must run after Auth.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRoleKey) != role.String() {
			resp := response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
