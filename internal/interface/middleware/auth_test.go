package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/pkg/helpers"
)

func newGatedRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/")
	admin.Use(Auth(jwt))
	admin.Use(RequireRole(entity.RoleAdmin))
	admin.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString(CtxUsernameKey),
			"role":     c.GetString(CtxRoleKey),
		})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newGatedRouter(jwt)

	w := doGet(t, r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newGatedRouter(jwt)

	tok, _, err := jwt.Generate("root", "admin")
	require.NoError(t, err)

	w := doGet(t, r, "Token "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newGatedRouter(jwt)

	w := doGet(t, r, "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_TamperedToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	other := helpers.NewJWTManager("other-secret", time.Hour)
	r := newGatedRouter(jwt)

	tok, _, err := other.Generate("root", "admin")
	require.NoError(t, err)

	w := doGet(t, r, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	expired := helpers.NewJWTManager("secret", -time.Minute)
	r := newGatedRouter(jwt)

	tok, _, err := expired.Generate("root", "admin")
	require.NoError(t, err)

	w := doGet(t, r, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newGatedRouter(jwt)

	tok, _, err := jwt.Generate("alice", "user")
	require.NoError(t, err)

	w := doGet(t, r, "Bearer "+tok)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newGatedRouter(jwt)

	tok, _, err := jwt.Generate("root", "admin")
	require.NoError(t, err)

	w := doGet(t, r, "bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_ValidAdminToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newGatedRouter(jwt)

	tok, _, err := jwt.Generate("root", "admin")
	require.NoError(t, err)

	w := doGet(t, r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"username":"root"`)
	require.Contains(t, w.Body.String(), `"role":"admin"`)
}
