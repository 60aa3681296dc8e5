package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := NewAuthenticator(testSigningKey)

	router.GET("/me", auth.VerifyJWT(), func(ctx *gin.Context) {
		id, _ := ctx.Get(ContextKeyGuardianID)
		ctx.JSON(http.StatusOK, gin.H{"guardian_id": id})
	})
	router.GET("/admin", auth.VerifyJWT(), auth.RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	router := setupAuthRouter()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleGuardian, "")
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"guardian_id":42`)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		otherKey, err := jwthelper.GenerateToken([]byte("another-key"), 42, domain.RoleGuardian, "")
		require.NoError(t, err)

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+otherKey)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	router := setupAuthRouter()

	t.Run("guardian role is forbidden", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleGuardian, "")
		require.NoError(t, err)

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("admin role passes", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, domain.RoleAdmin, "")
		require.NoError(t, err)

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}
