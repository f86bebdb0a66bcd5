package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-info-server/internal/config"
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(cfg *config.Config, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/protected", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleAuthMiddleware(roles...))
	}
	group.GET("", func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.JSON(500, gin.H{"message": "claims missing"})
			return
		}
		c.JSON(200, gin.H{"id": claims.UserID, "role": claims.Role})
	})
	return router
}

func request(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, cfg *config.Config, role models.Role) string {
	t.Helper()
	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "user@example.com",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	token, err := utils.GenerateToken(user, cfg)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	rec := request(testRouter(cfg), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	router := testRouter(cfg)

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		rec := request(router, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	rec := request(testRouter(cfg), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	token := issueToken(t, cfg, models.RoleNurse)

	rec := request(testRouter(cfg), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRoleAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	router := testRouter(cfg, models.RoleDoctor, models.RoleAdmin)

	rec := request(router, "Bearer "+issueToken(t, cfg, models.RoleNurse))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = request(router, "Bearer "+issueToken(t, cfg, models.RoleDoctor))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(router, "Bearer "+issueToken(t, cfg, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}
