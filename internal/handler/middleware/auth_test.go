//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"premium-reconciler/internal/handler/middleware"
	"premium-reconciler/internal/pkg/jwt"
	"premium-reconciler/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(svc)

	whoami := func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		role, _ := middleware.GetRole(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role.String()})
	}
	api := r.Group("/api", auth.RequireAuth())
	api.GET("/whoami", whoami)
	api.GET("/admin", auth.RequireRoleAtLeast(jwt.RoleAdmin), whoami)
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	r := newAuthRouter(t, svc)

	serviceToken, err := svc.GenerateToken("miniapp", jwt.RoleService)
	require.NoError(t, err)
	adminToken, err := svc.GenerateToken("ops", jwt.RoleAdmin)
	require.NoError(t, err)
	foreignToken, err := jwt.NewService("other-secret", time.Hour).GenerateToken("miniapp", jwt.RoleAdmin)
	require.NoError(t, err)
	expiredToken, err := jwt.NewService("test-secret", -time.Minute).GenerateToken("miniapp", jwt.RoleService)
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantMsg    string
	}{
		{name: "service token reaches service routes", path: "/api/whoami", token: serviceToken, wantStatus: http.StatusOK},
		{name: "admin token reaches service routes", path: "/api/whoami", token: adminToken, wantStatus: http.StatusOK},
		{name: "admin token reaches admin routes", path: "/api/admin", token: adminToken, wantStatus: http.StatusOK},
		{name: "service token is forbidden on admin routes", path: "/api/admin", token: serviceToken, wantStatus: http.StatusForbidden, wantMsg: "Insufficient permissions"},
		{name: "missing token", path: "/api/whoami", wantStatus: http.StatusUnauthorized, wantMsg: "Access token required"},
		{name: "token signed with another secret", path: "/api/whoami", token: foreignToken, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
		{name: "expired token", path: "/api/whoami", token: expiredToken, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, tt.path, nil, tt.token)
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
				assert.NotEmpty(t, body["subject"])
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.wantStatus, tt.wantMsg)
		})
	}
}
