package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixly/internal/shared/auth"
	"tixly/internal/shared/config"
	"tixly/internal/shared/middleware"
)

func newAdminEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc, _, _ := newTestService()
	engine := gin.New()
	api := engine.Group("/api/v1", middleware.Identify(&config.Config{}))
	SetupAdminRoutes(api, NewController(svc), auth.NewAuthorizer())
	return engine
}

func adminGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path+"?is_admin=true", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestDashboardStatsRouteAliases(t *testing.T) {
	engine := newAdminEngine()

	for _, path := range []string{"/api/v1/admin/dashboard", "/api/v1/admin/dashboard/stats"} {
		w := adminGet(t, engine, path)
		require.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				TotalUsers int64 `json:"total_users"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), path)
		assert.True(t, body.Success, path)
		assert.EqualValues(t, 3, body.Data.TotalUsers, path)
	}
}

func TestPaymentsRouteListsPayments(t *testing.T) {
	engine := newAdminEngine()

	w := adminGet(t, engine, "/api/v1/admin/payments")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				TransactionID string `json:"transaction_id"`
			} `json:"items"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "TXN_1_abcd1234", body.Data.Items[0].TransactionID)
	assert.EqualValues(t, 1, body.Data.Total)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	engine := newAdminEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/payments", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
