package withdrawals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixly/internal/shared/auth"
)

// routeService records status updates so both status-route verbs can be
// checked against the same handler.
type routeService struct {
	updatedID     uuid.UUID
	updatedStatus string
}

func (s *routeService) CreateWithdrawal(ctx context.Context, actor auth.Actor, req CreateWithdrawalRequest) (*Withdrawal, error) {
	return &Withdrawal{}, nil
}

func (s *routeService) GetWithdrawal(ctx context.Context, id uuid.UUID) (*Withdrawal, error) {
	return &Withdrawal{}, nil
}

func (s *routeService) ListWithdrawals(ctx context.Context, actor auth.Actor, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	return []Withdrawal{}, 0, nil
}

func (s *routeService) VendorWithdrawals(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	return []Withdrawal{}, 0, nil
}

func (s *routeService) VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorWithdrawalStats, error) {
	return &VendorWithdrawalStats{}, nil
}

func (s *routeService) UpdateWithdrawalStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Withdrawal, error) {
	s.updatedID = id
	s.updatedStatus = status
	return &Withdrawal{ID: id, Status: Status(status)}, nil
}

func TestStatusRouteAcceptsPutAndPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &routeService{}
	engine := gin.New()
	SetupWithdrawalRoutes(engine.Group("/api/v1"), NewController(svc))

	withdrawalID := uuid.New()
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		svc.updatedStatus = ""
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/v1/withdrawals/"+withdrawalID.String()+"/status", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, method)
		assert.Equal(t, withdrawalID, svc.updatedID, method)
		assert.Equal(t, "approved", svc.updatedStatus, method)
	}
}
