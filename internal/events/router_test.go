package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixly/internal/shared/auth"
)

// routeService records the vendor each dashboard handler resolved.
type routeService struct {
	vendorID uuid.UUID
}

func (s *routeService) CreateEvent(ctx context.Context, actor auth.Actor, req CreateEventRequest) (*EventDetail, error) {
	return &EventDetail{}, nil
}

func (s *routeService) GetEvent(ctx context.Context, id uuid.UUID) (*EventDetail, error) {
	return &EventDetail{}, nil
}

func (s *routeService) ListEvents(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	return []Event{}, 0, nil
}

func (s *routeService) SearchEvents(ctx context.Context, term string, query EventListQuery) ([]Event, int64, error) {
	return []Event{}, 0, nil
}

func (s *routeService) UpdateEvent(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateEventRequest) (*Event, error) {
	return &Event{}, nil
}

func (s *routeService) UpdateEventStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Event, error) {
	return &Event{}, nil
}

func (s *routeService) DeleteEvent(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	return nil
}

func (s *routeService) VendorEvents(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query EventListQuery) ([]Event, int64, error) {
	s.vendorID = vendorID
	return []Event{}, 0, nil
}

func (s *routeService) VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEventStats, error) {
	s.vendorID = vendorID
	return &VendorEventStats{}, nil
}

func (s *routeService) VendorEarnings(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEarnings, error) {
	s.vendorID = vendorID
	return &VendorEarnings{}, nil
}

func (s *routeService) SalesAnalysis(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) ([]TicketSales, error) {
	s.vendorID = vendorID
	return []TicketSales{}, nil
}

func newEventsEngine(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupEventRoutes(engine.Group("/api/v1"), NewController(svc), auth.NewAuthorizer())
	return engine
}

func TestVendorDashboardRoutesResolveQueryVendor(t *testing.T) {
	svc := &routeService{}
	engine := newEventsEngine(svc)
	vendorID := uuid.New()

	paths := []string{
		"/api/v1/events/vendor/my-events",
		"/api/v1/events/vendor/stats",
		"/api/v1/events/vendor/earnings",
		"/api/v1/events/vendor/sales-analysis",
	}
	for _, path := range paths {
		svc.vendorID = uuid.Nil
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path+"?vendor_id="+vendorID.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, vendorID, svc.vendorID, path)
	}
}

func TestVendorDashboardRoutesResolvePathVendor(t *testing.T) {
	svc := &routeService{}
	engine := newEventsEngine(svc)
	vendorID := uuid.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/vendor/"+vendorID.String()+"/stats", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, vendorID, svc.vendorID)
}

func TestVendorDashboardRejectsMissingVendor(t *testing.T) {
	engine := newEventsEngine(&routeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/vendor/my-events", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
