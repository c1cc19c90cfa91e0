package tickets

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

// routeService records the tier creation request the handler passed down.
type routeService struct {
	created CreateTicketTypeRequest
}

func (s *routeService) CreateTicketType(ctx context.Context, actor auth.Actor, req CreateTicketTypeRequest) (*TicketType, error) {
	s.created = req
	return &TicketType{}, nil
}

func (s *routeService) GetTicketTypes(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	return []TicketType{}, nil
}

func (s *routeService) UpdateTicketType(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateTicketTypeRequest) (*TicketType, error) {
	return &TicketType{}, nil
}

func (s *routeService) DeleteTicketType(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	return nil
}

func (s *routeService) GetTicket(ctx context.Context, id uuid.UUID) (*TicketDetail, error) {
	return &TicketDetail{}, nil
}

func (s *routeService) UpdateTicketStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*TicketDetail, error) {
	return &TicketDetail{}, nil
}

func (s *routeService) UserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	return []TicketDetail{}, 0, nil
}

func (s *routeService) VendorSoldTickets(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	return []TicketDetail{}, 0, nil
}

func (s *routeService) VendorTicketStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorTicketStats, error) {
	return &VendorTicketStats{}, nil
}

func newTicketsEngine(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupTicketRoutes(engine.Group("/api/v1"), NewController(svc))
	return engine
}

func TestCreateTierOnEventScopedRoute(t *testing.T) {
	svc := &routeService{}
	engine := newTicketsEngine(svc)
	eventID := uuid.New()

	body := `{"type":"vip","price":120,"quantity":50}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets/event/"+eventID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, eventID.String(), svc.created.EventID)
	assert.Equal(t, "vip", svc.created.Type)
}

func TestCreateTierOnFlatRouteKeepsBodyEvent(t *testing.T) {
	svc := &routeService{}
	engine := newTicketsEngine(svc)
	eventID := uuid.New()

	body := `{"event_id":"` + eventID.String() + `","type":"general","price":40,"quantity":200}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, eventID.String(), svc.created.EventID)
}
