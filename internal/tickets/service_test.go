package tickets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	tiers       map[uuid.UUID]*TicketType
	issued      map[uuid.UUID]*Ticket
	eventOwners map[uuid.UUID]uuid.UUID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tiers:       make(map[uuid.UUID]*TicketType),
		issued:      make(map[uuid.UUID]*Ticket),
		eventOwners: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeRepository) CreateType(ctx context.Context, tier *TicketType) error {
	tier.ID = uuid.New()
	f.tiers[tier.ID] = tier
	return nil
}

func (f *fakeRepository) GetTypeByID(ctx context.Context, id uuid.UUID) (*TicketType, error) {
	tier, ok := f.tiers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *tier
	return &copied, nil
}

func (f *fakeRepository) GetTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	var tiers []TicketType
	for _, tier := range f.tiers {
		if tier.EventID == eventID {
			tiers = append(tiers, *tier)
		}
	}
	return tiers, nil
}

func (f *fakeRepository) UpdateType(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*TicketType, error) {
	tier, ok := f.tiers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if price, ok := updates["price"].(float64); ok {
		tier.Price = price
	}
	if quantity, ok := updates["quantity"].(int); ok {
		tier.Quantity = quantity
	}
	if name, ok := updates["type"].(string); ok {
		tier.Type = name
	}
	copied := *tier
	return &copied, nil
}

func (f *fakeRepository) DeleteType(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.tiers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tiers, id)
	return nil
}

func (f *fakeRepository) EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error) {
	owner, ok := f.eventOwners[eventID]
	if !ok {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return owner, nil
}

func (f *fakeRepository) GetTicketByID(ctx context.Context, id uuid.UUID) (*TicketDetail, error) {
	ticket, ok := f.issued[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &TicketDetail{
		ID:           ticket.ID,
		TicketNumber: ticket.TicketNumber,
		Status:       ticket.Status,
		EventID:      ticket.EventID,
		OrderID:      ticket.OrderID,
		UserID:       ticket.UserID,
	}, nil
}

func (f *fakeRepository) GetTicketRecord(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	ticket, ok := f.issued[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ticket
	return &copied, nil
}

func (f *fakeRepository) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status Status) error {
	ticket, ok := f.issued[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ticket.Status = status
	return nil
}

func (f *fakeRepository) GetUserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	details := []TicketDetail{}
	for _, ticket := range f.issued {
		if ticket.UserID != nil && *ticket.UserID == userID {
			detail, _ := f.GetTicketByID(ctx, ticket.ID)
			details = append(details, *detail)
		}
	}
	return details, int64(len(details)), nil
}

func (f *fakeRepository) GetVendorSoldTickets(ctx context.Context, vendorID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	details := []TicketDetail{}
	for _, ticket := range f.issued {
		if f.eventOwners[ticket.EventID] == vendorID {
			detail, _ := f.GetTicketByID(ctx, ticket.ID)
			details = append(details, *detail)
		}
	}
	return details, int64(len(details)), nil
}

func (f *fakeRepository) VendorTicketStats(ctx context.Context, vendorID uuid.UUID) (*VendorTicketStats, error) {
	stats := &VendorTicketStats{
		ByTicketStatus: make(map[string]int64),
		ByOrderStatus:  make(map[string]int64),
	}
	for _, ticket := range f.issued {
		if f.eventOwners[ticket.EventID] == vendorID {
			stats.TotalSold++
			stats.ByTicketStatus[string(ticket.Status)]++
		}
	}
	return stats, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, auth.NewAuthorizer()), repo
}

func TestCreateTicketTypeOwnership(t *testing.T) {
	svc, repo := newTestService()
	owner := uuid.New()
	eventID := uuid.New()
	repo.eventOwners[eventID] = owner

	req := CreateTicketTypeRequest{
		EventID:  eventID.String(),
		Type:     "Balcony",
		Price:    65,
		Quantity: 120,
		Features: []string{"Elevated view"},
	}

	_, err := svc.CreateTicketType(context.Background(), auth.Actor{VendorID: uuid.New()}, req)
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	tier, err := svc.CreateTicketType(context.Background(), auth.Actor{VendorID: owner}, req)
	require.NoError(t, err)
	assert.Equal(t, eventID, tier.EventID)
	assert.Len(t, repo.tiers, 1)

	// unknown event surfaces not found, not a permission error
	req.EventID = uuid.New().String()
	_, err = svc.CreateTicketType(context.Background(), auth.Actor{VendorID: owner}, req)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateTicketTypeValidation(t *testing.T) {
	svc, repo := newTestService()
	owner := uuid.New()
	eventID := uuid.New()
	repo.eventOwners[eventID] = owner

	tier, err := svc.CreateTicketType(context.Background(), auth.Actor{VendorID: owner}, CreateTicketTypeRequest{
		EventID: eventID.String(), Type: "Standard", Price: 30, Quantity: 100,
	})
	require.NoError(t, err)

	badPrice := 0.0
	_, err = svc.UpdateTicketType(context.Background(), auth.Actor{VendorID: owner}, tier.ID, UpdateTicketTypeRequest{Price: &badPrice})
	assert.True(t, apperror.IsValidation(err))

	newPrice := 45.0
	updated, err := svc.UpdateTicketType(context.Background(), auth.Actor{VendorID: owner}, tier.ID, UpdateTicketTypeRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 45.0, updated.Price)

	_, err = svc.UpdateTicketType(context.Background(), auth.Actor{VendorID: uuid.New()}, tier.ID, UpdateTicketTypeRequest{Price: &newPrice})
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))
}

func TestDeleteTicketType(t *testing.T) {
	svc, repo := newTestService()
	owner := uuid.New()
	eventID := uuid.New()
	repo.eventOwners[eventID] = owner

	tier, err := svc.CreateTicketType(context.Background(), auth.Actor{VendorID: owner}, CreateTicketTypeRequest{
		EventID: eventID.String(), Type: "Standard", Price: 30, Quantity: 100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTicketType(context.Background(), auth.Actor{Admin: true}, tier.ID))
	assert.Empty(t, repo.tiers)

	err = svc.DeleteTicketType(context.Background(), auth.Actor{Admin: true}, tier.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateTicketStatusTransitions(t *testing.T) {
	svc, repo := newTestService()
	owner := uuid.New()
	eventID := uuid.New()
	repo.eventOwners[eventID] = owner

	ticketID := uuid.New()
	repo.issued[ticketID] = &Ticket{
		ID:           ticketID,
		EventID:      eventID,
		OrderID:      uuid.New(),
		TicketTypeID: uuid.New(),
		TicketNumber: "TKT-test-1",
		Status:       StatusActive,
	}

	_, err := svc.UpdateTicketStatus(context.Background(), auth.Actor{VendorID: owner}, ticketID, "expired")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.UpdateTicketStatus(context.Background(), auth.Actor{VendorID: uuid.New()}, ticketID, "used")
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	detail, err := svc.UpdateTicketStatus(context.Background(), auth.Actor{VendorID: owner}, ticketID, "used")
	require.NoError(t, err)
	assert.Equal(t, StatusUsed, detail.Status)

	_, err = svc.UpdateTicketStatus(context.Background(), auth.Actor{VendorID: owner}, ticketID, "active")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestUserTicketsScopedToCaller(t *testing.T) {
	svc, repo := newTestService()
	eventID := uuid.New()
	repo.eventOwners[eventID] = uuid.New()

	userID := uuid.New()
	otherID := uuid.New()
	for i, uid := range []uuid.UUID{userID, userID, otherID} {
		id := uuid.New()
		owned := uid
		repo.issued[id] = &Ticket{
			ID:           id,
			EventID:      eventID,
			UserID:       &owned,
			OrderID:      uuid.New(),
			TicketTypeID: uuid.New(),
			TicketNumber: "TKT-list-" + string(rune('1'+i)),
			Status:       StatusActive,
		}
	}

	details, total, err := svc.UserTickets(context.Background(), userID, TicketListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, details, 2)
}

func TestVendorSoldTicketsAuthorization(t *testing.T) {
	svc, repo := newTestService()
	vendorID := uuid.New()
	eventID := uuid.New()
	repo.eventOwners[eventID] = vendorID

	_, _, err := svc.VendorSoldTickets(context.Background(), auth.Actor{VendorID: uuid.New()}, vendorID, TicketListQuery{})
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	_, _, err = svc.VendorSoldTickets(context.Background(), auth.Actor{VendorID: vendorID}, vendorID, TicketListQuery{})
	assert.NoError(t, err)

	_, err = svc.VendorTicketStats(context.Background(), auth.Actor{Admin: true}, vendorID)
	assert.NoError(t, err)
}
