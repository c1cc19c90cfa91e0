package orders

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tixly/internal/notifications"
	"tixly/internal/shared/apperror"
	"tixly/internal/tickets"
)

// fakeRepository is an in-memory Repository for service tests. It enforces
// order number uniqueness the way the database unique index would, and can
// be primed to reject the next N inserts as duplicates.
type fakeRepository struct {
	mu           sync.Mutex
	orders       map[uuid.UUID]*Order
	minted       map[uuid.UUID][]tickets.Ticket
	orderNumbers map[string]bool
	rejectNext   int
	attempts     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		orders:       make(map[uuid.UUID]*Order),
		minted:       make(map[uuid.UUID][]tickets.Ticket),
		orderNumbers: make(map[string]bool),
	}
}

func (f *fakeRepository) CreateWithTickets(ctx context.Context, order *Order, ticketTypeID uuid.UUID) ([]tickets.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts++
	if f.rejectNext > 0 {
		f.rejectNext--
		return nil, gorm.ErrDuplicatedKey
	}
	if f.orderNumbers[order.OrderNumber] {
		return nil, gorm.ErrDuplicatedKey
	}

	order.ID = uuid.New()
	f.orders[order.ID] = order
	f.orderNumbers[order.OrderNumber] = true

	var batch []tickets.Ticket
	for i := 1; i <= order.Quantity; i++ {
		batch = append(batch, tickets.Ticket{
			ID:           uuid.New(),
			EventID:      order.EventID,
			UserID:       order.UserID,
			OrderID:      order.ID,
			TicketTypeID: ticketTypeID,
			TicketNumber: fmt.Sprintf("TKT-%s-%d", order.ID, i),
			Status:       tickets.StatusActive,
		})
	}
	f.minted[order.ID] = batch
	return batch, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeRepository) GetDetail(ctx context.Context, id uuid.UUID) (*OrderDetail, error) {
	order, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *order, Tickets: f.minted[id]}, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, query OrderListQuery) ([]Order, int64, error) {
	orders := []Order{}
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	return orders, int64(len(orders)), nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (f *fakeRepository) GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	orders := []Order{}
	for _, o := range f.orders {
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, int64(len(orders)), nil
}

func (f *fakeRepository) GetEventOrders(ctx context.Context, eventID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	orders := []Order{}
	for _, o := range f.orders {
		if o.EventID == eventID {
			orders = append(orders, *o)
		}
	}
	return orders, int64(len(orders)), nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, notifications.NewNoopProducer()), repo
}

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		EventID:      uuid.New().String(),
		TicketTypeID: uuid.New().String(),
		UserID:       uuid.New().String(),
		Quantity:     3,
		TotalAmount:  120,
		CustomerInfo: map[string]interface{}{"name": "Dana Reyes", "email": "dana@example.com"},
	}
}

func TestCreateOrderMintsTickets(t *testing.T) {
	svc, repo := newTestService()

	detail, err := svc.CreateOrder(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, detail.Status)
	assert.Equal(t, "cash_on_delivery", detail.PaymentMethod)
	require.Len(t, detail.Tickets, 3)
	for i, ticket := range detail.Tickets {
		assert.Equal(t, fmt.Sprintf("TKT-%s-%d", detail.ID, i+1), ticket.TicketNumber)
		assert.Equal(t, tickets.StatusActive, ticket.Status)
		assert.Equal(t, detail.ID, ticket.OrderID)
	}
	assert.Len(t, repo.minted[detail.ID], 3)
}

func TestGetOrderReturnsTicketsInMintOrder(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.Quantity = 12
	created, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	detail, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Tickets, 12)
	for i, ticket := range detail.Tickets {
		assert.Equal(t, fmt.Sprintf("TKT-%s-%d", created.ID, i+1), ticket.TicketNumber)
	}
}

func TestCreateOrderGuestCheckout(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.UserID = ""
	detail, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, detail.UserID)
	for _, ticket := range detail.Tickets {
		assert.Nil(t, ticket.UserID)
	}
}

func TestCreateOrderCallerSuppliedStatus(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.Status = "confirmed"
	detail, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, detail.Status)

	req = validCreateRequest()
	req.Status = "shipped"
	_, err = svc.CreateOrder(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.Quantity = 0
	_, err := svc.CreateOrder(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))

	req = validCreateRequest()
	req.TotalAmount = 0
	_, err = svc.CreateOrder(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))

	req = validCreateRequest()
	req.EventID = "not-a-uuid"
	_, err = svc.CreateOrder(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))

	req = validCreateRequest()
	req.UserID = "not-a-uuid"
	_, err = svc.CreateOrder(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateOrderRetriesOnDuplicateNumber(t *testing.T) {
	svc, repo := newTestService()
	repo.rejectNext = 2

	detail, err := svc.CreateOrder(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.attempts)
	assert.NotEmpty(t, detail.OrderNumber)
}

func TestCreateOrderGivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, repo := newTestService()
	repo.rejectNext = maxOrderNumberAttempts + 1

	_, err := svc.CreateOrder(context.Background(), validCreateRequest())
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, maxOrderNumberAttempts, repo.attempts)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d+-\d{3}$`)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		number, err := generateOrderNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
		seen[number] = true
	}
	// collisions possible within a millisecond but the spread should be wide
	assert.Greater(t, len(seen), 100)
}

func TestConcurrentOrdersGetDistinctNumbers(t *testing.T) {
	svc, repo := newTestService()

	const workers = 64
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CreateOrder(context.Background(), validCreateRequest()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}
	assert.Len(t, repo.orderNumbers, workers)
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	svc, _ := newTestService()

	detail, err := svc.CreateOrder(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), detail.ID, "shipped")
	assert.True(t, apperror.IsValidation(err))

	order, err := svc.UpdateOrderStatus(context.Background(), detail.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, order.Status)

	order, err = svc.UpdateOrderStatus(context.Background(), detail.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, order.Status)

	_, err = svc.UpdateOrderStatus(context.Background(), detail.ID, "confirmed")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestUserOrders(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.New()

	req := validCreateRequest()
	req.UserID = userID.String()
	_, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), validCreateRequest())
	require.NoError(t, err)

	orders, total, err := svc.UserOrders(context.Background(), userID, OrderListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, userID, *orders[0].UserID)
}
