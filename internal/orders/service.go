package orders

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tixly/internal/notifications"
	"tixly/internal/shared/apperror"
	"tixly/internal/tickets"
	"tixly/pkg/logger"
)

// maxOrderNumberAttempts bounds regeneration when an order number collides.
const maxOrderNumberAttempts = 5

type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, error)
	ListOrders(ctx context.Context, query OrderListQuery) ([]Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error)
	UserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error)
	EventOrders(ctx context.Context, eventID uuid.UUID, query OrderListQuery) ([]Order, int64, error)
}

type service struct {
	repo     Repository
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		log:      logger.GetDefault(),
	}
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperror.Validation("invalid event id")
	}
	ticketTypeID, err := uuid.Parse(req.TicketTypeID)
	if err != nil {
		return nil, apperror.Validation("invalid ticket type id")
	}
	if req.Quantity < 1 {
		return nil, apperror.Validation("quantity must be at least 1")
	}
	if req.TotalAmount <= 0 {
		return nil, apperror.Validation("total amount must be greater than zero")
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, apperror.Validation("invalid user id")
		}
		userID = &parsed
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash_on_delivery"
	}

	status := StatusPending
	if req.Status != "" {
		status = Status(req.Status)
		if !status.IsValid() {
			return nil, apperror.Validation("invalid order status: %s", req.Status)
		}
	}

	order := &Order{
		UserID:        userID,
		EventID:       eventID,
		Quantity:      req.Quantity,
		TotalAmount:   req.TotalAmount,
		Status:        status,
		CustomerInfo:  req.CustomerInfo,
		PaymentMethod: paymentMethod,
	}

	var minted []tickets.Ticket
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		order.OrderNumber, err = generateOrderNumber()
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("failed to generate order number: %w", err))
		}

		minted, err = s.repo.CreateWithTickets(ctx, order, ticketTypeID)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, apperror.FromGorm(err, "order")
	}
	if err != nil {
		return nil, apperror.Conflict("could not allocate a unique order number")
	}

	s.log.LogOrderCreated(ctx, order.ID.String(), order.OrderNumber, order.EventID.String(), order.Quantity)
	s.publishOrderCreated(order)

	return &OrderDetail{Order: *order, Tickets: minted}, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, error) {
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "order")
	}
	return detail, nil
}

func (s *service) ListOrders(ctx context.Context, query OrderListQuery) ([]Order, int64, error) {
	query.Normalize()
	orders, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "orders")
	}
	return orders, total, nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error) {
	target := Status(status)
	if !target.IsValid() {
		return nil, apperror.Validation("invalid order status: %s", status)
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "order")
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot change order status from %s to %s", order.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperror.FromGorm(err, "order")
	}

	order.Status = target
	return order, nil
}

func (s *service) UserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	query.Normalize()
	orders, total, err := s.repo.GetUserOrders(ctx, userID, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "orders")
	}
	return orders, total, nil
}

func (s *service) EventOrders(ctx context.Context, eventID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	query.Normalize()
	orders, total, err := s.repo.GetEventOrders(ctx, eventID, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "orders")
	}
	return orders, total, nil
}

// publishOrderCreated notifies downstream consumers without blocking the
// request. Delivery failures are logged and swallowed.
func (s *service) publishOrderCreated(order *Order) {
	if s.producer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := s.producer.PublishOrderCreated(ctx, notifications.OrderCreatedPayload{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			EventID:     order.EventID,
			Quantity:    order.Quantity,
			TotalAmount: order.TotalAmount,
		})
		if err != nil {
			s.log.WithError(err).Warn("failed to publish order created message")
		}
	}()
}

// generateOrderNumber builds ORD-<unix-ms>-<3 digit random suffix>. The
// suffix narrows the collision window for orders created in the same
// millisecond; the unique index on order_number catches the rest.
func generateOrderNumber() (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), suffix.Int64()), nil
}
