package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tixly/internal/tickets"
)

type Repository interface {
	CreateWithTickets(ctx context.Context, order *Order, ticketTypeID uuid.UUID) ([]tickets.Ticket, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*OrderDetail, error)
	GetAll(ctx context.Context, query OrderListQuery) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error)
	GetEventOrders(ctx context.Context, eventID uuid.UUID, query OrderListQuery) ([]Order, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithTickets inserts the order and mints one ticket per quantity
// unit inside a single transaction. Either everything lands or nothing
// does. A unique violation on the order number is returned untouched so
// the caller can regenerate and retry.
func (r *repository) CreateWithTickets(ctx context.Context, order *Order, ticketTypeID uuid.UUID) ([]tickets.Ticket, error) {
	var minted []tickets.Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := 1; i <= order.Quantity; i++ {
			ticket := tickets.Ticket{
				EventID:      order.EventID,
				UserID:       order.UserID,
				OrderID:      order.ID,
				TicketTypeID: ticketTypeID,
				TicketNumber: fmt.Sprintf("TKT-%s-%d", order.ID, i),
				Status:       tickets.StatusActive,
			}
			if err := tx.Create(&ticket).Error; err != nil {
				return err
			}
			minted = append(minted, ticket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return minted, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) GetDetail(ctx context.Context, id uuid.UUID) (*OrderDetail, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Tickets share the TKT-<orderID>- prefix, so sorting by length first
	// keeps TKT-x-10 after TKT-x-9 instead of between TKT-x-1 and TKT-x-2.
	minted := []tickets.Ticket{}
	err = r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("LENGTH(ticket_number), ticket_number").
		Find(&minted).Error
	if err != nil {
		return nil, err
	}

	return &OrderDetail{Order: *order, Tickets: minted}, nil
}

func (r *repository) GetAll(ctx context.Context, query OrderListQuery) ([]Order, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Order{}), query)
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", userID)
	return r.list(ctx, base, query)
}

func (r *repository) GetEventOrders(ctx context.Context, eventID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&Order{}).Where("event_id = ?", eventID)
	return r.list(ctx, base, query)
}

func (r *repository) list(ctx context.Context, base *gorm.DB, query OrderListQuery) ([]Order, int64, error) {
	query.Normalize()

	if query.Status != "" {
		base = base.Where("status = ?", query.Status)
	}
	if query.EventID != "" {
		if eventID, err := uuid.Parse(query.EventID); err == nil {
			base = base.Where("event_id = ?", eventID)
		}
	}
	if query.UserID != "" {
		if userID, err := uuid.Parse(query.UserID); err == nil {
			base = base.Where("user_id = ?", userID)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := []Order{}
	err := base.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
