package orders

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/jsontypes"
	"tixly/internal/shared/utils/pagination"
	"tixly/internal/tickets"
)

// Order groups the tickets minted by a single purchase.
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderNumber   string             `gorm:"unique;not null" json:"order_number"`
	UserID        *uuid.UUID         `gorm:"type:uuid;index" json:"user_id,omitempty"`
	EventID       uuid.UUID          `gorm:"type:uuid;index;not null" json:"event_id"`
	Quantity      int                `gorm:"not null" json:"quantity"`
	TotalAmount   float64            `gorm:"not null" json:"total_amount"`
	Status        Status             `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CustomerInfo  jsontypes.Document `gorm:"type:jsonb" json:"customer_info"`
	PaymentMethod string             `gorm:"default:'cash_on_delivery'" json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// TableName sets the table name for Order
func (Order) TableName() string {
	return "orders"
}

// CreateOrderRequest represents a purchase payload
type CreateOrderRequest struct {
	EventID       string                 `json:"event_id" binding:"required,uuid"`
	TicketTypeID  string                 `json:"ticket_type_id" binding:"required,uuid"`
	UserID        string                 `json:"user_id" binding:"omitempty,uuid"`
	Quantity      int                    `json:"quantity" binding:"required,gte=1"`
	TotalAmount   float64                `json:"total_amount" binding:"required,gt=0"`
	CustomerInfo  map[string]interface{} `json:"customer_info"`
	PaymentMethod string                 `json:"payment_method"`
	Status        string                 `json:"status"`
}

// UpdateStatusRequest carries a requested status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListQuery holds filters and paging for order listings
type OrderListQuery struct {
	pagination.Params
	Status  string `form:"status"`
	EventID string `form:"event_id"`
	UserID  string `form:"user_id"`
}

// OrderDetail is an order together with the tickets it minted.
type OrderDetail struct {
	Order
	Tickets []tickets.Ticket `json:"tickets"`
}
