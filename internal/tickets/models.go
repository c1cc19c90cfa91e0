package tickets

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/jsontypes"
	"tixly/internal/shared/utils/pagination"
)

// TicketType is a priced tier of an event.
type TicketType struct {
	ID        uuid.UUID            `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID   uuid.UUID            `gorm:"type:uuid;index;not null" json:"event_id"`
	Type      string               `gorm:"not null" json:"type"`
	Price     float64              `gorm:"not null" json:"price"`
	Quantity  int                  `gorm:"not null" json:"quantity"`
	Features  jsontypes.StringList `gorm:"type:jsonb" json:"features"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// TableName sets the table name for TicketType
func (TicketType) TableName() string {
	return "ticket_types"
}

// Ticket is one admission unit minted by an order.
type Ticket struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"event_id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	OrderID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"order_id"`
	TicketTypeID uuid.UUID  `gorm:"type:uuid;index;not null" json:"ticket_type_id"`
	TicketNumber string     `gorm:"unique;not null" json:"ticket_number"`
	Status       Status     `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// CreateTicketTypeRequest represents a tier creation payload
type CreateTicketTypeRequest struct {
	EventID  string   `json:"event_id" binding:"omitempty,uuid"`
	Type     string   `json:"type" binding:"required"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Quantity int      `json:"quantity" binding:"required,gt=0"`
	Features []string `json:"features"`
}

// UpdateTicketTypeRequest carries mutable tier fields; nil means unchanged.
type UpdateTicketTypeRequest struct {
	Type     *string  `json:"type"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Features []string `json:"features"`
}

// TicketListQuery holds paging for ticket listings
type TicketListQuery struct {
	pagination.Params
	Status string `form:"status"`
}

// TicketDetail is an issued ticket joined with its event, tier and order.
type TicketDetail struct {
	ID           uuid.UUID  `json:"id"`
	TicketNumber string     `json:"ticket_number"`
	Status       Status     `json:"status"`
	EventID      uuid.UUID  `json:"event_id"`
	EventTitle   string     `json:"event_title"`
	EventDate    time.Time  `json:"event_date"`
	Location     string     `json:"location"`
	TicketTypeID uuid.UUID  `json:"ticket_type_id"`
	Type         string     `json:"type"`
	Price        float64    `json:"price"`
	OrderID      uuid.UUID  `json:"order_id"`
	OrderNumber  string     `json:"order_number"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// VendorTicketStats breaks down a vendor's sold tickets.
type VendorTicketStats struct {
	TotalSold      int64            `json:"total_sold"`
	ByTicketStatus map[string]int64 `json:"by_ticket_status"`
	ByOrderStatus  map[string]int64 `json:"by_order_status"`
	TotalRevenue   float64          `json:"total_revenue"`
}
