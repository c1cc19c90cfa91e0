package events

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/jsontypes"
	"tixly/internal/shared/utils/pagination"
)

// Event is a vendor-owned listing users can order tickets for.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"index" json:"category"`
	Location    string    `gorm:"index" json:"location"`
	EventDate   time.Time `gorm:"index;not null" json:"event_date"`
	StartTime   string    `gorm:"type:varchar(8)" json:"start_time"`
	EndTime     string    `gorm:"type:varchar(8)" json:"end_time"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	VendorID    uuid.UUID `gorm:"type:uuid;index;not null" json:"vendor_id"`
	ImageURL    string    `json:"image_url"`
	Status      Status    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Event
func (Event) TableName() string {
	return "events"
}

// TicketTypeInput is an inline tier definition on event creation.
type TicketTypeInput struct {
	Type     string   `json:"type" binding:"required"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Quantity int      `json:"quantity" binding:"required,gt=0"`
	Features []string `json:"features"`
}

// CreateEventRequest represents the event creation payload
type CreateEventRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Location    string            `json:"location"`
	EventDate   string            `json:"event_date" binding:"required"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	Price       float64           `json:"price" binding:"gte=0"`
	Capacity    int               `json:"capacity" binding:"gte=0"`
	VendorID    string            `json:"vendor_id" binding:"required,uuid"`
	ImageURL    string            `json:"image_url"`
	TicketTypes []TicketTypeInput `json:"ticket_types"`
}

// UpdateEventRequest carries the mutable event fields; nil means unchanged.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Location    *string  `json:"location"`
	EventDate   *string  `json:"event_date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	ImageURL    *string  `json:"image_url"`
}

// UpdateStatusRequest carries an admin status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EventListQuery holds list filters and paging
type EventListQuery struct {
	pagination.Params
	Category string `form:"category"`
	Location string `form:"location"`
	Date     string `form:"date"`
	Status   string `form:"status"`
	VendorID string `form:"vendor_id"`
}

// VendorSummary is the slice of vendor data embedded in an event detail.
type VendorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// TicketTypeSummary is a tier as shown on an event detail, ordered by price.
type TicketTypeSummary struct {
	ID       uuid.UUID            `json:"id"`
	Type     string               `json:"type"`
	Price    float64              `json:"price"`
	Quantity int                  `json:"quantity"`
	Features jsontypes.StringList `json:"features"`
}

// EventDetail is the full event view with vendor and tiers.
type EventDetail struct {
	Event
	Vendor      VendorSummary       `json:"vendor"`
	TicketTypes []TicketTypeSummary `json:"ticket_types"`
}

// VendorEventStats aggregates a vendor's portfolio.
type VendorEventStats struct {
	TotalEvents     int64 `json:"total_events"`
	ActiveEvents    int64 `json:"active_events"`
	PendingEvents   int64 `json:"pending_events"`
	CompletedEvents int64 `json:"completed_events"`
	CancelledEvents int64 `json:"cancelled_events"`
	TotalCapacity   int64 `json:"total_capacity"`
	TicketsSold     int64 `json:"tickets_sold"`
}

// EventEarnings is one row of a vendor's earnings report.
type EventEarnings struct {
	EventID     uuid.UUID `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	OrderCount  int64     `json:"order_count"`
	TicketsSold int64     `json:"tickets_sold"`
	Revenue     float64   `json:"revenue"`
}

// VendorEarnings is a vendor's confirmed-order revenue breakdown.
type VendorEarnings struct {
	TotalRevenue float64         `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
	Events       []EventEarnings `json:"events"`
}

// TicketSales is one row of the per-tier sales analysis.
type TicketSales struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	EventID      uuid.UUID `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	Type         string    `json:"type"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	Sold         int64     `json:"sold"`
	Revenue      float64   `json:"revenue"`
}
