package vendors

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/jsontypes"
	"tixly/internal/shared/utils/pagination"
)

// Vendor is an event organizer account.
type Vendor struct {
	ID           uuid.UUID            `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string               `gorm:"not null" json:"name"`
	Email        string               `gorm:"unique;not null" json:"email"`
	Phone        string               `json:"phone"`
	Address      string               `json:"address"`
	CompanyName  string               `json:"company_name"`
	BusinessType string               `json:"business_type"`
	EventTypes   jsontypes.StringList `gorm:"type:jsonb" json:"event_types"`
	Experience   string               `json:"experience"`
	Description  string               `json:"description"`
	Status       Status               `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// TableName sets the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}

// CreateVendorRequest represents a vendor registration payload
type CreateVendorRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	CompanyName  string   `json:"company_name"`
	BusinessType string   `json:"business_type"`
	EventTypes   []string `json:"event_types"`
	Experience   string   `json:"experience"`
	Description  string   `json:"description"`
}

// UpdateVendorRequest carries mutable profile fields; nil means unchanged.
type UpdateVendorRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	CompanyName  *string  `json:"company_name"`
	BusinessType *string  `json:"business_type"`
	EventTypes   []string `json:"event_types"`
	Experience   *string  `json:"experience"`
	Description  *string  `json:"description"`
}

// VendorListQuery holds filters and paging for vendor listings
type VendorListQuery struct {
	pagination.Params
	Status       string `form:"status"`
	BusinessType string `form:"business_type"`
}

// VendorStats aggregates a vendor's platform activity.
type VendorStats struct {
	TotalEvents   int64   `json:"total_events"`
	ActiveEvents  int64   `json:"active_events"`
	TicketsSold   int64   `json:"tickets_sold"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalCapacity int64   `json:"total_capacity"`
}

// VendorEventSummary is one of the vendor's events in a combined view.
type VendorEventSummary struct {
	EventID   uuid.UUID `json:"event_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	EventDate time.Time `json:"event_date"`
	Status    string    `json:"status"`
	Capacity  int       `json:"capacity"`
}

// VendorWithEvents pairs a vendor profile with its events.
type VendorWithEvents struct {
	Vendor
	Events []VendorEventSummary `json:"events"`
}
