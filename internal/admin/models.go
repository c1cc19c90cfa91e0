package admin

import (
	"time"

	"github.com/google/uuid"
)

// SystemSetting is the singleton platform configuration row.
type SystemSetting struct {
	ID                        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlatformName              string    `gorm:"default:'Tixly'" json:"platform_name"`
	PlatformDescription       string    `json:"platform_description"`
	SupportEmail              string    `gorm:"default:'support@tixly.io'" json:"support_email"`
	DefaultCurrency           string    `gorm:"default:'USD'" json:"default_currency"`
	CommissionRate            float64   `gorm:"default:5" json:"commission_rate"`
	MaxTicketsPerOrder        int       `gorm:"default:10" json:"max_tickets_per_order"`
	AutoApproveEvents         bool      `gorm:"default:false" json:"auto_approve_events"`
	RequireVendorVerification bool      `gorm:"default:true" json:"require_vendor_verification"`
	MaintenanceMode           bool      `gorm:"default:false" json:"maintenance_mode"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// TableName sets the table name for SystemSetting
func (SystemSetting) TableName() string {
	return "system_settings"
}

// UpdateSettingsRequest carries mutable settings; nil means unchanged.
type UpdateSettingsRequest struct {
	PlatformName              *string  `json:"platform_name"`
	PlatformDescription       *string  `json:"platform_description"`
	SupportEmail              *string  `json:"support_email"`
	DefaultCurrency           *string  `json:"default_currency"`
	CommissionRate            *float64 `json:"commission_rate"`
	MaxTicketsPerOrder        *int     `json:"max_tickets_per_order"`
	AutoApproveEvents         *bool    `json:"auto_approve_events"`
	RequireVendorVerification *bool    `json:"require_vendor_verification"`
	MaintenanceMode           *bool    `json:"maintenance_mode"`
}

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TotalUsers    int64         `json:"total_users"`
	TotalVendors  int64         `json:"total_vendors"`
	TotalEvents   int64         `json:"total_events"`
	TotalTickets  int64         `json:"total_tickets"`
	TotalRevenue  float64       `json:"total_revenue"`
	PendingEvents int64         `json:"pending_events"`
	RecentOrders  []RecentOrder `json:"recent_orders"`
	RecentEvents  []RecentEvent `json:"recent_events"`
}

// RecentOrder is a row in the dashboard's latest orders list.
type RecentOrder struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	EventTitle  string    `json:"event_title"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecentEvent is a row in the dashboard's latest events list.
type RecentEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Title      string    `json:"title"`
	VendorName string    `json:"vendor_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Analytics is the platform-wide analytics payload.
type Analytics struct {
	MonthlyRevenue     []MonthlyRevenue    `json:"monthly_revenue"`
	CategoryBreakdown  []CategoryStat      `json:"category_breakdown"`
	TopVendors         []TopVendor         `json:"top_vendors"`
	RegistrationTrends []RegistrationTrend `json:"registration_trends"`
}

// MonthlyRevenue is confirmed order revenue grouped by month.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// CategoryStat counts events and revenue per category.
type CategoryStat struct {
	Category string  `json:"category"`
	Events   int64   `json:"events"`
	Revenue  float64 `json:"revenue"`
}

// TopVendor ranks vendors by confirmed order revenue.
type TopVendor struct {
	VendorID   uuid.UUID `json:"vendor_id"`
	VendorName string    `json:"vendor_name"`
	Events     int64     `json:"events"`
	Revenue    float64   `json:"revenue"`
}

// RegistrationTrend counts new users per month.
type RegistrationTrend struct {
	Month    string `json:"month"`
	NewUsers int64  `json:"new_users"`
}

// FinanceRecord is one row of the combined payments and withdrawals view.
type FinanceRecord struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketRow is one issued ticket in the admin listing.
type TicketRow struct {
	ID           uuid.UUID `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	Status       string    `json:"status"`
	EventTitle   string    `json:"event_title"`
	OrderNumber  string    `json:"order_number"`
	CreatedAt    time.Time `json:"created_at"`
}

// SystemStatistics reports row counts per table.
type SystemStatistics struct {
	Users       int64 `json:"users"`
	Vendors     int64 `json:"vendors"`
	Events      int64 `json:"events"`
	TicketTypes int64 `json:"ticket_types"`
	Tickets     int64 `json:"tickets"`
	Orders      int64 `json:"orders"`
	Payments    int64 `json:"payments"`
	Withdrawals int64 `json:"withdrawals"`
	Favorites   int64 `json:"favorites"`
}
