package payments

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/utils/pagination"
)

// Payment records money received for an event. It is written independently
// of order issuance and never blocks it.
type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	EventID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"event_id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaymentMethod string     `gorm:"default:'cash_on_delivery'" json:"payment_method"`
	TransactionID string     `gorm:"unique;not null" json:"transaction_id"`
	Status        Status     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName sets the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// CreatePaymentRequest represents a payment recording payload
type CreatePaymentRequest struct {
	UserID        string  `json:"user_id" binding:"omitempty,uuid"`
	EventID       string  `json:"event_id" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
}

// UpdateStatusRequest carries a requested status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PaymentListQuery holds filters and paging for payment listings
type PaymentListQuery struct {
	pagination.Params
	Status string `form:"status"`
	Method string `form:"method"`
	From   string `form:"from"`
	To     string `form:"to"`
}

// PaymentStats aggregates payment counts and volume.
type PaymentStats struct {
	TotalPayments  int64            `json:"total_payments"`
	ByStatus       map[string]int64 `json:"by_status"`
	CompletedTotal float64          `json:"completed_total"`
	PendingTotal   float64          `json:"pending_total"`
}

// VendorEarnings sums completed payments across a vendor's events.
type VendorEarnings struct {
	VendorID      uuid.UUID `json:"vendor_id"`
	TotalEarnings float64   `json:"total_earnings"`
	PaymentCount  int64     `json:"payment_count"`
}
