package withdrawals

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/jsontypes"
	"tixly/internal/shared/utils/pagination"
)

// Withdrawal is a vendor payout request.
type Withdrawal struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VendorID    uuid.UUID          `gorm:"type:uuid;index;not null" json:"vendor_id"`
	Amount      float64            `gorm:"not null" json:"amount"`
	BankDetails jsontypes.Document `gorm:"type:jsonb" json:"bank_details"`
	Status      Status             `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ProcessedBy *uuid.UUID         `gorm:"type:uuid" json:"processed_by,omitempty"`
	ProcessedAt *time.Time         `json:"processed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TableName sets the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}

// CreateWithdrawalRequest represents a payout request payload
type CreateWithdrawalRequest struct {
	VendorID    string                 `json:"vendor_id" binding:"required,uuid"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	BankDetails map[string]interface{} `json:"bank_details" binding:"required"`
}

// UpdateStatusRequest carries a requested status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WithdrawalListQuery holds filters and paging for withdrawal listings
type WithdrawalListQuery struct {
	pagination.Params
	Status string `form:"status"`
}

// VendorWithdrawalStats aggregates a vendor's payout history.
type VendorWithdrawalStats struct {
	TotalRequested float64          `json:"total_requested"`
	TotalPaidOut   float64          `json:"total_paid_out"`
	PendingAmount  float64          `json:"pending_amount"`
	ByStatus       map[string]int64 `json:"by_status"`
}
