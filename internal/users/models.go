package users

import (
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/utils/pagination"
)

// User is a ticket buyer account.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	Address   string    `json:"address"`
	Status    Status    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}

// Favorite bookmarks an event for a user.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_event" json:"user_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_event" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// CreateUserRequest represents a registration payload
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
}

// UpdateUserRequest carries mutable profile fields; nil means unchanged.
type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateStatusRequest carries a requested status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UserListQuery holds filters and paging for user listings
type UserListQuery struct {
	pagination.Params
	Status string `form:"status"`
}

// FavoriteRequest identifies the event being bookmarked
type FavoriteRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

// FavoriteEvent is a bookmarked event as shown in a favorites listing.
type FavoriteEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	EventDate time.Time `json:"event_date"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	SavedAt   time.Time `json:"saved_at"`
}

// UserOrderSummary is one row of a user's order history.
type UserOrderSummary struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	EventTitle  string    `json:"event_title"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserStats aggregates a user's activity.
type UserStats struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalTickets  int64   `json:"total_tickets"`
	TotalSpent    float64 `json:"total_spent"`
	FavoriteCount int64   `json:"favorite_count"`
}
