package users

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context, query UserListQuery) ([]User, int64, error)
	Search(ctx context.Context, term string, query UserListQuery) ([]User, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddFavorite(ctx context.Context, favorite *Favorite) error
	RemoveFavorite(ctx context.Context, userID, eventID uuid.UUID) error
	GetFavorites(ctx context.Context, userID uuid.UUID) ([]FavoriteEvent, error)
	OrderHistory(ctx context.Context, userID uuid.UUID) ([]UserOrderSummary, error)
	Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetAll(ctx context.Context, query UserListQuery) ([]User, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&User{}), query)
}

func (r *repository) Search(ctx context.Context, term string, query UserListQuery) ([]User, int64, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := r.db.WithContext(ctx).Model(&User{}).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	return r.list(ctx, base, query)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&User{}).
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

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Favorite{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) AddFavorite(ctx context.Context, favorite *Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *repository) RemoveFavorite(ctx context.Context, userID, eventID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&Favorite{}, "user_id = ? AND event_id = ?", userID, eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) GetFavorites(ctx context.Context, userID uuid.UUID) ([]FavoriteEvent, error) {
	favorites := []FavoriteEvent{}
	err := r.db.WithContext(ctx).
		Table("favorites").
		Select(`events.id as event_id, events.title, events.category, events.location,
			events.event_date, events.price, events.status, favorites.created_at as saved_at`).
		Joins("JOIN events ON events.id = favorites.event_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *repository) OrderHistory(ctx context.Context, userID uuid.UUID) ([]UserOrderSummary, error) {
	history := []UserOrderSummary{}
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id as order_id, orders.order_number, events.title as event_title,
			orders.quantity, orders.total_amount, orders.status, orders.created_at`).
		Joins("JOIN events ON events.id = orders.event_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Scan(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *repository) Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	stats := &UserStats{}

	var orderAgg struct {
		Count int64
		Total float64
	}
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("COUNT(*) as count, COALESCE(SUM(total_amount), 0) as total").
		Where("user_id = ? AND status <> ?", userID, "cancelled").
		Scan(&orderAgg).Error
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = orderAgg.Count
	stats.TotalSpent = orderAgg.Total

	err = r.db.WithContext(ctx).
		Table("tickets").
		Where("user_id = ?", userID).
		Count(&stats.TotalTickets).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("user_id = ?", userID).
		Count(&stats.FavoriteCount).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repository) list(ctx context.Context, base *gorm.DB, query UserListQuery) ([]User, int64, error) {
	query.Normalize()

	if query.Status != "" {
		base = base.Where("status = ?", query.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := []User{}
	err := base.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
