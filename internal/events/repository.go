package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tixly/internal/tickets"
)

type Repository interface {
	Create(ctx context.Context, event *Event, tiers []tickets.TicketType) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*EventDetail, error)
	GetAll(ctx context.Context, query EventListQuery) ([]Event, int64, error)
	Search(ctx context.Context, term string, query EventListQuery) ([]Event, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByVendor(ctx context.Context, vendorID uuid.UUID, query EventListQuery) ([]Event, int64, error)
	VendorStats(ctx context.Context, vendorID uuid.UUID) (*VendorEventStats, error)
	VendorEarnings(ctx context.Context, vendorID uuid.UUID) (*VendorEarnings, error)
	SalesAnalysis(ctx context.Context, vendorID uuid.UUID) ([]TicketSales, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the event and its inline tiers in one transaction.
func (r *repository) Create(ctx context.Context, event *Event, tiers []tickets.TicketType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		for i := range tiers {
			tiers[i].EventID = event.ID
			if err := tx.Create(&tiers[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetDetail(ctx context.Context, id uuid.UUID) (*EventDetail, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &EventDetail{Event: *event}

	if err := r.db.WithContext(ctx).
		Table("vendors").
		Select("id, name, email, phone").
		Where("id = ?", event.VendorID).
		Scan(&detail.Vendor).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&tickets.TicketType{}).
		Select("id, type, price, quantity, features").
		Where("event_id = ?", id).
		Order("price ASC").
		Scan(&detail.TicketTypes).Error; err != nil {
		return nil, err
	}
	if detail.TicketTypes == nil {
		detail.TicketTypes = []TicketTypeSummary{}
	}

	return detail, nil
}

func (r *repository) GetAll(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	var events []Event
	var totalCount int64

	query.Normalize()

	db := r.db.WithContext(ctx).Model(&Event{})
	db = applyFilters(db, query)

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("event_date ASC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&events).Error

	return events, totalCount, err
}

func (r *repository) Search(ctx context.Context, term string, query EventListQuery) ([]Event, int64, error) {
	var events []Event
	var totalCount int64

	query.Normalize()

	pattern := "%" + strings.ToLower(term) + "%"
	db := r.db.WithContext(ctx).Model(&Event{}).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern)

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("event_date ASC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&events).Error

	return events, totalCount, err
}

func applyFilters(db *gorm.DB, query EventListQuery) *gorm.DB {
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(query.Location)+"%")
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.VendorID != "" {
		if vendorID, err := uuid.Parse(query.VendorID); err == nil {
			db = db.Where("vendor_id = ?", vendorID)
		}
	}
	if query.Date != "" {
		if date, err := time.Parse("2006-01-02", query.Date); err == nil {
			db = db.Where("event_date >= ? AND event_date < ?", date, date.Add(24*time.Hour))
		}
	}
	return db
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	var event Event

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the event together with its tiers and favorite rows.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&tickets.TicketType{}).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM favorites WHERE event_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) GetByVendor(ctx context.Context, vendorID uuid.UUID, query EventListQuery) ([]Event, int64, error) {
	query.VendorID = vendorID.String()
	return r.GetAll(ctx, query)
}

func (r *repository) VendorStats(ctx context.Context, vendorID uuid.UUID) (*VendorEventStats, error) {
	var stats VendorEventStats

	type statusCount struct {
		Status Status `json:"status"`
		Count  int64  `json:"count"`
	}

	var counts []statusCount
	if err := r.db.WithContext(ctx).
		Model(&Event{}).
		Select("status, COUNT(*) as count").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	for _, c := range counts {
		stats.TotalEvents += c.Count
		switch c.Status {
		case StatusActive:
			stats.ActiveEvents = c.Count
		case StatusPending:
			stats.PendingEvents = c.Count
		case StatusCompleted:
			stats.CompletedEvents = c.Count
		case StatusCancelled:
			stats.CancelledEvents = c.Count
		}
	}

	if err := r.db.WithContext(ctx).
		Model(&Event{}).
		Select("COALESCE(SUM(capacity), 0)").
		Where("vendor_id = ?", vendorID).
		Scan(&stats.TotalCapacity).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Table("tickets").
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("events.vendor_id = ? AND tickets.status <> ?", vendorID, "cancelled").
		Count(&stats.TicketsSold).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) VendorEarnings(ctx context.Context, vendorID uuid.UUID) (*VendorEarnings, error) {
	var earnings VendorEarnings

	if err := r.db.WithContext(ctx).
		Model(&Event{}).
		Select(`events.id as event_id,
			events.title as event_title,
			COUNT(orders.id) as order_count,
			COALESCE(SUM(orders.quantity), 0) as tickets_sold,
			COALESCE(SUM(orders.total_amount), 0) as revenue`).
		Joins("LEFT JOIN orders ON orders.event_id = events.id AND orders.status = ?", "confirmed").
		Where("events.vendor_id = ?", vendorID).
		Group("events.id, events.title").
		Scan(&earnings.Events).Error; err != nil {
		return nil, err
	}
	if earnings.Events == nil {
		earnings.Events = []EventEarnings{}
	}

	for _, e := range earnings.Events {
		earnings.TotalRevenue += e.Revenue
		earnings.TotalOrders += e.OrderCount
	}

	return &earnings, nil
}

func (r *repository) SalesAnalysis(ctx context.Context, vendorID uuid.UUID) ([]TicketSales, error) {
	var sales []TicketSales

	err := r.db.WithContext(ctx).
		Table("ticket_types").
		Select(`ticket_types.id as ticket_type_id,
			ticket_types.event_id,
			events.title as event_title,
			ticket_types.type,
			ticket_types.price,
			ticket_types.quantity,
			COUNT(tickets.id) as sold,
			COUNT(tickets.id) * ticket_types.price as revenue`).
		Joins("JOIN events ON events.id = ticket_types.event_id").
		Joins("LEFT JOIN tickets ON tickets.ticket_type_id = ticket_types.id AND tickets.status <> ?", "cancelled").
		Where("events.vendor_id = ?", vendorID).
		Group("ticket_types.id, ticket_types.event_id, events.title, ticket_types.type, ticket_types.price, ticket_types.quantity").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []TicketSales{}
	}

	return sales, nil
}
