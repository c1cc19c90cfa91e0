package tickets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateType(ctx context.Context, tier *TicketType) error
	GetTypeByID(ctx context.Context, id uuid.UUID) (*TicketType, error)
	GetTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error)
	UpdateType(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*TicketType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error
	EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error)
	GetTicketByID(ctx context.Context, id uuid.UUID) (*TicketDetail, error)
	GetTicketRecord(ctx context.Context, id uuid.UUID) (*Ticket, error)
	UpdateTicketStatus(ctx context.Context, id uuid.UUID, status Status) error
	GetUserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error)
	GetVendorSoldTickets(ctx context.Context, vendorID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error)
	VendorTicketStats(ctx context.Context, vendorID uuid.UUID) (*VendorTicketStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateType(ctx context.Context, tier *TicketType) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *repository) GetTypeByID(ctx context.Context, id uuid.UUID) (*TicketType, error) {
	var tier TicketType
	if err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tier, nil
}

func (r *repository) GetTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	var tiers []TicketType
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("price ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

func (r *repository) UpdateType(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*TicketType, error) {
	var tier TicketType
	if err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&tier).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tier, nil
}

func (r *repository) DeleteType(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&TicketType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EventOwner resolves the vendor that owns an event. Queried raw so this
// package stays free of a dependency on the events package.
func (r *repository) EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		VendorID uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Table("events").
		Select("vendor_id").
		Where("id = ?", eventID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	return row.VendorID, nil
}

const ticketDetailSelect = `tickets.id, tickets.ticket_number, tickets.status, tickets.event_id,
	events.title AS event_title, events.event_date, events.location,
	tickets.ticket_type_id, ticket_types.type, ticket_types.price,
	tickets.order_id, orders.order_number, tickets.user_id, tickets.created_at`

func (r *repository) ticketDetailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tickets").
		Select(ticketDetailSelect).
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id").
		Joins("JOIN orders ON orders.id = tickets.order_id")
}

func (r *repository) GetTicketByID(ctx context.Context, id uuid.UUID) (*TicketDetail, error) {
	var detail TicketDetail
	err := r.ticketDetailQuery(ctx).
		Where("tickets.id = ?", id).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *repository) GetTicketRecord(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Ticket{}).
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

// ticketCountQuery mirrors the joins of ticketDetailQuery so the count and
// the page see the same row set.
func (r *repository) ticketCountQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tickets").
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id").
		Joins("JOIN orders ON orders.id = tickets.order_id")
}

func (r *repository) GetUserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	query.Normalize()

	base := r.ticketCountQuery(ctx).Where("tickets.user_id = ?", userID)
	if query.Status != "" {
		base = base.Where("tickets.status = ?", query.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	details := []TicketDetail{}
	listing := r.ticketDetailQuery(ctx).Where("tickets.user_id = ?", userID)
	if query.Status != "" {
		listing = listing.Where("tickets.status = ?", query.Status)
	}
	err := listing.
		Order("tickets.created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Scan(&details).Error
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (r *repository) GetVendorSoldTickets(ctx context.Context, vendorID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	query.Normalize()

	base := r.ticketCountQuery(ctx).Where("events.vendor_id = ?", vendorID)
	if query.Status != "" {
		base = base.Where("tickets.status = ?", query.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	details := []TicketDetail{}
	listing := r.ticketDetailQuery(ctx).Where("events.vendor_id = ?", vendorID)
	if query.Status != "" {
		listing = listing.Where("tickets.status = ?", query.Status)
	}
	err := listing.
		Order("tickets.created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Scan(&details).Error
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (r *repository) VendorTicketStats(ctx context.Context, vendorID uuid.UUID) (*VendorTicketStats, error) {
	stats := &VendorTicketStats{
		ByTicketStatus: make(map[string]int64),
		ByOrderStatus:  make(map[string]int64),
	}

	var byTicket []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("tickets.status, COUNT(*) as count").
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("events.vendor_id = ?", vendorID).
		Group("tickets.status").
		Scan(&byTicket).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byTicket {
		stats.ByTicketStatus[row.Status] = row.Count
		stats.TotalSold += row.Count
	}

	var byOrder []struct {
		Status string
		Count  int64
	}
	err = r.db.WithContext(ctx).
		Table("tickets").
		Select("orders.status, COUNT(*) as count").
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("events.vendor_id = ?", vendorID).
		Group("orders.status").
		Scan(&byOrder).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byOrder {
		stats.ByOrderStatus[row.Status] = row.Count
	}

	var revenue struct {
		Total float64
	}
	err = r.db.WithContext(ctx).
		Table("tickets").
		Select("COALESCE(SUM(ticket_types.price), 0) as total").
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id").
		Where("events.vendor_id = ? AND tickets.status <> ?", vendorID, StatusCancelled).
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.Total

	return stats, nil
}
