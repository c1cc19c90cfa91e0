package admin

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tixly/internal/shared/utils/pagination"
)

type Repository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	Analytics(ctx context.Context) (*Analytics, error)
	FinanceRecords(ctx context.Context, params pagination.Params) ([]FinanceRecord, int64, error)
	ListTickets(ctx context.Context, params pagination.Params) ([]TicketRow, int64, error)
	GetSettings(ctx context.Context) (*SystemSetting, error)
	SaveSettings(ctx context.Context, settings *SystemSetting) error
	Statistics(ctx context.Context) (*SystemStatistics, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := r.db.WithContext(ctx)

	counts := []struct {
		table string
		dest  *int64
	}{
		{"users", &stats.TotalUsers},
		{"vendors", &stats.TotalVendors},
		{"events", &stats.TotalEvents},
		{"tickets", &stats.TotalTickets},
	}
	for _, c := range counts {
		if err := db.Table(c.table).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	err := db.Table("events").
		Where("status = ?", "pending").
		Count(&stats.PendingEvents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pending events: %w", err)
	}

	err = db.Table("orders").
		Where("status = ?", "confirmed").
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to calculate total revenue: %w", err)
	}

	stats.RecentOrders = []RecentOrder{}
	err = db.Table("orders").
		Select(`orders.id as order_id, orders.order_number, events.title as event_title,
			orders.quantity, orders.total_amount, orders.status, orders.created_at`).
		Joins("JOIN events ON events.id = orders.event_id").
		Order("orders.created_at DESC").
		Limit(10).
		Scan(&stats.RecentOrders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}

	stats.RecentEvents = []RecentEvent{}
	err = db.Table("events").
		Select(`events.id as event_id, events.title, vendors.name as vendor_name,
			events.status, events.created_at`).
		Joins("JOIN vendors ON vendors.id = events.vendor_id").
		Order("events.created_at DESC").
		Limit(10).
		Scan(&stats.RecentEvents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent events: %w", err)
	}

	return stats, nil
}

func (r *repository) Analytics(ctx context.Context) (*Analytics, error) {
	analytics := &Analytics{
		MonthlyRevenue:     []MonthlyRevenue{},
		CategoryBreakdown:  []CategoryStat{},
		TopVendors:         []TopVendor{},
		RegistrationTrends: []RegistrationTrend{},
	}
	db := r.db.WithContext(ctx)
	yearAgo := time.Now().AddDate(-1, 0, 0)

	err := db.Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') as month,
			COALESCE(SUM(total_amount), 0) as revenue,
			COUNT(*) as orders
		FROM orders
		WHERE status = 'confirmed' AND created_at >= ?
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month
	`, yearAgo).Scan(&analytics.MonthlyRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	err = db.Raw(`
		SELECT
			e.category,
			COUNT(DISTINCT e.id) as events,
			COALESCE(SUM(o.total_amount), 0) as revenue
		FROM events e
		LEFT JOIN orders o ON o.event_id = e.id AND o.status = 'confirmed'
		GROUP BY e.category
		ORDER BY revenue DESC
	`).Scan(&analytics.CategoryBreakdown).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	err = db.Raw(`
		SELECT
			v.id as vendor_id,
			v.name as vendor_name,
			COUNT(DISTINCT e.id) as events,
			COALESCE(SUM(o.total_amount), 0) as revenue
		FROM vendors v
		LEFT JOIN events e ON e.vendor_id = v.id
		LEFT JOIN orders o ON o.event_id = e.id AND o.status = 'confirmed'
		GROUP BY v.id, v.name
		ORDER BY revenue DESC
		LIMIT 10
	`).Scan(&analytics.TopVendors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top vendors: %w", err)
	}

	err = db.Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') as month,
			COUNT(*) as new_users
		FROM users
		WHERE created_at >= ?
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month
	`, yearAgo).Scan(&analytics.RegistrationTrends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get registration trends: %w", err)
	}

	return analytics, nil
}

func (r *repository) FinanceRecords(ctx context.Context, params pagination.Params) ([]FinanceRecord, int64, error) {
	params.Normalize()
	db := r.db.WithContext(ctx)

	var total int64
	err := db.Raw(`
		SELECT (SELECT COUNT(*) FROM payments) + (SELECT COUNT(*) FROM withdrawals)
	`).Scan(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count finance records: %w", err)
	}

	records := []FinanceRecord{}
	err = db.Raw(`
		SELECT id, 'payment' as kind, transaction_id as reference, amount, status, created_at
		FROM payments
		UNION ALL
		SELECT id, 'withdrawal' as kind, vendor_id::text as reference, amount, status, created_at
		FROM withdrawals
		ORDER BY created_at DESC
		OFFSET ? LIMIT ?
	`, params.Offset(), params.Limit).Scan(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get finance records: %w", err)
	}

	return records, total, nil
}

func (r *repository) ListTickets(ctx context.Context, params pagination.Params) ([]TicketRow, int64, error) {
	params.Normalize()
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Table("tickets").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	rows := []TicketRow{}
	err := db.Table("tickets").
		Select(`tickets.id, tickets.ticket_number, tickets.status,
			events.title as event_title, orders.order_number, tickets.created_at`).
		Joins("JOIN events ON events.id = tickets.event_id").
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Order("tickets.created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return rows, total, nil
}

// GetSettings returns the singleton settings row, creating it with defaults
// on first access.
func (r *repository) GetSettings(ctx context.Context) (*SystemSetting, error) {
	var settings SystemSetting
	err := r.db.WithContext(ctx).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = SystemSetting{
		PlatformName:              "Tixly",
		SupportEmail:              "support@tixly.io",
		DefaultCurrency:           "USD",
		CommissionRate:            5,
		MaxTicketsPerOrder:        10,
		RequireVendorVerification: true,
	}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) SaveSettings(ctx context.Context, settings *SystemSetting) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *repository) Statistics(ctx context.Context) (*SystemStatistics, error) {
	stats := &SystemStatistics{}
	db := r.db.WithContext(ctx)

	counts := []struct {
		table string
		dest  *int64
	}{
		{"users", &stats.Users},
		{"vendors", &stats.Vendors},
		{"events", &stats.Events},
		{"ticket_types", &stats.TicketTypes},
		{"tickets", &stats.Tickets},
		{"orders", &stats.Orders},
		{"payments", &stats.Payments},
		{"withdrawals", &stats.Withdrawals},
		{"favorites", &stats.Favorites},
	}
	for _, c := range counts {
		if err := db.Table(c.table).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	return stats, nil
}
