package admin

import (
	"context"

	"github.com/google/uuid"

	"tixly/internal/events"
	"tixly/internal/payments"
	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/constants"
	"tixly/internal/shared/utils/pagination"
	"tixly/internal/users"
	"tixly/internal/vendors"
	"tixly/internal/withdrawals"
	"tixly/pkg/cache"
	"tixly/pkg/logger"
)

// The admin surface delegates moderation to the owning domain services so
// transition rules live in one place. Each dependency is the narrow slice
// of that service the admin panel actually uses.

type UserAdmin interface {
	ListUsers(ctx context.Context, query users.UserListQuery) ([]users.User, int64, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*users.User, error)
}

type VendorAdmin interface {
	ListVendors(ctx context.Context, query vendors.VendorListQuery) ([]vendors.Vendor, int64, error)
	UpdateVendorStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*vendors.Vendor, error)
}

type EventAdmin interface {
	ListEvents(ctx context.Context, query events.EventListQuery) ([]events.Event, int64, error)
	UpdateEventStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*events.Event, error)
}

type PaymentAdmin interface {
	ListPayments(ctx context.Context, query payments.PaymentListQuery) ([]payments.Payment, int64, error)
}

type WithdrawalAdmin interface {
	ListWithdrawals(ctx context.Context, actor auth.Actor, query withdrawals.WithdrawalListQuery) ([]withdrawals.Withdrawal, int64, error)
	UpdateWithdrawalStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*withdrawals.Withdrawal, error)
}

type Service interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	Analytics(ctx context.Context) (*Analytics, error)

	ListUsers(ctx context.Context, query users.UserListQuery) ([]users.User, int64, error)
	ModerateUser(ctx context.Context, id uuid.UUID, status string) (*users.User, error)
	ListVendors(ctx context.Context, query vendors.VendorListQuery) ([]vendors.Vendor, int64, error)
	ModerateVendor(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*vendors.Vendor, error)
	ListEvents(ctx context.Context, query events.EventListQuery) ([]events.Event, int64, error)
	ModerateEvent(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*events.Event, error)
	ListTickets(ctx context.Context, params pagination.Params) ([]TicketRow, int64, error)
	ListPayments(ctx context.Context, query payments.PaymentListQuery) ([]payments.Payment, int64, error)
	FinanceRecords(ctx context.Context, params pagination.Params) ([]FinanceRecord, int64, error)
	ListWithdrawals(ctx context.Context, actor auth.Actor, query withdrawals.WithdrawalListQuery) ([]withdrawals.Withdrawal, int64, error)
	ModerateWithdrawal(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*withdrawals.Withdrawal, error)

	GetSettings(ctx context.Context) (*SystemSetting, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SystemSetting, error)
	Statistics(ctx context.Context) (*SystemStatistics, error)
}

type service struct {
	repo        Repository
	users       UserAdmin
	vendors     VendorAdmin
	events      EventAdmin
	payments    PaymentAdmin
	withdrawals WithdrawalAdmin
	cache       cache.Service // nil when the cache is disabled
	log         *logger.Logger
}

func NewService(repo Repository, users UserAdmin, vendors VendorAdmin, events EventAdmin, payments PaymentAdmin, withdrawals WithdrawalAdmin, cacheService cache.Service) Service {
	return &service{
		repo:        repo,
		users:       users,
		vendors:     vendors,
		events:      events,
		payments:    payments,
		withdrawals: withdrawals,
		cache:       cacheService,
		log:         logger.GetDefault(),
	}
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var stats DashboardStats
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ADMIN_DASHBOARD, constants.TTL_ADMIN_DASHBOARD,
			func() (interface{}, error) {
				return s.repo.DashboardStats(ctx)
			}, &stats)
		if err != nil {
			return nil, apperror.FromGorm(err, "dashboard stats")
		}
		return &stats, nil
	}

	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return nil, apperror.FromGorm(err, "dashboard stats")
	}
	return stats, nil
}

func (s *service) Analytics(ctx context.Context) (*Analytics, error) {
	if s.cache != nil {
		var analytics Analytics
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ADMIN_ANALYTICS, constants.TTL_ADMIN_ANALYTICS,
			func() (interface{}, error) {
				return s.repo.Analytics(ctx)
			}, &analytics)
		if err != nil {
			return nil, apperror.FromGorm(err, "analytics")
		}
		return &analytics, nil
	}

	analytics, err := s.repo.Analytics(ctx)
	if err != nil {
		return nil, apperror.FromGorm(err, "analytics")
	}
	return analytics, nil
}

func (s *service) ListUsers(ctx context.Context, query users.UserListQuery) ([]users.User, int64, error) {
	return s.users.ListUsers(ctx, query)
}

func (s *service) ModerateUser(ctx context.Context, id uuid.UUID, status string) (*users.User, error) {
	user, err := s.users.UpdateUserStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.invalidateAdminCache(ctx)
	return user, nil
}

func (s *service) ListVendors(ctx context.Context, query vendors.VendorListQuery) ([]vendors.Vendor, int64, error) {
	return s.vendors.ListVendors(ctx, query)
}

func (s *service) ModerateVendor(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*vendors.Vendor, error) {
	vendor, err := s.vendors.UpdateVendorStatus(ctx, actor, id, status)
	if err != nil {
		return nil, err
	}
	s.invalidateAdminCache(ctx)
	return vendor, nil
}

func (s *service) ListEvents(ctx context.Context, query events.EventListQuery) ([]events.Event, int64, error) {
	return s.events.ListEvents(ctx, query)
}

func (s *service) ModerateEvent(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*events.Event, error) {
	event, err := s.events.UpdateEventStatus(ctx, actor, id, status)
	if err != nil {
		return nil, err
	}
	s.invalidateAdminCache(ctx)
	return event, nil
}

func (s *service) ListTickets(ctx context.Context, params pagination.Params) ([]TicketRow, int64, error) {
	rows, total, err := s.repo.ListTickets(ctx, params)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "tickets")
	}
	return rows, total, nil
}

func (s *service) ListPayments(ctx context.Context, query payments.PaymentListQuery) ([]payments.Payment, int64, error) {
	return s.payments.ListPayments(ctx, query)
}

func (s *service) FinanceRecords(ctx context.Context, params pagination.Params) ([]FinanceRecord, int64, error) {
	records, total, err := s.repo.FinanceRecords(ctx, params)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "finance records")
	}
	return records, total, nil
}

func (s *service) ListWithdrawals(ctx context.Context, actor auth.Actor, query withdrawals.WithdrawalListQuery) ([]withdrawals.Withdrawal, int64, error) {
	return s.withdrawals.ListWithdrawals(ctx, actor, query)
}

func (s *service) ModerateWithdrawal(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*withdrawals.Withdrawal, error) {
	withdrawal, err := s.withdrawals.UpdateWithdrawalStatus(ctx, actor, id, status)
	if err != nil {
		return nil, err
	}
	s.invalidateAdminCache(ctx)
	return withdrawal, nil
}

func (s *service) GetSettings(ctx context.Context) (*SystemSetting, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, apperror.FromGorm(err, "settings")
	}
	return settings, nil
}

func (s *service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SystemSetting, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, apperror.FromGorm(err, "settings")
	}

	if req.PlatformName != nil {
		settings.PlatformName = *req.PlatformName
	}
	if req.PlatformDescription != nil {
		settings.PlatformDescription = *req.PlatformDescription
	}
	if req.SupportEmail != nil {
		settings.SupportEmail = *req.SupportEmail
	}
	if req.DefaultCurrency != nil {
		settings.DefaultCurrency = *req.DefaultCurrency
	}
	if req.CommissionRate != nil {
		if *req.CommissionRate < 0 || *req.CommissionRate > 100 {
			return nil, apperror.Validation("commission rate must be between 0 and 100")
		}
		settings.CommissionRate = *req.CommissionRate
	}
	if req.MaxTicketsPerOrder != nil {
		if *req.MaxTicketsPerOrder < 1 {
			return nil, apperror.Validation("max tickets per order must be at least 1")
		}
		settings.MaxTicketsPerOrder = *req.MaxTicketsPerOrder
	}
	if req.AutoApproveEvents != nil {
		settings.AutoApproveEvents = *req.AutoApproveEvents
	}
	if req.RequireVendorVerification != nil {
		settings.RequireVendorVerification = *req.RequireVendorVerification
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, apperror.FromGorm(err, "settings")
	}
	return settings, nil
}

func (s *service) Statistics(ctx context.Context) (*SystemStatistics, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, apperror.FromGorm(err, "statistics")
	}
	return stats, nil
}

func (s *service) invalidateAdminCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ADMIN_ALL); err != nil {
		s.log.Warn("admin cache invalidation failed", "error", err)
	}
}
